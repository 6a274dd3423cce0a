package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("text drops debug by default", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(Config{Out: &buf})
		require.NoError(t, err)

		l.Debug("hidden")
		l.Info("catalog.loaded", "books", 3)

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=catalog.loaded")
		assert.Contains(t, buf.String(), "books=3")
	})

	t.Run("debug enabled", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(Config{Out: &buf, Debug: true})
		require.NoError(t, err)

		l.Debug("visible")

		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(Config{Out: &buf, Format: "JSON"})
		require.NoError(t, err)

		l.Info("catalog.loaded", "path", "books.yaml")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "catalog.loaded", line["msg"])
		assert.Equal(t, "books.yaml", line["path"])
		assert.NotEmpty(t, line["time"])
	})
}

func TestNew_UnsupportedFormat(t *testing.T) {
	l, err := New(Config{Format: "xml"})

	assert.Nil(t, l)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Info("nothing") })
}
