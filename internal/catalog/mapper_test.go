package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/book"
)

func TestMapCatalog(t *testing.T) {
	t.Run("accepts empty title and author", func(t *testing.T) {
		books, err := MapCatalog("c.yaml", YAMLCatalog{Books: []YAMLBook{
			{PublishedOn: "2001-02-03"},
		}})

		require.NoError(t, err)
		assert.Equal(t, []book.Book{book.New("", "", book.Date(2001, time.February, 3))}, books)
	})

	t.Run("trims surrounding space from the date", func(t *testing.T) {
		books, err := MapCatalog("c.yaml", YAMLCatalog{Books: []YAMLBook{
			{Title: "Spaced", PublishedOn: " 2001-02-03 "},
		}})

		require.NoError(t, err)
		assert.Equal(t, book.Date(2001, time.February, 3), books[0].PublishedOn())
	})

	cases := []struct {
		name        string
		publishedOn string
		field       string
		message     string
	}{
		{"missing date", "", "books[1].published_on", "published_on is required"},
		{"blank date", "   ", "books[1].published_on", "published_on is required"},
		{"not a date", "last tuesday", "books[1].published_on", "published_on must be a date in 2006-01-02 format"},
		{"impossible date", "2008-02-30", "books[1].published_on", "published_on must be a date in 2006-01-02 format"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := MapCatalog("c.yaml", YAMLCatalog{Books: []YAMLBook{
				{Title: "ok", PublishedOn: "2001-02-03"},
				{Title: "bad", PublishedOn: c.publishedOn},
			}})

			require.Error(t, err)
			var oe *OpError
			require.ErrorAs(t, err, &oe)
			assert.Equal(t, KindInvalidCatalog, oe.Kind)
			assert.Equal(t, c.field, oe.Field)
			assert.Equal(t, "c.yaml", oe.Path)
			assert.EqualError(t, oe.Err, c.message)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}
