package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bookshelf/internal/book"
)

// EffectiveJava and friends are the books shared by shelf and catalog tests.
var (
	EffectiveJava    = book.New("Effective Java", "Joshua Bloch", book.Date(2008, time.May, 8))
	CodeComplete     = book.New("Code Complete", "Steve McConnel", book.Date(2004, time.June, 9))
	MythicalManMonth = book.New("The Mythical Man-Month", "Frederick Phillips Brooks", book.Date(1975, time.January, 1))
	CleanCode        = book.New("Clean Code", "Robert C. Martin", book.Date(2008, time.August, 1))
)

// CatalogYAML is a catalogue listing the four shared books, Clean Code last.
const CatalogYAML = `books:
  - title: Effective Java
    author: Joshua Bloch
    published_on: 2008-05-08
  - title: Code Complete
    author: Steve McConnel
    published_on: 2004-06-09
  - title: The Mythical Man-Month
    author: Frederick Phillips Brooks
    published_on: 1975-01-01
  - title: Clean Code
    author: Robert C. Martin
    published_on: 2008-08-01
`

// WriteFile writes content to name inside a fresh temp dir and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}
