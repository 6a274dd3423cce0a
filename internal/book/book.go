package book

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for publication dates.
const DateLayout = "2006-01-02"

// Book represents a single book. It is a value type: fields are set once by New
// and only exposed through accessors.
type Book struct {
	title       string
	author      string
	publishedOn time.Time
}

// New creates a book. No validation is performed.
func New(title, author string, publishedOn time.Time) Book {
	return Book{
		title:       title,
		author:      author,
		publishedOn: civil(publishedOn),
	}
}

// Date returns the calendar date year-month-day at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// civil drops time of day and location so that two books published on the same
// day compare equal with ==.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// Title returns the book title.
func (b Book) Title() string { return b.title }

// Author returns the book author.
func (b Book) Author() string { return b.author }

// PublishedOn returns the publication date at midnight UTC.
func (b Book) PublishedOn() time.Time { return b.publishedOn }

// PublicationYear returns the year component of the publication date.
func (b Book) PublicationYear() int {
	return b.publishedOn.Year()
}

// Equal reports whether title, author and publication date all match.
func (b Book) Equal(other Book) bool {
	return b == other
}

func (b Book) String() string {
	return fmt.Sprintf("%s | %s | %s", b.title, b.author, b.publishedOn.Format(DateLayout))
}

// Comparator orders two books: negative when a sorts before b, zero when they
// are equivalent, positive otherwise.
type Comparator func(a, b Book) int

// Compare is the natural order of books: case-sensitive lexicographic by title.
func Compare(a, b Book) int {
	return strings.Compare(a.title, b.title)
}

// ByAuthor orders books lexicographically by author.
func ByAuthor(a, b Book) int {
	return strings.Compare(a.author, b.author)
}

// ByPublishedOn orders books from oldest to newest.
func ByPublishedOn(a, b Book) int {
	return a.publishedOn.Compare(b.publishedOn)
}

// Reverse inverts cmp.
func Reverse(cmp Comparator) Comparator {
	return func(a, b Book) int {
		return cmp(b, a)
	}
}
