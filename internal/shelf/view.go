package shelf

import (
	"iter"
	"slices"

	"bookshelf/internal/book"
)

// View is a read-only window onto a shelf's books. It has no mutating
// methods; use Slice for a copy the caller owns.
type View struct {
	books []book.Book
}

// Len returns the number of books in the view.
func (v View) Len() int { return len(v.books) }

// IsEmpty reports whether the view holds no books.
func (v View) IsEmpty() bool { return len(v.books) == 0 }

// At returns the i-th book. It panics if i is out of range.
func (v View) At(i int) book.Book {
	return v.books[i]
}

// All iterates the books in insertion order.
func (v View) All() iter.Seq2[int, book.Book] {
	return slices.All(v.books)
}

// Slice returns a copy of the books. Changes to the copy do not reach the shelf.
func (v View) Slice() []book.Book {
	return slices.Clone(v.books)
}

// Contains reports whether an equal book is in the view.
func (v View) Contains(b book.Book) bool {
	return slices.Contains(v.books, b)
}
