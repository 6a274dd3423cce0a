package shelf

import (
	"slices"

	"bookshelf/internal/book"
)

// Shelf holds books in the order they were added. It is not safe for
// concurrent use.
type Shelf struct {
	books []book.Book
}

// New creates an empty shelf.
func New() *Shelf {
	return &Shelf{}
}

// Add appends books to the end of the shelf in the order given.
func (s *Shelf) Add(books ...book.Book) {
	s.books = append(s.books, books...)
}

// Books returns a read-only view of the shelf in insertion order.
func (s *Shelf) Books() View {
	return View{books: s.books[:len(s.books):len(s.books)]}
}

// Len returns the number of books on the shelf.
func (s *Shelf) Len() int {
	return len(s.books)
}

// Arrange returns the books sorted by title. The shelf keeps its own order.
func (s *Shelf) Arrange() []book.Book {
	return s.ArrangeBy(book.Compare)
}

// ArrangeBy returns the books sorted by criteria. Books that compare equal keep
// their insertion order.
func (s *Shelf) ArrangeBy(criteria book.Comparator) []book.Book {
	out := slices.Clone(s.books)
	slices.SortStableFunc(out, criteria)
	return out
}

// GroupByPublicationYear groups the books by the year they were published in.
func (s *Shelf) GroupByPublicationYear() map[int][]book.Book {
	return GroupBy(s, book.Book.PublicationYear)
}

// GroupBy partitions the shelf by key. Each book lands in exactly one group and
// groups keep insertion order.
func GroupBy[K comparable](s *Shelf, key func(book.Book) K) map[K][]book.Book {
	groups := make(map[K][]book.Book)
	for _, b := range s.books {
		k := key(b)
		groups[k] = append(groups[k], b)
	}
	return groups
}
