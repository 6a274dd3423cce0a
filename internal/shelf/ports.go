package shelf

import (
	"context"

	"bookshelf/internal/book"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=shelf

// Source supplies the books used to stock a shelf.
type Source interface {
	Load(ctx context.Context) ([]book.Book, error)
}
