package shelf

import (
	"context"
	"errors"
	"fmt"
)

// ErrStock is returned when a shelf cannot be stocked from its source.
var ErrStock = errors.New("stock shelf")

// Service builds shelves from a Source.
type Service struct {
	source Source
}

// NewService creates a new shelf service.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Stock loads every book from the source onto a new shelf, keeping source order.
func (s *Service) Stock(ctx context.Context) (*Shelf, error) {
	books, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStock, err)
	}
	sh := New()
	sh.Add(books...)
	return sh, nil
}
