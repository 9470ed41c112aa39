package usecase

import (
	"bookworm/internal/entity"
	"context"
	"errors"
)

var ErrNotFound = errors.New("book not found")

// BookRepository is the contract for the persisted book store.
// The store holds at most one row per ISBN; Save upserts by ISBN.
type BookRepository interface {
	FindByISBN(ctx context.Context, isbn string) (entity.Book, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	Save(ctx context.Context, book entity.Book) error
	Delete(ctx context.Context, isbn string) error
	// ListFavourites returns every row with is_favourite=true in the
	// store's natural retrieval order.
	ListFavourites(ctx context.Context) ([]entity.Book, error)
	DeleteAll(ctx context.Context) error
}
