package store

// Repository implementation (Postgres)

import (
	"bookworm/internal/entity"
	"bookworm/internal/usecase"
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

const bookColumns = `isbn, title, author, rating, image_url, is_favourite, price, list_name, encoded_list_name, rating_price_changed`

func (r *BookPG) FindByISBN(ctx context.Context, isbn string) (entity.Book, error) {
	query := `
	SELECT ` + bookColumns + `
	FROM books
	WHERE isbn = $1
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, isbn).Scan(
		&b.ISBN, &b.Title, &b.Author, &b.Rating, &b.ImageURL,
		&b.IsFavourite, &b.Price, &b.ListName, &b.EncodedListName, &b.RatingPriceChanged,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, usecase.ErrNotFound
	}
	if err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, isbn).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Save upserts by ISBN, so the table never holds two rows for one book.
func (r *BookPG) Save(ctx context.Context, book entity.Book) error {
	query := `
	INSERT INTO books (` + bookColumns + `, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	ON CONFLICT (isbn)
	DO UPDATE SET
		title = EXCLUDED.title,
		author = EXCLUDED.author,
		rating = EXCLUDED.rating,
		image_url = EXCLUDED.image_url,
		is_favourite = EXCLUDED.is_favourite,
		price = EXCLUDED.price,
		list_name = EXCLUDED.list_name,
		encoded_list_name = EXCLUDED.encoded_list_name,
		rating_price_changed = EXCLUDED.rating_price_changed,
		updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		book.ISBN, book.Title, book.Author, book.Rating, book.ImageURL,
		book.IsFavourite, book.Price, book.ListName, book.EncodedListName, book.RatingPriceChanged,
	)
	return err
}

func (r *BookPG) Delete(ctx context.Context, isbn string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM books WHERE isbn = $1`, isbn)
	return err
}

func (r *BookPG) ListFavourites(ctx context.Context) ([]entity.Book, error) {
	query := `
	SELECT ` + bookColumns + `
	FROM books
	WHERE is_favourite = TRUE
	ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(
			&b.ISBN, &b.Title, &b.Author, &b.Rating, &b.ImageURL,
			&b.IsFavourite, &b.Price, &b.ListName, &b.EncodedListName, &b.RatingPriceChanged,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookPG) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM books`)
	return err
}
