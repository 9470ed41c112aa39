package bookworm

import (
	"context"
	"log"

	"bookworm/internal/entity"
	"bookworm/internal/usecase"
)

// Fetcher pulls candidate records from the external bestseller feed.
type Fetcher interface {
	FetchOverview(ctx context.Context) ([]entity.Book, error)
}

type Config struct {
	// DeleteUnratedOnRemove controls what removing a favourite does to a
	// row whose rating/price were never edited: delete it outright (true)
	// or keep it with the flag cleared. Rows with edited rating/price are
	// always kept either way.
	DeleteUnratedOnRemove bool
}

// Service reconciles freshly fetched bestseller candidates with the
// persisted favourite/rating state and serves every book mutation.
type Service struct {
	repo    usecase.BookRepository
	fetcher Fetcher
	cfg     Config
}

func NewService(repo usecase.BookRepository, fetcher Fetcher, cfg Config) *Service {
	return &Service{
		repo:    repo,
		fetcher: fetcher,
		cfg:     cfg,
	}
}

// FetchAllBestsellers returns the current bestseller overview merged with
// local state. A stored row always wins over a fresh candidate with the
// same ISBN, so user edits survive re-fetches. Candidates themselves are
// not persisted; only explicit favourite/update actions write rows.
//
// A feed failure degrades to whatever was collected (usually nothing)
// rather than failing the request.
func (s *Service) FetchAllBestsellers(ctx context.Context) ([]entity.Book, error) {
	candidates, err := s.fetcher.FetchOverview(ctx)
	if err != nil {
		log.Printf("bestseller fetch failed, returning partial result: %v", err)
	}

	seen := make(map[string]bool, len(candidates))
	books := make([]entity.Book, 0, len(candidates))
	for _, candidate := range candidates {
		if seen[candidate.ISBN] {
			continue
		}
		seen[candidate.ISBN] = true

		stored, err := s.repo.FindByISBN(ctx, candidate.ISBN)
		switch err {
		case nil:
			books = append(books, stored)
		case usecase.ErrNotFound:
			books = append(books, candidate)
		default:
			return nil, err
		}
	}
	return books, nil
}

// AddToFavourite marks the book with the given ISBN as a favourite.
// An existing row keeps its rating/price and only flips the flag; an
// unknown ISBN persists the incoming record. Idempotent.
func (s *Service) AddToFavourite(ctx context.Context, book entity.Book) error {
	stored, err := s.repo.FindByISBN(ctx, book.ISBN)
	switch err {
	case nil:
		stored.IsFavourite = true
		if err := s.repo.Save(ctx, stored); err != nil {
			return err
		}
		log.Printf("book isbn=%s already stored, marked as favourite", book.ISBN)
	case usecase.ErrNotFound:
		book.IsFavourite = true
		if err := s.repo.Save(ctx, book); err != nil {
			return err
		}
		log.Printf("book isbn=%s added to favourites", book.ISBN)
	default:
		return err
	}
	return nil
}

// RemoveFromFavourite clears the favourite flag for the given ISBN.
// Unknown ISBNs are a no-op. A row whose rating/price were never edited
// carries no user state worth keeping, so policy may drop it entirely.
func (s *Service) RemoveFromFavourite(ctx context.Context, book entity.Book) error {
	stored, err := s.repo.FindByISBN(ctx, book.ISBN)
	switch err {
	case nil:
	case usecase.ErrNotFound:
		log.Printf("cannot remove book isbn=%s, not in favourites", book.ISBN)
		return nil
	default:
		return err
	}

	if s.cfg.DeleteUnratedOnRemove && !stored.RatingPriceChanged {
		if err := s.repo.Delete(ctx, stored.ISBN); err != nil {
			return err
		}
		log.Printf("book isbn=%s removed from store, rating/price never changed", book.ISBN)
		return nil
	}

	stored.IsFavourite = false
	if err := s.repo.Save(ctx, stored); err != nil {
		return err
	}
	log.Printf("book isbn=%s removed from favourites", book.ISBN)
	return nil
}

// UpdateRatingAndPrice overwrites the stored rating and price for the
// given ISBN, creating the row if needed. Either way exactly one row with
// the new values remains, flagged as user-edited.
func (s *Service) UpdateRatingAndPrice(ctx context.Context, book entity.Book) error {
	stored, err := s.repo.FindByISBN(ctx, book.ISBN)
	switch err {
	case nil:
		stored.Rating = book.Rating
		stored.Price = book.Price
		stored.RatingPriceChanged = true
		if err := s.repo.Save(ctx, stored); err != nil {
			return err
		}
	case usecase.ErrNotFound:
		book.RatingPriceChanged = true
		if err := s.repo.Save(ctx, book); err != nil {
			return err
		}
	default:
		return err
	}
	log.Printf("book isbn=%s updated with rating=%d price=%.2f", book.ISBN, book.Rating, book.Price)
	return nil
}

func (s *Service) GetFavouriteList(ctx context.Context) ([]entity.Book, error) {
	return s.repo.ListFavourites(ctx)
}

// PurgeDatabase drops every stored row. Irreversible.
func (s *Service) PurgeDatabase(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}
