package http

import (
	"context"
	"encoding/json"
	"net/http"

	"bookworm/internal/entity"
)

// BookService is what the handler needs from the reconciliation layer.
type BookService interface {
	FetchAllBestsellers(ctx context.Context) ([]entity.Book, error)
	AddToFavourite(ctx context.Context, book entity.Book) error
	RemoveFromFavourite(ctx context.Context, book entity.Book) error
	UpdateRatingAndPrice(ctx context.Context, book entity.Book) error
	GetFavouriteList(ctx context.Context) ([]entity.Book, error)
	PurgeDatabase(ctx context.Context) error
}

type BookHandler struct {
	service BookService
}

func NewBookHandler(service BookService) *BookHandler {
	return &BookHandler{service: service}
}

type bookPayload struct {
	ISBN               string  `json:"isbn" validate:"required"`
	Title              string  `json:"title"`
	Author             string  `json:"author"`
	Rating             int     `json:"rating"`
	ImageURL           string  `json:"imageUrl"`
	IsFavourite        bool    `json:"isFavourite"`
	Price              float64 `json:"price"`
	ListName           string  `json:"listName"`
	EncodedListName    string  `json:"encodedListName"`
	RatingPriceChanged bool    `json:"ratingPriceChanged"`
}

func (p bookPayload) toEntity() entity.Book {
	return entity.Book{
		ISBN:               p.ISBN,
		Title:              p.Title,
		Author:             p.Author,
		Rating:             p.Rating,
		ImageURL:           p.ImageURL,
		IsFavourite:        p.IsFavourite,
		Price:              p.Price,
		ListName:           p.ListName,
		EncodedListName:    p.EncodedListName,
		RatingPriceChanged: p.RatingPriceChanged,
	}
}

func (h *BookHandler) decodeBook(w http.ResponseWriter, r *http.Request) (entity.Book, bool) {
	var payload bookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid request body")
		return entity.Book{}, false
	}
	if err := ValidateStruct(payload); err != nil {
		JSONError(w, http.StatusBadRequest, "isbn is required")
		return entity.Book{}, false
	}
	return payload.toEntity(), true
}

func (h *BookHandler) FetchAllBestsellers(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FetchAllBestsellers(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	JSONList(w, books)
}

func (h *BookHandler) AddToFavourite(w http.ResponseWriter, r *http.Request) {
	book, ok := h.decodeBook(w, r)
	if !ok {
		return
	}
	if err := h.service.AddToFavourite(r.Context(), book); err != nil {
		JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	JSONEmptyOK(w)
}

func (h *BookHandler) RemoveFromFavourite(w http.ResponseWriter, r *http.Request) {
	book, ok := h.decodeBook(w, r)
	if !ok {
		return
	}
	if err := h.service.RemoveFromFavourite(r.Context(), book); err != nil {
		JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	JSONEmptyOK(w)
}

func (h *BookHandler) UpdateRatingAndPrice(w http.ResponseWriter, r *http.Request) {
	book, ok := h.decodeBook(w, r)
	if !ok {
		return
	}
	if err := h.service.UpdateRatingAndPrice(r.Context(), book); err != nil {
		JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	JSONEmptyOK(w)
}

func (h *BookHandler) GetFavouriteList(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.GetFavouriteList(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	JSONList(w, books)
}

func (h *BookHandler) PurgeDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.service.PurgeDatabase(r.Context()); err != nil {
		JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	JSONEmptyOK(w)
}
