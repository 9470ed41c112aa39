package http

import "net/http"

func requireMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

// RegisterRoutes wires the book endpoints onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *BookHandler) {
	mux.HandleFunc("/api/v1/books/get-all-bestsellers", requireMethod(http.MethodGet, h.FetchAllBestsellers))
	mux.HandleFunc("/api/v1/books/add-to-favourites", requireMethod(http.MethodPost, h.AddToFavourite))
	mux.HandleFunc("/api/v1/books/remove-from-favourites", requireMethod(http.MethodDelete, h.RemoveFromFavourite))
	mux.HandleFunc("/api/v1/books/update-rating-and-price", requireMethod(http.MethodPut, h.UpdateRatingAndPrice))
	mux.HandleFunc("/api/v1/books/get-favourites", requireMethod(http.MethodGet, h.GetFavouriteList))
	mux.HandleFunc("/api/v1/books/purge-database", requireMethod(http.MethodDelete, h.PurgeDatabase))
}
