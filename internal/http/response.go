package http

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// ErrorResponse is the uniform failure payload. Every uncaught failure
// surfaces as a 500 with this shape; internals stay server-side.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func JSONList(w http.ResponseWriter, books interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(books)
}

func JSONEmptyOK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Message: message,
		Code:    strconv.Itoa(statusCode),
	})
}
