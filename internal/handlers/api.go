package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"quotevault/internal/models"
	"quotevault/internal/store"
)

// APIHandler serves the unauthenticated read-only JSON API. Quote payloads
// never carry the owning user's id (the field is excluded at marshal time).
type APIHandler struct {
	Store store.Store
}

func (h *APIHandler) CollectionQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.Store.PublicCollectionQuotes(mux.Vars(r)["name"])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "collection not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if quotes == nil {
		quotes = []models.Quote{}
	}
	respondJSON(w, http.StatusOK, map[string][]models.Quote{"quotes": quotes})
}

func (h *APIHandler) RandomQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.Store.PublicRandomQuote(mux.Vars(r)["name"])
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(w, http.StatusNotFound, "collection not found")
		case errors.Is(err, store.ErrEmptyCollection):
			respondError(w, http.StatusNotFound, "no quotes in that collection")
		default:
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

func (h *APIHandler) Quote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.Store.PublicQuote(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "quote not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, quote)
}
