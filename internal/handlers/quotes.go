package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"quotevault/internal/forms"
	"quotevault/internal/middleware"
	"quotevault/internal/models"
	"quotevault/internal/store"
)

type QuoteHandler struct {
	Store store.Store
}

type quoteRequest struct {
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	Collections []string `json:"collections"`
	Delete      bool     `json:"delete"`
}

type quoteResponse struct {
	models.Quote
	Collections []string `json:"collections"`
}

func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.Store.ListQuotes(middleware.UserID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if quotes == nil {
		quotes = []models.Quote{}
	}
	respondJSON(w, http.StatusOK, quotes)
}

func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := forms.ValidateQuote(req.Content, req.Author); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	quote, err := h.Store.CreateQuote(middleware.UserID(r), req.Content, req.Author, dedupe(req.Collections))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "collection not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, quote)
}

func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	quote, err := h.Store.GetQuote(middleware.UserID(r), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "quote not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	names, err := h.Store.QuoteCollectionNames(quote.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if names == nil {
		names = []string{}
	}

	respondJSON(w, http.StatusOK, quoteResponse{Quote: *quote, Collections: names})
}

// Edit updates a quote's content, author and collection set, or deletes the
// quote when the delete flag is set.
func (h *QuoteHandler) Edit(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.UserID(r)
	quoteID := mux.Vars(r)["id"]

	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Delete {
		if err := h.Store.DeleteQuote(ownerID, quoteID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "quote not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "quote deleted"})
		return
	}

	if err := forms.ValidateQuote(req.Content, req.Author); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.Store.UpdateQuote(ownerID, quoteID, req.Content, req.Author, dedupe(req.Collections))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "quote not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "quote updated"})
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
