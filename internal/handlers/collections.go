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

type CollectionHandler struct {
	Store store.Store
}

type collectionEditRequest struct {
	Name   string `json:"name"`
	Delete bool   `json:"delete"`
}

type collectionResponse struct {
	models.Collection
	Quotes []models.Quote `json:"quotes"`
}

func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	collections, err := h.Store.ListCollections(middleware.UserID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if collections == nil {
		collections = []models.CollectionCount{}
	}
	respondJSON(w, http.StatusOK, collections)
}

func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req collectionEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := forms.ValidateCollectionName(req.Name); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	collection, err := h.Store.CreateCollection(middleware.UserID(r), req.Name)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			respondError(w, http.StatusConflict, "a collection with that name already exists")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, collection)
}

func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	collection, quotes, err := h.Store.GetCollectionWithQuotes(middleware.UserID(r), mux.Vars(r)["name"])
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
	respondJSON(w, http.StatusOK, collectionResponse{Collection: *collection, Quotes: quotes})
}

// Edit renames a collection, or deletes it when the delete flag is set.
func (h *CollectionHandler) Edit(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.UserID(r)

	collection, _, err := h.Store.GetCollectionWithQuotes(ownerID, mux.Vars(r)["name"])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "collection not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	var req collectionEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Delete {
		if err := h.Store.DeleteCollection(ownerID, collection.ID); err != nil {
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "collection deleted"})
		return
	}

	if err := forms.ValidateCollectionName(req.Name); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.RenameCollection(ownerID, collection.ID, req.Name); err != nil {
		if errors.Is(err, store.ErrConflict) {
			respondError(w, http.StatusConflict, "a collection with that name already exists")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "collection updated"})
}
