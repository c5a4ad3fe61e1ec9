package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotevault/internal/middleware"
	"quotevault/internal/models"
	"quotevault/internal/store/sqlstore"
)

func newQuoteRouter(t *testing.T) (*mux.Router, *sqlstore.SQLStore) {
	t.Helper()
	s, err := sqlstore.New("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	h := &QuoteHandler{Store: s}
	r := mux.NewRouter()
	r.HandleFunc("/quotes", h.List).Methods("GET")
	r.HandleFunc("/quotes", h.Create).Methods("POST")
	r.HandleFunc("/quotes/{id}", h.Get).Methods("GET")
	r.HandleFunc("/quotes/{id}", h.Edit).Methods("POST")
	return r, s
}

// asUser sends a request carrying an authenticated user id, the way the
// session middleware would.
func asUser(r http.Handler, userID, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestQuoteCreateAndGet(t *testing.T) {
	r, s := newQuoteRouter(t)
	user, err := s.CreateUser("a@x.com", "hash")
	require.NoError(t, err)
	_, err = s.CreateCollection(user.ID, "faves")
	require.NoError(t, err)

	rr := asUser(r, user.ID, "POST", "/quotes", quoteRequest{
		Content: "hi", Author: "bob", Collections: []string{"faves"},
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.Quote
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = asUser(r, user.ID, "GET", "/quotes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got quoteResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "hi", got.Content)
	assert.Equal(t, []string{"faves"}, got.Collections)
}

func TestQuoteCreate_ForeignCollection(t *testing.T) {
	r, s := newQuoteRouter(t)
	alice, err := s.CreateUser("alice@x.com", "hash")
	require.NoError(t, err)
	bob, err := s.CreateUser("bob@x.com", "hash")
	require.NoError(t, err)
	_, err = s.CreateCollection(bob.ID, "bobs")
	require.NoError(t, err)

	rr := asUser(r, alice.ID, "POST", "/quotes", quoteRequest{
		Content: "hi", Collections: []string{"bobs"},
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	quotes, err := s.ListQuotes(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestQuoteGet_CrossUserIsNotFound(t *testing.T) {
	r, s := newQuoteRouter(t)
	alice, err := s.CreateUser("alice@x.com", "hash")
	require.NoError(t, err)
	bob, err := s.CreateUser("bob@x.com", "hash")
	require.NoError(t, err)

	quote, err := s.CreateQuote(alice.ID, "hi", "", nil)
	require.NoError(t, err)

	rr := asUser(r, bob.ID, "GET", "/quotes/"+quote.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	missing := asUser(r, bob.ID, "GET", "/quotes/does-not-exist", nil)
	assert.Equal(t, missing.Body.String(), rr.Body.String())
}

func TestQuoteEdit_Delete(t *testing.T) {
	r, s := newQuoteRouter(t)
	user, err := s.CreateUser("a@x.com", "hash")
	require.NoError(t, err)
	quote, err := s.CreateQuote(user.ID, "hi", "", nil)
	require.NoError(t, err)

	rr := asUser(r, user.ID, "POST", "/quotes/"+quote.ID, quoteRequest{Delete: true})
	require.Equal(t, http.StatusOK, rr.Code)

	quotes, err := s.ListQuotes(user.ID)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestQuoteCreate_Validation(t *testing.T) {
	r, s := newQuoteRouter(t)
	user, err := s.CreateUser("a@x.com", "hash")
	require.NoError(t, err)

	rr := asUser(r, user.ID, "POST", "/quotes", quoteRequest{Content: ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	quotes, err := s.ListQuotes(user.ID)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}
