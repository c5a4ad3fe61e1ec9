package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotevault/internal/auth"
	"quotevault/internal/store/sqlstore"
)

func TestSessionMiddleware(t *testing.T) {
	s, err := sqlstore.New("sqlite3", ":memory:")
	require.NoError(t, err)
	defer s.Close()

	user, err := s.CreateUser("a@x.com", "hash")
	require.NoError(t, err)

	signer := auth.NewSigner([]byte("test-secret"))

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, user.ID, UserID(r))
		w.WriteHeader(http.StatusOK)
	})
	handler := Session(signer, s)(nextHandler)

	tests := []struct {
		name           string
		cookieValue    string
		expectedStatus int
	}{
		{
			name:           "Valid Cookie",
			cookieValue:    signer.SignCookie(user.ID),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid Signature",
			cookieValue:    user.ID + "|invalid_signature",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Vanished User",
			cookieValue:    signer.SignCookie("gone-user-id"),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/quotes", nil)
			req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: tt.cookieValue})
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}

	t.Run("Missing Cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/quotes", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	Logging(zerolog.Nop())(nextHandler).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/collection/faves", nil)
	rr := httptest.NewRecorder()
	CORS(nextHandler).ServeHTTP(rr, req)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest("OPTIONS", "/api/collection/faves", nil)
	rr = httptest.NewRecorder()
	CORS(nextHandler).ServeHTTP(rr, preflight)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
