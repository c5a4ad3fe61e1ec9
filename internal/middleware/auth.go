package middleware

import (
	"context"
	"errors"
	"net/http"

	"quotevault/internal/auth"
	"quotevault/internal/store"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// Session verifies the signed session cookie and loads the referenced user,
// putting the user id into the request context. A missing cookie, a bad
// signature, or a vanished user all yield an unauthenticated request; none of
// them is an internal error.
func Session(signer *auth.Signer, s store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			userID, err := signer.VerifyCookie(cookie.Value)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			user, err := s.GetUserByID(userID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id from the request context, or ""
// when the request did not pass through Session.
func UserID(r *http.Request) string {
	id, _ := r.Context().Value(UserIDKey).(string)
	return id
}
