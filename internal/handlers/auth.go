package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"quotevault/internal/auth"
	"quotevault/internal/forms"
	"quotevault/internal/mailqueue"
	"quotevault/internal/store"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthHandler struct {
	Store   store.Store
	Signer  *auth.Signer
	Secret  []byte
	Queue   *mailqueue.Queue
	BaseURL string
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := forms.ValidateEmail(creds.Email); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := forms.ValidatePassword(creds.Password); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	user, err := h.Store.CreateUser(creds.Email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			respondError(w, http.StatusConflict, "an account with that email already exists")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Unknown email and wrong password must be indistinguishable.
	user, err := h.Store.GetUserByEmail(creds.Email)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "incorrect email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "incorrect email or password")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    h.Signer.SignCookie(user.ID),
		Path:     "/",
		HttpOnly: true,
	})

	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Forgot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Store.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "no account found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	token, err := auth.IssueRecoveryToken(user.Email, h.Secret)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// Fire-and-forget: the response does not wait for the mail provider.
	h.Queue.Enqueue(user.Email, h.BaseURL+"/recover-password/"+token)

	respondJSON(w, http.StatusAccepted, map[string]string{"message": "reset link sent"})
}

func (h *AuthHandler) RecoverCheck(w http.ResponseWriter, r *http.Request) {
	email, ok := h.verifyToken(w, mux.Vars(r)["token"])
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"email": email})
}

func (h *AuthHandler) RecoverSubmit(w http.ResponseWriter, r *http.Request) {
	email, ok := h.verifyToken(w, mux.Vars(r)["token"])
	if !ok {
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := forms.ValidatePassword(req.Password); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Store.GetUserByEmail(email)
	if err != nil {
		respondError(w, http.StatusNotFound, "no account found")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if err := h.Store.SetPassword(user.ID, string(hashedPassword)); err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// verifyToken writes the error response itself on failure. Expired tokens and
// bad signatures produce different messages. Tokens are not marked consumed:
// a valid token can be replayed within its 600-second window.
func (h *AuthHandler) verifyToken(w http.ResponseWriter, token string) (string, bool) {
	email, err := auth.VerifyRecoveryToken(token, h.Secret)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			respondError(w, http.StatusGone, "recovery link expired")
			return "", false
		}
		respondError(w, http.StatusBadRequest, "invalid recovery token")
		return "", false
	}
	return email, true
}
