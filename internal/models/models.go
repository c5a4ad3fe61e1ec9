package models

import (
	"crypto/rand"
	"encoding/base64"
)

// NewID returns an opaque URL-safe token used as a primary key for users and
// quotes. 8 random bytes encode to 11 characters.
func NewID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type Quote struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Author  string `json:"author"`
	UserID  string `json:"-"`
}

type Collection struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"-"`
}

// CollectionCount pairs a collection with the number of quotes linked to it.
type CollectionCount struct {
	Collection
	QuoteCount int `json:"quote_count"`
}
