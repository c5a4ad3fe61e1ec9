// Package forms validates web input before it reaches the store.
package forms

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
)

// ErrValidation marks malformed input. Wrapped errors carry the field detail.
var ErrValidation = errors.New("validation failed")

var collectionNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func ValidateEmail(email string) error {
	if email == "" {
		return invalid("email is required")
	}
	if len(email) > 255 {
		return invalid("email must be at most 255 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalid("invalid email address")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return invalid("password must be at least 8 characters")
	}
	if len(password) > 1024 {
		return invalid("password must be at most 1024 characters")
	}
	return nil
}

func ValidateQuote(content, author string) error {
	if content == "" {
		return invalid("quote content is required")
	}
	if len(content) > 4096 {
		return invalid("quote content must be at most 4096 characters")
	}
	if len(author) > 255 {
		return invalid("author must be at most 255 characters")
	}
	return nil
}

func ValidateCollectionName(name string) error {
	if name == "" {
		return invalid("collection name is required")
	}
	if len(name) > 255 {
		return invalid("collection name must be at most 255 characters")
	}
	if !collectionNameRe.MatchString(name) {
		return invalid("allowed characters: A-Z a-z 0-9 _ -")
	}
	return nil
}
