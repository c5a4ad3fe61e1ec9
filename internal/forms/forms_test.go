package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("a@x.com"))
	assert.ErrorIs(t, ValidateEmail(""), ErrValidation)
	assert.ErrorIs(t, ValidateEmail("not-an-email"), ErrValidation)
	assert.ErrorIs(t, ValidateEmail(strings.Repeat("a", 250)+"@x.com"), ErrValidation)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("pw12345678"))
	assert.ErrorIs(t, ValidatePassword("short"), ErrValidation)
	assert.ErrorIs(t, ValidatePassword(strings.Repeat("x", 1025)), ErrValidation)
}

func TestValidateQuote(t *testing.T) {
	assert.NoError(t, ValidateQuote("hi", "bob"))
	assert.NoError(t, ValidateQuote("hi", ""))
	assert.ErrorIs(t, ValidateQuote("", ""), ErrValidation)
	assert.ErrorIs(t, ValidateQuote(strings.Repeat("x", 4097), ""), ErrValidation)
	assert.ErrorIs(t, ValidateQuote("hi", strings.Repeat("x", 256)), ErrValidation)
}

func TestValidateCollectionName(t *testing.T) {
	assert.NoError(t, ValidateCollectionName("faves"))
	assert.NoError(t, ValidateCollectionName("my_quotes-2"))
	assert.ErrorIs(t, ValidateCollectionName(""), ErrValidation)
	assert.ErrorIs(t, ValidateCollectionName("has space"), ErrValidation)
	assert.ErrorIs(t, ValidateCollectionName("semi;colon"), ErrValidation)
	assert.ErrorIs(t, ValidateCollectionName(strings.Repeat("a", 256)), ErrValidation)
}
