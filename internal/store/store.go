package store

import (
	"errors"

	"quotevault/internal/models"
)

var (
	// ErrNotFound covers both absent entities and entities owned by someone
	// else. Callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on unique-constraint violations (duplicate
	// email, duplicate collection name).
	ErrConflict = errors.New("already exists")
	// ErrEmptyCollection is returned by PublicRandomQuote when the collection
	// exists but holds no quotes.
	ErrEmptyCollection = errors.New("no quotes in collection")
)

type Store interface {
	// User operations
	CreateUser(email, passwordHash string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	SetPassword(userID, passwordHash string) error

	// Quote operations, all scoped to the owning user
	ListQuotes(ownerID string) ([]models.Quote, error)
	CreateQuote(ownerID, content, author string, collections []string) (*models.Quote, error)
	GetQuote(ownerID, quoteID string) (*models.Quote, error)
	QuoteCollectionNames(quoteID string) ([]string, error)
	UpdateQuote(ownerID, quoteID, content, author string, collections []string) error
	DeleteQuote(ownerID, quoteID string) error

	// Collection operations, all scoped to the owning user
	ListCollections(ownerID string) ([]models.CollectionCount, error)
	CreateCollection(ownerID, name string) (*models.Collection, error)
	GetCollectionWithQuotes(ownerID, name string) (*models.Collection, []models.Quote, error)
	RenameCollection(ownerID string, collectionID int64, newName string) error
	DeleteCollection(ownerID string, collectionID int64) error

	// Public read operations, no owner filter
	PublicCollectionQuotes(name string) ([]models.Quote, error)
	PublicRandomQuote(name string) (*models.Quote, error)
	PublicQuote(quoteID string) (*models.Quote, error)
}
