package sqlstore

import (
	"database/sql"
	"errors"

	"quotevault/internal/models"
	"quotevault/internal/store"
)

// Public queries resolve collections by name alone. Names are globally
// unique, so the lookup is unambiguous even without an owner filter.

func (s *SQLStore) PublicCollectionQuotes(name string) ([]models.Quote, error) {
	collectionID, err := s.collectionIDByName(name)
	if err != nil {
		return nil, err
	}

	query := s.rebind(`
		SELECT q.id, q.content, q.author, q.user_id
		FROM quotes q
		JOIN quote_collections qc ON q.id = qc.quote_id
		WHERE qc.collection_id = ?
	`)
	rows, err := s.db.Query(query, collectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []models.Quote
	for rows.Next() {
		var q models.Quote
		if err := rows.Scan(&q.ID, &q.Content, &q.Author, &q.UserID); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (s *SQLStore) PublicRandomQuote(name string) (*models.Quote, error) {
	collectionID, err := s.collectionIDByName(name)
	if err != nil {
		return nil, err
	}

	var q models.Quote
	query := s.rebind(`
		SELECT q.id, q.content, q.author, q.user_id
		FROM quotes q
		JOIN quote_collections qc ON q.id = qc.quote_id
		WHERE qc.collection_id = ?
		ORDER BY RANDOM()
		LIMIT 1
	`)
	err = s.db.QueryRow(query, collectionID).Scan(&q.ID, &q.Content, &q.Author, &q.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrEmptyCollection
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *SQLStore) PublicQuote(quoteID string) (*models.Quote, error) {
	var q models.Quote
	query := s.rebind("SELECT id, content, author, user_id FROM quotes WHERE id = ?")
	err := s.db.QueryRow(query, quoteID).Scan(&q.ID, &q.Content, &q.Author, &q.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *SQLStore) collectionIDByName(name string) (int64, error) {
	var id int64
	query := s.rebind("SELECT id FROM collections WHERE name = ?")
	err := s.db.QueryRow(query, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, store.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}
