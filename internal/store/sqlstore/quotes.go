package sqlstore

import (
	"database/sql"
	"errors"

	"quotevault/internal/models"
	"quotevault/internal/store"
)

func (s *SQLStore) ListQuotes(ownerID string) ([]models.Quote, error) {
	query := s.rebind("SELECT id, content, author, user_id FROM quotes WHERE user_id = ?")
	rows, err := s.db.Query(query, ownerID)
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

func (s *SQLStore) CreateQuote(ownerID, content, author string, collections []string) (*models.Quote, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	quote := &models.Quote{ID: models.NewID(), Content: content, Author: author, UserID: ownerID}
	query := s.rebind("INSERT INTO quotes (id, content, author, user_id) VALUES (?, ?, ?, ?)")
	if _, err := tx.Exec(query, quote.ID, quote.Content, quote.Author, quote.UserID); err != nil {
		return nil, err
	}

	for _, name := range collections {
		if err := s.linkQuote(tx, quote.ID, ownerID, name); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return quote, nil
}

// linkQuote resolves a collection by (name, owner) and inserts a membership
// row. Resolving by name alone would let a user attach quotes to someone
// else's collection.
func (s *SQLStore) linkQuote(tx *sql.Tx, quoteID, ownerID, name string) error {
	var collectionID int64
	query := s.rebind("SELECT id FROM collections WHERE name = ? AND user_id = ?")
	err := tx.QueryRow(query, name, ownerID).Scan(&collectionID)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	if err != nil {
		return err
	}

	query = s.rebind("INSERT INTO quote_collections (quote_id, collection_id) VALUES (?, ?)")
	if _, err := tx.Exec(query, quoteID, collectionID); err != nil {
		if isUniqueViolation(err) {
			return store.ErrConflict
		}
		return err
	}
	return nil
}

func (s *SQLStore) GetQuote(ownerID, quoteID string) (*models.Quote, error) {
	var q models.Quote
	query := s.rebind("SELECT id, content, author, user_id FROM quotes WHERE id = ? AND user_id = ?")
	err := s.db.QueryRow(query, quoteID, ownerID).Scan(&q.ID, &q.Content, &q.Author, &q.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *SQLStore) QuoteCollectionNames(quoteID string) ([]string, error) {
	query := s.rebind(`
		SELECT c.name
		FROM collections c
		JOIN quote_collections qc ON c.id = qc.collection_id
		WHERE qc.quote_id = ?
	`)
	rows, err := s.db.Query(query, quoteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLStore) UpdateQuote(ownerID, quoteID, content, author string, collections []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := s.rebind("UPDATE quotes SET content = ?, author = ? WHERE id = ? AND user_id = ?")
	result, err := tx.Exec(query, content, author, quoteID, ownerID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}

	current, err := s.quoteCollectionNamesTx(tx, quoteID)
	if err != nil {
		return err
	}

	// Memberships are only rewritten when the requested set actually differs;
	// the replace itself is a full delete + re-insert.
	if !sameNameSet(current, collections) {
		query = s.rebind("DELETE FROM quote_collections WHERE quote_id = ?")
		if _, err := tx.Exec(query, quoteID); err != nil {
			return err
		}
		for _, name := range collections {
			if err := s.linkQuote(tx, quoteID, ownerID, name); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (s *SQLStore) DeleteQuote(ownerID, quoteID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id string
	query := s.rebind("SELECT id FROM quotes WHERE id = ? AND user_id = ?")
	err = tx.QueryRow(query, quoteID, ownerID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	if err != nil {
		return err
	}

	// Delete memberships first (foreign key constraint)
	query = s.rebind("DELETE FROM quote_collections WHERE quote_id = ?")
	if _, err := tx.Exec(query, quoteID); err != nil {
		return err
	}

	query = s.rebind("DELETE FROM quotes WHERE id = ?")
	if _, err := tx.Exec(query, quoteID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLStore) quoteCollectionNamesTx(tx *sql.Tx, quoteID string) ([]string, error) {
	query := s.rebind(`
		SELECT c.name
		FROM collections c
		JOIN quote_collections qc ON c.id = qc.collection_id
		WHERE qc.quote_id = ?
	`)
	rows, err := tx.Query(query, quoteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func sameNameSet(a, b []string) bool {
	seen := make(map[string]bool, len(a))
	for _, name := range a {
		seen[name] = true
	}
	matched := 0
	for _, name := range b {
		if !seen[name] {
			return false
		}
		seen[name] = false
		matched++
	}
	return matched == len(a)
}
