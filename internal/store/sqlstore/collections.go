package sqlstore

import (
	"database/sql"
	"errors"

	"quotevault/internal/models"
	"quotevault/internal/store"
)

func (s *SQLStore) ListCollections(ownerID string) ([]models.CollectionCount, error) {
	query := s.rebind(`
		SELECT c.id, c.name, c.user_id, COUNT(qc.id)
		FROM collections c
		LEFT JOIN quote_collections qc ON c.id = qc.collection_id
		WHERE c.user_id = ?
		GROUP BY c.id, c.name, c.user_id
		ORDER BY c.id
	`)
	rows, err := s.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []models.CollectionCount
	for rows.Next() {
		var c models.CollectionCount
		if err := rows.Scan(&c.ID, &c.Name, &c.UserID, &c.QuoteCount); err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}
	return collections, rows.Err()
}

func (s *SQLStore) CreateCollection(ownerID, name string) (*models.Collection, error) {
	var id int64
	query := s.rebind("INSERT INTO collections (name, user_id) VALUES (?, ?) RETURNING id")
	err := s.db.QueryRow(query, name, ownerID).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, store.ErrConflict
		}
		return nil, err
	}
	return &models.Collection{ID: id, Name: name, UserID: ownerID}, nil
}

func (s *SQLStore) GetCollectionWithQuotes(ownerID, name string) (*models.Collection, []models.Quote, error) {
	query := s.rebind(`
		SELECT c.id, c.name, c.user_id, q.id, q.content, q.author
		FROM collections c
		LEFT JOIN quote_collections qc ON c.id = qc.collection_id
		LEFT JOIN quotes q ON qc.quote_id = q.id
		WHERE c.name = ? AND c.user_id = ?
	`)
	rows, err := s.db.Query(query, name, ownerID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var collection *models.Collection
	var quotes []models.Quote
	for rows.Next() {
		var c models.Collection
		var quoteID, content, author sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.UserID, &quoteID, &content, &author); err != nil {
			return nil, nil, err
		}
		if collection == nil {
			collection = &c
		}
		if quoteID.Valid {
			quotes = append(quotes, models.Quote{
				ID:      quoteID.String,
				Content: content.String,
				Author:  author.String,
				UserID:  c.UserID,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	if collection == nil {
		return nil, nil, store.ErrNotFound
	}
	return collection, quotes, nil
}

func (s *SQLStore) RenameCollection(ownerID string, collectionID int64, newName string) error {
	query := s.rebind("UPDATE collections SET name = ? WHERE id = ? AND user_id = ?")
	result, err := s.db.Exec(query, newName, collectionID, ownerID)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrConflict
		}
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *SQLStore) DeleteCollection(ownerID string, collectionID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id int64
	query := s.rebind("SELECT id FROM collections WHERE id = ? AND user_id = ?")
	err = tx.QueryRow(query, collectionID, ownerID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	if err != nil {
		return err
	}

	// Delete memberships first (foreign key constraint)
	query = s.rebind("DELETE FROM quote_collections WHERE collection_id = ?")
	if _, err := tx.Exec(query, collectionID); err != nil {
		return err
	}

	query = s.rebind("DELETE FROM collections WHERE id = ?")
	if _, err := tx.Exec(query, collectionID); err != nil {
		return err
	}

	return tx.Commit()
}
