package sqlstore

import (
	"database/sql"
	"errors"

	"quotevault/internal/models"
	"quotevault/internal/store"
)

func (s *SQLStore) CreateUser(email, passwordHash string) (*models.User, error) {
	user := &models.User{ID: models.NewID(), Email: email, Password: passwordHash}
	query := s.rebind("INSERT INTO users (id, email, password) VALUES (?, ?, ?)")
	_, err := s.db.Exec(query, user.ID, user.Email, user.Password)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, store.ErrConflict
		}
		return nil, err
	}
	return user, nil
}

func (s *SQLStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	query := s.rebind("SELECT id, email, password FROM users WHERE email = ?")
	err := s.db.QueryRow(query, email).Scan(&user.ID, &user.Email, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLStore) GetUserByID(id string) (*models.User, error) {
	var user models.User
	query := s.rebind("SELECT id, email, password FROM users WHERE id = ?")
	err := s.db.QueryRow(query, id).Scan(&user.ID, &user.Email, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLStore) SetPassword(userID, passwordHash string) error {
	query := s.rebind("UPDATE users SET password = ? WHERE id = ?")
	result, err := s.db.Exec(query, passwordHash, userID)
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
	return nil
}
