package postgres

import (
	"database/sql"

	"wordrace/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// SaveWord saves a word-translation pair
func (r *WordRepo) SaveWord(userID int64, word, translation string) error {
	query := `
		INSERT INTO words (user_id, word, translation)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, userID, word, translation)
	return err
}

// GetKnownWords returns every word the user has saved, newest first
func (r *WordRepo) GetKnownWords(userID int64) ([]domain.Word, error) {
	query := `
		SELECT id, user_id, word, translation, created_at
		FROM words
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.UserID, &w.Word, &w.Translation, &w.CreatedAt); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// CountWords returns how many words the user has saved
func (r *WordRepo) CountWords(userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM words WHERE user_id = $1`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// GetRandomWord returns a random word for the user
func (r *WordRepo) GetRandomWord(userID int64) (*domain.Word, error) {
	var w domain.Word
	query := `
		SELECT id, user_id, word, translation, created_at
		FROM words
		WHERE user_id = $1
		ORDER BY RANDOM()
		LIMIT 1
	`
	err := r.db.QueryRow(query, userID).Scan(
		&w.ID, &w.UserID, &w.Word, &w.Translation, &w.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}
