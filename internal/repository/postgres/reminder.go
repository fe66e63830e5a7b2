package postgres

import (
	"database/sql"

	"wordrace/internal/domain"
)

// ReminderRepo implements repository.ReminderRepository
type ReminderRepo struct {
	db *sql.DB
}

// NewReminderRepo creates a new reminder repository
func NewReminderRepo(db *sql.DB) *ReminderRepo {
	return &ReminderRepo{db: db}
}

// Save inserts a reminder and fills in its generated ID
func (r *ReminderRepo) Save(rem *domain.Reminder) error {
	query := `
		INSERT INTO reminders (user_id, hour, minute, repeat_days, enabled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRow(query, rem.UserID, rem.Hour, rem.Minute, rem.RepeatDays, rem.Enabled).
		Scan(&rem.ID)
}

// ListByUser returns the user's reminders, oldest first
func (r *ReminderRepo) ListByUser(userID int64) ([]domain.Reminder, error) {
	query := `
		SELECT id, user_id, hour, minute, repeat_days, enabled, created_at
		FROM reminders
		WHERE user_id = $1
		ORDER BY id
	`
	return r.list(query, userID)
}

// ListEnabled returns every enabled reminder across all users
func (r *ReminderRepo) ListEnabled() ([]domain.Reminder, error) {
	query := `
		SELECT id, user_id, hour, minute, repeat_days, enabled, created_at
		FROM reminders
		WHERE enabled = TRUE
		ORDER BY id
	`
	return r.list(query)
}

func (r *ReminderRepo) list(query string, args ...interface{}) ([]domain.Reminder, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []domain.Reminder
	for rows.Next() {
		var rem domain.Reminder
		if err := rows.Scan(
			&rem.ID, &rem.UserID, &rem.Hour, &rem.Minute,
			&rem.RepeatDays, &rem.Enabled, &rem.CreatedAt,
		); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}

	return reminders, rows.Err()
}

// Delete removes a reminder owned by the user
func (r *ReminderRepo) Delete(id int, userID int64) error {
	query := `DELETE FROM reminders WHERE id = $1 AND user_id = $2`
	_, err := r.db.Exec(query, id, userID)
	return err
}

// SetEnabled toggles a reminder owned by the user
func (r *ReminderRepo) SetEnabled(id int, userID int64, enabled bool) error {
	query := `
		UPDATE reminders
		SET enabled = $3
		WHERE id = $1 AND user_id = $2
	`
	_, err := r.db.Exec(query, id, userID, enabled)
	return err
}
