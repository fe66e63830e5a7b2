package repository

import (
	"wordrace/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
	LearnedCount(userID int64) (int, error)
	IncrementLearnedCount(userID int64) error
}

// WordRepository defines word data operations
type WordRepository interface {
	SaveWord(userID int64, word, translation string) error
	GetKnownWords(userID int64) ([]domain.Word, error)
	CountWords(userID int64) (int, error)
	GetRandomWord(userID int64) (*domain.Word, error)
}

// ReminderRepository defines reminder data operations
type ReminderRepository interface {
	Save(r *domain.Reminder) error
	ListByUser(userID int64) ([]domain.Reminder, error)
	ListEnabled() ([]domain.Reminder, error)
	Delete(id int, userID int64) error
	SetEnabled(id int, userID int64, enabled bool) error
}
