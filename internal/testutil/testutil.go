package testutil

import (
	"time"

	"wordrace/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(id int, userID int64, word, translation string) *domain.Word {
	return &domain.Word{
		ID:          id,
		UserID:      userID,
		Word:        word,
		Translation: translation,
		CreatedAt:   time.Now(),
	}
}

// NewTestReminder creates a test reminder
func NewTestReminder(id int, userID int64, hour, minute int, repeatDays string) domain.Reminder {
	return domain.Reminder{
		ID:         id,
		UserID:     userID,
		Hour:       hour,
		Minute:     minute,
		RepeatDays: repeatDays,
		Enabled:    true,
		CreatedAt:  time.Now(),
	}
}
