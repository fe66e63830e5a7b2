package domain

import "time"

// Word represents a word-translation pair the learner knows.
type Word struct {
	ID          int
	UserID      int64
	Word        string
	Translation string
	CreatedAt   time.Time
}
