package service

import (
	"fmt"

	"wordrace/internal/domain"
	"wordrace/internal/repository"

	"go.uber.org/zap"
)

// VocabService handles the learner's vocabulary
type VocabService struct {
	wordRepo repository.WordRepository
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewVocabService creates a new vocabulary service
func NewVocabService(
	wordRepo repository.WordRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) *VocabService {
	return &VocabService{
		wordRepo: wordRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// SaveWordPair saves a word-translation pair and bumps the learned counter
func (s *VocabService) SaveWordPair(userID int64, word, translation string) error {
	if word == "" || translation == "" {
		return fmt.Errorf("word and translation cannot be empty")
	}
	if err := s.wordRepo.SaveWord(userID, word, translation); err != nil {
		return err
	}
	if err := s.userRepo.IncrementLearnedCount(userID); err != nil {
		// The counter is advisory; the word itself is already saved.
		s.logger.Warn("failed to bump learned counter",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
	return nil
}

// KnownWords returns every word the learner has saved
func (s *VocabService) KnownWords(userID int64) ([]domain.Word, error) {
	return s.wordRepo.GetKnownWords(userID)
}

// LearnedWordCount returns the learner's progress: the larger of the stored
// counter and the actual size of the known-word collection.
func (s *VocabService) LearnedWordCount(userID int64) (int, error) {
	stored, err := s.userRepo.LearnedCount(userID)
	if err != nil {
		return 0, err
	}
	actual, err := s.wordRepo.CountWords(userID)
	if err != nil {
		return 0, err
	}
	if actual > stored {
		return actual, nil
	}
	return stored, nil
}

// GetRandomPair returns a random word-translation pair for practice
func (s *VocabService) GetRandomPair(userID int64) (*domain.Word, error) {
	return s.wordRepo.GetRandomWord(userID)
}
