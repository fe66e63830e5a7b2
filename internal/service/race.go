package service

import (
	"wordrace/internal/race"

	"go.uber.org/zap"
)

// RaceService builds race sessions from a learner's vocabulary
type RaceService struct {
	vocab  *VocabService
	logger *zap.Logger
}

// NewRaceService creates a new race service
func NewRaceService(vocab *VocabService, logger *zap.Logger) *RaceService {
	return &RaceService{
		vocab:  vocab,
		logger: logger,
	}
}

// NewSession prepares a race engine for the user: resolves the difficulty
// tier from their learned-word count, loads their vocabulary into a word
// pool and wires both into a fresh engine. The engine is returned in the
// ready state; the caller starts it.
func (s *RaceService) NewSession(userID int64) (*race.Engine, error) {
	count, err := s.vocab.LearnedWordCount(userID)
	if err != nil {
		return nil, err
	}
	tier := race.ResolveTier(count)

	words, err := s.vocab.KnownWords(userID)
	if err != nil {
		return nil, err
	}
	terms := make([]string, 0, len(words))
	for _, w := range words {
		terms = append(terms, w.Word)
	}
	pool := race.BuildPool(terms, tier.RackSize, tier.MaxWordLength)

	s.logger.Info("race session prepared",
		zap.Int64("user_id", userID),
		zap.Int("learned_words", count),
		zap.Int("tier", tier.Level),
		zap.Int("pool_size", pool.Len()),
	)

	return race.NewEngine(race.Options{
		Tier:   tier,
		Pool:   pool,
		Logger: s.logger,
	}), nil
}
