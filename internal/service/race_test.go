package service

import (
	"fmt"
	"testing"

	"wordrace/internal/domain"
	"wordrace/internal/race"
	"wordrace/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestRaceService_NewSession(t *testing.T) {
	tests := []struct {
		name         string
		stored       int
		actual       int
		words        []domain.Word
		expectedTier int
		expectedRack int
	}{
		{
			name:         "beginner gets tier 1",
			stored:       0,
			actual:       3,
			words:        []domain.Word{*testutil.NewTestWord(1, 123, "cat", "gato")},
			expectedTier: 1,
			expectedRack: 6,
		},
		{
			name:         "tier follows the larger of counter and collection",
			stored:       12,
			actual:       35,
			words:        []domain.Word{*testutil.NewTestWord(1, 123, "cat", "gato")},
			expectedTier: 3,
			expectedRack: 8,
		},
		{
			name:         "empty vocabulary still builds a playable session",
			stored:       0,
			actual:       0,
			words:        nil,
			expectedTier: 1,
			expectedRack: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWords := new(testutil.MockWordRepository)
			mockUsers := new(testutil.MockUserRepository)
			mockUsers.On("LearnedCount", int64(123)).Return(tt.stored, nil)
			mockWords.On("CountWords", int64(123)).Return(tt.actual, nil)
			mockWords.On("GetKnownWords", int64(123)).Return(tt.words, nil)

			vocab := NewVocabService(mockWords, mockUsers, testutil.NewTestLogger())
			service := NewRaceService(vocab, testutil.NewTestLogger())

			engine, err := service.NewSession(123)

			assert.NoError(t, err)
			assert.NotNil(t, engine)

			snap := engine.Snapshot()
			assert.Equal(t, race.StateReady, snap.State)
			assert.Len(t, snap.Rack, tt.expectedRack)
			assert.Equal(t, 0, snap.Score)
		})
	}
}

func TestRaceService_NewSession_RepoError(t *testing.T) {
	mockWords := new(testutil.MockWordRepository)
	mockUsers := new(testutil.MockUserRepository)
	mockUsers.On("LearnedCount", int64(123)).Return(0, fmt.Errorf("db error"))

	vocab := NewVocabService(mockWords, mockUsers, testutil.NewTestLogger())
	service := NewRaceService(vocab, testutil.NewTestLogger())

	engine, err := service.NewSession(123)

	assert.Error(t, err)
	assert.Nil(t, engine)
}
