package handler

import (
	"strings"
	"testing"

	"wordrace/internal/race"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		expected string
	}{
		{
			name:     "start of the race",
			fraction: 0,
			expected: "▱▱▱▱▱▱▱▱ 0%",
		},
		{
			name:     "half way",
			fraction: 0.5,
			expected: "▰▰▰▰▱▱▱▱ 50%",
		},
		{
			name:     "finished",
			fraction: 1,
			expected: "▰▰▰▰▰▰▰▰ 100%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, progressBar(tt.fraction))
		})
	}
}

func TestSubmitFeedback(t *testing.T) {
	tests := []struct {
		name     string
		result   race.SubmitResult
		contains string
	}{
		{
			name:     "accepted word shows points",
			result:   race.SubmitResult{Status: race.StatusAccepted, Word: "cat", ScoreDelta: 30},
			contains: "CAT! +30",
		},
		{
			name:     "too short",
			result:   race.SubmitResult{Status: race.StatusTooShort, Word: "c"},
			contains: "at least 2",
		},
		{
			name:     "too long",
			result:   race.SubmitResult{Status: race.StatusTooLong},
			contains: "Too long",
		},
		{
			name:     "invalid word without suggestion",
			result:   race.SubmitResult{Status: race.StatusInvalidWord, Word: "xyz"},
			contains: "Not a word",
		},
		{
			name:     "invalid word with suggestion",
			result:   race.SubmitResult{Status: race.StatusInvalidWord, Word: "cot", Suggestion: "cat"},
			contains: "Did you mean CAT",
		},
		{
			name:     "duplicate word",
			result:   race.SubmitResult{Status: race.StatusDuplicateWord, Word: "cat"},
			contains: "Already used",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, submitFeedback(tt.result), tt.contains)
		})
	}
}

func TestRaceView_Running(t *testing.T) {
	snap := race.Snapshot{
		State:          race.StateRunning,
		Rack:           []rune("catxyz"),
		Selection:      []int{0, 1},
		Word:           "ca",
		Score:          30,
		PlayerProgress: 0.5,
	}

	text, markup := raceView(snap)

	assert.Contains(t, text, "You")
	assert.Contains(t, text, "Rival 3")
	assert.Contains(t, text, "Score: 30")
	assert.Contains(t, text, "Word: CA")
	assert.NotNil(t, markup)

	// 6 tiles in rows of 4 plus the action and quit rows.
	assert.Len(t, markup.InlineKeyboard, 4)
	assert.Len(t, markup.InlineKeyboard[0], 4)
	assert.Len(t, markup.InlineKeyboard[1], 2)

	// Selected tiles are masked out on the keyboard.
	assert.Equal(t, "·", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "T", markup.InlineKeyboard[0][2].Text)
}

func TestRaceView_Finished(t *testing.T) {
	tests := []struct {
		name     string
		winner   race.Winner
		contains string
	}{
		{
			name:     "player wins",
			winner:   race.Winner{IsPlayer: true},
			contains: "You won",
		},
		{
			name:     "opponent wins",
			winner:   race.Winner{Opponent: 2},
			contains: "Rival 3 won",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := race.Snapshot{
				State:  race.StateFinished,
				Score:  120,
				Winner: &tt.winner,
			}

			text, markup := raceView(snap)

			assert.Contains(t, text, tt.contains)
			assert.Contains(t, text, "Final score: 120")
			assert.NotNil(t, markup)
			assert.False(t, strings.Contains(text, "Word:"))
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedHour   int
		expectedMinute int
		expectedError  bool
	}{
		{name: "evening time", input: "20:00", expectedHour: 20},
		{name: "morning time", input: "08:30", expectedHour: 8, expectedMinute: 30},
		{name: "missing colon", input: "2000", expectedError: true},
		{name: "letters", input: "ab:cd", expectedError: true},
		{name: "empty", input: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := parseClock(tt.input)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedHour, hour)
			assert.Equal(t, tt.expectedMinute, minute)
		})
	}
}
