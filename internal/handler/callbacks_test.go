package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "race_submit",
			expected: "race_submit",
		},
		{
			name:     "string with whitespace",
			input:    "  race_submit  ",
			expected: "race_submit",
		},
		{
			name:     "string with newline",
			input:    "race\nsubmit",
			expected: "racesubmit",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "tile\x00 3\x01",
			expected: "tile 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
