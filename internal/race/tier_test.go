package race

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTier_Boundaries(t *testing.T) {
	tests := []struct {
		name          string
		learnedCount  int
		expectedLevel int
	}{
		{name: "zero words", learnedCount: 0, expectedLevel: 1},
		{name: "just below tier 2", learnedCount: 9, expectedLevel: 1},
		{name: "tier 2 lower bound", learnedCount: 10, expectedLevel: 2},
		{name: "tier 2 upper bound", learnedCount: 29, expectedLevel: 2},
		{name: "tier 3 lower bound", learnedCount: 30, expectedLevel: 3},
		{name: "tier 3 upper bound", learnedCount: 59, expectedLevel: 3},
		{name: "tier 4 lower bound", learnedCount: 60, expectedLevel: 4},
		{name: "well past tier 4", learnedCount: 1000, expectedLevel: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := ResolveTier(tt.learnedCount)
			assert.Equal(t, tt.expectedLevel, tier.Level)
		})
	}
}

func TestResolveTier_DerivedParameters(t *testing.T) {
	tier := ResolveTier(0) // tier 1

	assert.Equal(t, 6, tier.RackSize)
	assert.Equal(t, 3, tier.MaxWordLength)
	assert.Equal(t, 50.0, tier.PlayerBaseSpeed)
	assert.Equal(t, 1020.0, tier.FinishDistance)
	assert.Equal(t, 48.0, tier.OpponentBaseSpeeds[0])
	assert.InDelta(t, 49.2, tier.OpponentBaseSpeeds[1], 1e-9)
	assert.InDelta(t, 50.4, tier.OpponentBaseSpeeds[2], 1e-9)
}

func TestResolveTier_OpponentsStaggered(t *testing.T) {
	for count := 0; count <= 100; count += 10 {
		tier := ResolveTier(count)
		assert.Less(t, tier.OpponentBaseSpeeds[0], tier.OpponentBaseSpeeds[1])
		assert.Less(t, tier.OpponentBaseSpeeds[1], tier.OpponentBaseSpeeds[2])
	}
}
