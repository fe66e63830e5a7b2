package race

// OpponentCount is the number of computer-controlled horses in every race.
const OpponentCount = 3

// Tier holds the difficulty parameters for one race session.
// It is computed once at session start and never changes mid-race.
type Tier struct {
	Level              int
	RackSize           int
	MaxWordLength      int
	PlayerBaseSpeed    float64
	OpponentBaseSpeeds [OpponentCount]float64
	FinishDistance     float64
}

// ResolveTier maps a learner's cumulative learned-word count to a difficulty tier.
// Counts below 10 give tier 1, 10-29 tier 2, 30-59 tier 3, 60 and above tier 4.
func ResolveTier(learnedWordCount int) Tier {
	level := 1
	switch {
	case learnedWordCount >= 60:
		level = 4
	case learnedWordCount >= 30:
		level = 3
	case learnedWordCount >= 10:
		level = 2
	}

	t := Tier{
		Level:           level,
		RackSize:        5 + level,
		MaxWordLength:   2 + level,
		PlayerBaseSpeed: float64(46 + 4*level),
		FinishDistance:  float64(900 + 120*level),
	}
	for i := 0; i < OpponentCount; i++ {
		// Opponents are staggered by 1.2 units/s so two of them never
		// cross the finish line at exactly the same distance.
		t.OpponentBaseSpeeds[i] = float64(44+4*level) + 1.2*float64(i)
	}
	return t
}
