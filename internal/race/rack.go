package race

import "math/rand"

const (
	vowels     = "aeiou"
	consonants = "bcdfghjklmnpqrstvwxyz"

	// vowelChance is the probability that a padding letter is a vowel.
	vowelChance = 0.35

	// fallbackSeed is used when the pool has no word short enough for the rack.
	fallbackSeed = "cat"
)

// generateRack builds a shuffled rack of size letters that is guaranteed to
// contain at least one pool word as a sub-multiset. It returns the rack and
// the seed word embedded in it; the seed is the fallback word when the pool
// holds no word of length min(size, maxWordLength) or shorter.
func generateRack(pool *Pool, size, maxWordLength int, rng *rand.Rand) ([]rune, string) {
	maxSeedLen := size
	if maxWordLength < maxSeedLen {
		maxSeedLen = maxWordLength
	}

	seed := fallbackSeed
	if candidates := pool.WordsUpTo(maxSeedLen); len(candidates) > 0 {
		seed = candidates[rng.Intn(len(candidates))]
	}

	rack := []rune(seed)
	for len(rack) < size {
		rack = append(rack, randomLetter(rng))
	}
	shuffleRack(rack, rng)
	return rack, seed
}

// randomLetter draws a padding letter: a vowel with probability vowelChance,
// otherwise a consonant, uniform within its class.
func randomLetter(rng *rand.Rand) rune {
	if rng.Float64() < vowelChance {
		return rune(vowels[rng.Intn(len(vowels))])
	}
	return rune(consonants[rng.Intn(len(consonants))])
}

// shuffleRack reorders letters in place with a Fisher-Yates shuffle.
func shuffleRack(rack []rune, rng *rand.Rand) {
	for i := len(rack) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		rack[i], rack[j] = rack[j], rack[i]
	}
}
