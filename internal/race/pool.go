package race

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// fallbackWords keeps the race playable when a learner has no usable
// vocabulary yet: short, common words every beginner course covers.
var fallbackWords = []string{
	"cat", "dog", "sun", "run", "big", "red", "pen", "cup",
	"hat", "bus", "egg", "box", "map", "bed", "car", "fan",
	"pig", "cow", "ant", "bee",
}

// Pool is the set of words a player may build during one race session.
// It is read-only once built.
type Pool struct {
	words map[string]struct{}
}

// BuildPool normalizes raw vocabulary terms into a candidate word set.
// Terms are lowercased, stripped of non-alphabetic characters and kept
// only when their length falls in [2, max(rackSize, maxWordLength)].
// An empty result is replaced by the built-in fallback list so a race
// can always start.
func BuildPool(terms []string, rackSize, maxWordLength int) *Pool {
	maxLen := rackSize
	if maxWordLength > maxLen {
		maxLen = maxWordLength
	}

	words := make(map[string]struct{})
	for _, term := range terms {
		w := normalizeTerm(term)
		if len(w) >= 2 && len(w) <= maxLen {
			words[w] = struct{}{}
		}
	}

	if len(words) == 0 {
		for _, w := range fallbackWords {
			words[w] = struct{}{}
		}
	}

	return &Pool{words: words}
}

// Contains reports whether w is a playable word.
func (p *Pool) Contains(w string) bool {
	_, ok := p.words[w]
	return ok
}

// Len returns the number of words in the pool.
func (p *Pool) Len() int {
	return len(p.words)
}

// WordsUpTo returns all pool words of length maxLen or shorter, sorted so
// that seed selection is reproducible under a seeded random source.
func (p *Pool) WordsUpTo(maxLen int) []string {
	var out []string
	for w := range p.words {
		if len(w) <= maxLen {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// Nearest returns a pool word within edit distance 1 of w, or "" when no
// such word exists. Used to hint at likely misspellings.
func (p *Pool) Nearest(w string) string {
	best := ""
	for _, candidate := range p.WordsUpTo(len(w) + 1) {
		if candidate == w {
			continue
		}
		if levenshtein.ComputeDistance(w, candidate) == 1 {
			if best == "" || candidate < best {
				best = candidate
			}
		}
	}
	return best
}

// normalizeTerm lowercases a term and drops everything outside a-z.
func normalizeTerm(term string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(term) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
