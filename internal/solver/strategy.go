// internal/solver/strategy.go
//
// Pluggable guess ranking. The solve loop owns the state machine; a
// Strategy only decides which word to play. Two strategies ship:
//   - FirstCandidate: greedy frequency order (the dictionary's order).
//   - LetterWeighted: ranks candidates by summed per-letter corpus
//     frequency over distinct letters.

package solver

// DefaultOpener is the fixed first guess used before any feedback exists.
// Chosen for letter coverage, independent of the candidate set.
const DefaultOpener = "tares"

// Strategy selects guesses for the solve loop.
type Strategy interface {
	// Opening returns the fixed round-one guess.
	Opening() string

	// Pick chooses the next guess from the remaining candidates.
	// Called only with a non-empty slice; the slice is read-only and
	// ordered by descending corpus frequency.
	Pick(candidates []string) string
}

// FirstCandidate plays the opener, then always the highest-frequency
// remaining candidate. This is the greedy default: no lookahead, no
// scoring, optimality traded for simplicity.
type FirstCandidate struct {
	Opener string
}

// NewFirstCandidate returns the default strategy with the standard opener.
func NewFirstCandidate() FirstCandidate {
	return FirstCandidate{Opener: DefaultOpener}
}

func (s FirstCandidate) Opening() string {
	if s.Opener == "" {
		return DefaultOpener
	}
	return s.Opener
}

func (s FirstCandidate) Pick(candidates []string) string { return candidates[0] }

// LetterWeighted ranks candidates by the sum of per-letter frequencies for
// the candidate's distinct letters. The table is typically derived from
// the loader's corpus; a zero table degenerates to the first candidate.
type LetterWeighted struct {
	Opener string
	Freq   [26]int
}

// NewLetterWeighted builds the strategy from an external per-letter table.
func NewLetterWeighted(freq [26]int) LetterWeighted {
	return LetterWeighted{Opener: DefaultOpener, Freq: freq}
}

func (s LetterWeighted) Opening() string {
	if s.Opener == "" {
		return DefaultOpener
	}
	return s.Opener
}

// Pick returns the candidate with the highest distinct-letter score.
// Ties keep the earlier (higher-frequency) candidate.
func (s LetterWeighted) Pick(candidates []string) string {
	best := candidates[0]
	bestScore := s.score(best)
	for _, w := range candidates[1:] {
		if sc := s.score(w); sc > bestScore {
			best, bestScore = w, sc
		}
	}
	return best
}

func (s LetterWeighted) score(w string) int {
	var seen [26]bool
	score := 0
	for i := 0; i < len(w); i++ {
		c := int(w[i] - 'a')
		if c < 0 || c >= 26 || seen[c] {
			continue
		}
		seen[c] = true
		score += s.Freq[c]
	}
	return score
}

// LetterFrequencies tallies a per-letter table from a word list, counting
// each occurrence. Handy for feeding LetterWeighted from the corpus.
func LetterFrequencies(words []string) [26]int {
	var freq [26]int
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			c := int(w[i] - 'a')
			if c >= 0 && c < 26 {
				freq[c]++
			}
		}
	}
	return freq
}
