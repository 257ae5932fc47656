// internal/solver/candidates.go
//
// Candidate bookkeeping for a single solve attempt.
// Responsibilities:
//   - CandidateSet: a shrinking view over the shared frequency-ordered
//     dictionary, copied lazily on first mutation so the dictionary owned
//     by the loader is never altered.
//   - ExclusionSet: words permanently barred from selection across
//     sequential attempts.

package solver

// CandidateSet holds the words still consistent with every guess so far.
// It starts as a borrowed view of an externally owned slice and switches
// to a private copy on the first Filter call. It only ever shrinks.
type CandidateSet struct {
	words []string
	owned bool
}

// NewCandidateSet borrows dict without copying. The caller keeps ownership
// of the slice; the set never writes through it.
func NewCandidateSet(dict []string) CandidateSet {
	return CandidateSet{words: dict}
}

// Len reports the number of remaining candidates.
func (s *CandidateSet) Len() int { return len(s.words) }

// First returns the highest-ranked remaining candidate. The dictionary is
// ordered by descending frequency, so this is the greedy default pick.
// Callers must check Len first.
func (s *CandidateSet) First() string { return s.words[0] }

// Words exposes the remaining candidates. The returned slice is the set's
// backing storage; callers must treat it as read-only.
func (s *CandidateSet) Words() []string { return s.words }

// Filter retains only candidates for which keep returns true. The first
// call copies the borrowed dictionary; later calls retain in place.
func (s *CandidateSet) Filter(keep func(word string) bool) {
	if !s.owned {
		out := make([]string, 0, len(s.words))
		for _, w := range s.words {
			if keep(w) {
				out = append(out, w)
			}
		}
		s.words = out
		s.owned = true
		return
	}
	kept := s.words[:0]
	for _, w := range s.words {
		if keep(w) {
			kept = append(kept, w)
		}
	}
	s.words = kept
}

// ExclusionSet is a set of words that must never be suggested again,
// typically answers confirmed by earlier attempts in a batch. It is read
// during filtering and must only be mutated between attempts.
type ExclusionSet struct {
	words map[string]struct{}
}

// NewExclusionSet builds a set from zero or more seed words.
func NewExclusionSet(words ...string) *ExclusionSet {
	s := &ExclusionSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.words[w] = struct{}{}
	}
	return s
}

// Add marks w as excluded.
func (s *ExclusionSet) Add(w string) { s.words[w] = struct{}{} }

// Contains reports whether w is excluded.
func (s *ExclusionSet) Contains(w string) bool {
	_, ok := s.words[w]
	return ok
}

// Len reports the number of excluded words.
func (s *ExclusionSet) Len() int { return len(s.words) }
