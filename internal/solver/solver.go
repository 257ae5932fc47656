// internal/solver/solver.go
//
// Greedy elimination loop for a single solve attempt.
// Responsibilities:
//   - Drive rounds: pick a guess, score it, filter the candidate set.
//   - Track state transitions: active → solved/exhausted/unsolved.
//   - Record every guess in the attempt's history (at most MaxRounds).
//
// Notes:
//   - Feedback scoring and candidate matching live in internal/feedback.
//   - Guess ranking is delegated to a Strategy so alternates can be
//     swapped in without touching the loop.
//   - Fully synchronous and side-effect free; a shared ExclusionSet must
//     not be mutated while solves that read it are running.

package solver

import (
	"github.com/wordsleuth/solver/internal/feedback"
)

// DefaultMaxRounds is the standard guess budget.
const DefaultMaxRounds = 6

// Status is the solve attempt's terminal state.
type Status uint8

const (
	// Solved: a guess came back all-Correct within the round budget.
	Solved Status = iota
	// Exhausted: filtering emptied the candidate set. The answer was not
	// in the supplied dictionary (or was excluded).
	Exhausted
	// Unsolved: the round budget ran out with candidates remaining.
	Unsolved
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	default:
		return "unsolved"
	}
}

// Outcome is the result of one solve attempt. Word and Rounds are only
// meaningful when Status == Solved. Running out of rounds or candidates
// is normal control flow, not an error.
type Outcome struct {
	Status Status
	Word   string
	Rounds int
}

// Solver runs repeated solve attempts with a fixed configuration. The
// zero value is not usable; construct with New.
type Solver struct {
	strategy   Strategy
	maxRounds  int
	exclusions *ExclusionSet
}

// Option configures a Solver.
type Option func(*Solver)

// WithMaxRounds overrides the guess budget.
func WithMaxRounds(n int) Option {
	return func(s *Solver) { s.maxRounds = n }
}

// WithExclusions bars the given words from ever being suggested.
// The set is read during filtering; mutate it only between attempts.
func WithExclusions(e *ExclusionSet) Option {
	return func(s *Solver) { s.exclusions = e }
}

// New constructs a Solver around a guess-ranking strategy.
func New(strategy Strategy, opts ...Option) *Solver {
	s := &Solver{strategy: strategy, maxRounds: DefaultMaxRounds}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Solve attempts to find answer by elimination over dict, which must be
// ordered by descending corpus frequency. It returns the outcome and the
// full guess history (including the winning guess, when there is one).
//
// Per round:
//  1. Round one plays the strategy's opening word; later rounds play the
//     strategy's pick from the remaining candidates.
//  2. The guess is scored against the answer and appended to the history.
//  3. All-Correct ends the attempt as Solved.
//  4. Otherwise candidates inconsistent with the feedback (or excluded)
//     are filtered out. An empty set ends the attempt as Exhausted.
func (s *Solver) Solve(answer string, dict []string) (Outcome, []feedback.Guess) {
	candidates := NewCandidateSet(dict)
	history := make([]feedback.Guess, 0, s.maxRounds)

	word := s.strategy.Opening()
	for round := 1; round <= s.maxRounds; round++ {
		guess := feedback.Check(answer, word)
		history = append(history, guess)

		if guess.IsCorrect() {
			return Outcome{Status: Solved, Word: guess.Word, Rounds: round}, history
		}

		candidates.Filter(func(c string) bool {
			if s.exclusions != nil && s.exclusions.Contains(c) {
				return false
			}
			return feedback.Matches(guess, c)
		})
		if candidates.Len() == 0 {
			return Outcome{Status: Exhausted}, history
		}

		word = s.strategy.Pick(candidates.Words())
	}
	return Outcome{Status: Unsolved}, history
}
