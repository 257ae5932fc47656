// internal/batch/batch.go
//
// Sequential batch runs of the solver over an answers list.
// Responsibilities:
//   - Run one solve attempt per answer against the shared dictionary.
//   - Aggregate solved/missed counts, per-round histogram, average rounds.
//   - Optionally track solved answers in an exclusion set so later
//     attempts never re-suggest them.

package batch

import (
	"github.com/rs/zerolog/log"

	"github.com/wordsleuth/solver/internal/solver"
)

// Runner drives solve attempts across a corpus of answers.
type Runner struct {
	// Dictionary is the shared frequency-ordered word list. Attempts
	// borrow it; it is never mutated.
	Dictionary []string

	// Strategy ranks guesses; defaults to frequency order when nil.
	Strategy solver.Strategy

	// MaxRounds is the per-attempt guess budget (default 6).
	MaxRounds int

	// TrackSolved excludes each solved answer from all later attempts,
	// mimicking a player working through a puzzle series.
	TrackSolved bool
}

// Report aggregates the outcomes of one batch run.
type Report struct {
	Attempts int
	Solved   int
	Missed   []string // answers that ended exhausted or unsolved

	// Histogram counts solves by rounds used; index 0 is unused.
	Histogram   [solver.DefaultMaxRounds + 1]int
	TotalRounds int // summed rounds over solved attempts only
}

// AverageRounds reports mean rounds per solved attempt, 0 when none solved.
func (r Report) AverageRounds() float64 {
	if r.Solved == 0 {
		return 0
	}
	return float64(r.TotalRounds) / float64(r.Solved)
}

// Run solves each answer in order and returns the aggregate report.
// A limit > 0 caps the number of attempts.
func (r *Runner) Run(answers []string, limit int) Report {
	if limit > 0 && limit < len(answers) {
		answers = answers[:limit]
	}

	strategy := r.Strategy
	if strategy == nil {
		strategy = solver.NewFirstCandidate()
	}
	opts := []solver.Option{}
	if r.MaxRounds > 0 {
		opts = append(opts, solver.WithMaxRounds(r.MaxRounds))
	}

	var exclusions *solver.ExclusionSet
	if r.TrackSolved {
		exclusions = solver.NewExclusionSet()
		opts = append(opts, solver.WithExclusions(exclusions))
	}
	s := solver.New(strategy, opts...)

	var report Report
	for _, answer := range answers {
		outcome, history := s.Solve(answer, r.Dictionary)
		report.Attempts++

		switch outcome.Status {
		case solver.Solved:
			report.Solved++
			report.TotalRounds += outcome.Rounds
			if outcome.Rounds < len(report.Histogram) {
				report.Histogram[outcome.Rounds]++
			}
			if exclusions != nil {
				exclusions.Add(answer)
			}
			log.Debug().
				Str("answer", answer).
				Int("rounds", outcome.Rounds).
				Msg("solved")
		default:
			report.Missed = append(report.Missed, answer)
			log.Debug().
				Str("answer", answer).
				Str("status", outcome.Status.String()).
				Int("guesses", len(history)).
				Msg("missed")
		}
	}

	log.Info().
		Int("attempts", report.Attempts).
		Int("solved", report.Solved).
		Int("missed", len(report.Missed)).
		Float64("avgRounds", report.AverageRounds()).
		Msg("batch finished")
	return report
}
