package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordsleuth/solver/internal/solver"
)

var testDict = []string{
	"which", "there", "about", "water", "stare", "right", "think",
	"place", "great", "house", "tears", "rates", "least", "islet",
}

func TestRunAggregates(t *testing.T) {
	r := &Runner{Dictionary: testDict}
	report := r.Run([]string{"stare", "there", "qqzzq"}, 0)

	assert.Equal(t, 3, report.Attempts)
	assert.Equal(t, 2, report.Solved)
	assert.Equal(t, []string{"qqzzq"}, report.Missed)
	assert.Equal(t, report.Solved, sum(report.Histogram))
	assert.Greater(t, report.AverageRounds(), 0.0)
	assert.LessOrEqual(t, report.AverageRounds(), float64(solver.DefaultMaxRounds))
}

func TestRunHonorsLimit(t *testing.T) {
	r := &Runner{Dictionary: testDict}
	report := r.Run([]string{"stare", "there", "about"}, 2)
	assert.Equal(t, 2, report.Attempts)
}

func TestRunTrackSolvedExcludesRepeatAnswers(t *testing.T) {
	// The same answer twice: the first attempt solves it, the second must
	// not be offered the now-excluded word again.
	r := &Runner{Dictionary: testDict, TrackSolved: true}
	report := r.Run([]string{"stare", "stare"}, 0)

	require.Equal(t, 2, report.Attempts)
	assert.Equal(t, 1, report.Solved)
	assert.Equal(t, []string{"stare"}, report.Missed)
}

func TestAverageRoundsEmptyReport(t *testing.T) {
	assert.Zero(t, Report{}.AverageRounds())
}

func sum(h [solver.DefaultMaxRounds + 1]int) int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}
