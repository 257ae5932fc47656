package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "frequency", c.Strategy)
	assert.Equal(t, 6, c.MaxRounds)
	assert.NoError(t, c.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SOLVER_OPENER", "crane")
	t.Setenv("SOLVER_STRATEGY", "letters")
	t.Setenv("SOLVER_MAX_ROUNDS", "4")
	t.Setenv("SOLVER_ANSWERS_FILE", "/tmp/answers.txt")

	c := FromEnv()
	assert.Equal(t, "crane", c.Opener)
	assert.Equal(t, "letters", c.Strategy)
	assert.Equal(t, 4, c.MaxRounds)
	assert.Equal(t, "/tmp/answers.txt", c.AnswersFile)
}

func TestFromEnvIgnoresBadMaxRounds(t *testing.T) {
	t.Setenv("SOLVER_MAX_ROUNDS", "zero")
	assert.Equal(t, 6, FromEnv().MaxRounds)
}

func TestApplyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"opener: slate\nmaxRounds: 5\ntrackSolved: true\n"), 0o644))

	c := Default()
	c.Strategy = "letters"
	require.NoError(t, c.ApplyFile(path))

	assert.Equal(t, "slate", c.Opener)
	assert.Equal(t, 5, c.MaxRounds)
	assert.True(t, c.TrackSolved)
	// Fields absent from the file keep their prior values.
	assert.Equal(t, "letters", c.Strategy)
}

func TestApplyFileErrors(t *testing.T) {
	c := Default()
	assert.Error(t, c.ApplyFile(filepath.Join(t.TempDir(), "missing.yaml")))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("opener: [\n"), 0o644))
	assert.Error(t, c.ApplyFile(bad))
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Strategy = "entropy"
	assert.Error(t, c.Validate())

	c = Default()
	c.MaxRounds = 0
	assert.Error(t, c.Validate())

	c = Default()
	c.Opener = "toolong"
	assert.Error(t, c.Validate())

	c = Default()
	c.Opener = "crane"
	assert.NoError(t, c.Validate())
}
