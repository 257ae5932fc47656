package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAnswers(t *testing.T) {
	path := writeFile(t, "answers.txt", "CRANE\n slate \nxx\ntoolong\nro4st\n\nparty\n")
	got, err := LoadAnswers(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "party"}, got)
}

func TestLoadAnswersMissingFile(t *testing.T) {
	_, err := LoadAnswers(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLoadCorpusOrdersByFrequency(t *testing.T) {
	path := writeFile(t, "corpus.txt", "slate 10\ncrane 300\nparty 40\n")
	got, err := LoadCorpus(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "party", "slate"}, got)
}

func TestLoadCorpusSkipsMalformedLines(t *testing.T) {
	path := writeFile(t, "corpus.txt",
		"crane 300\nnocount\ntoolong 5\nro4st 9\nslate notanumber\nparty 40\n")
	got, err := LoadCorpus(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "party"}, got)
}

func TestParseCorpusStableOnTies(t *testing.T) {
	got := parseCorpus([]string{"slate 10", "crane 10", "party 10"})
	assert.Equal(t, []string{"slate", "crane", "party"}, got)
}

func TestEmbeddedDefaults(t *testing.T) {
	dict := parseCorpus([]string{})
	assert.Empty(t, dict)

	answers := normalizeLines(embeddedAnswers)
	assert.NotEmpty(t, answers)
	for _, w := range answers {
		assert.Len(t, w, 5)
		assert.True(t, isAlpha(w), "answer %q", w)
	}

	dict = parseCorpus(strings.Split(embeddedCorpus, "\n"))
	assert.NotEmpty(t, dict)
	// Every default answer must be guessable.
	inDict := make(map[string]bool, len(dict))
	for _, w := range dict {
		inDict[w] = true
	}
	for _, a := range answers {
		assert.True(t, inDict[a], "answer %q missing from dictionary", a)
	}
}
