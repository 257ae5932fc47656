// internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Load the answers list and the frequency corpus from
//     environment-provided files or fall back to embedded defaults.
//   - Parse "word count" corpus lines and order the dictionary by
//     descending usage frequency (stable on ties).
//   - Supply Answers, Dictionary, and Stats accessors.
//
// Word Lists:
//   - "answers": the secrets to solve for (exactly 5 lowercase letters).
//   - "dictionary": guessable words, frequency-ordered, used as the
//     initial candidate set of every attempt.
//
// Environment variables:
//   SOLVER_ANSWERS_FILE=/path/to/answers.txt     (one word per line)
//   SOLVER_CORPUS_FILE=/path/to/word-counts.txt  (lines of "word count")
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); other lines are dropped.
//   • Lists are normalized to lowercase.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// --- embedded tiny defaults (keeps the CLI usable with no files configured) ---

//go:embed default_answers.txt
var embeddedAnswers string

//go:embed default_corpus.txt
var embeddedCorpus string

var (
	initOnce   sync.Once
	answers    []string // secrets to solve for
	dictionary []string // frequency-ordered guessable words
	initialErr error
)

// Init loads word lists exactly once.
// Returns an error if either list ends up empty.
func Init() error {
	initOnce.Do(func() {
		answersPath := os.Getenv("SOLVER_ANSWERS_FILE")
		corpusPath := os.Getenv("SOLVER_CORPUS_FILE")

		if corpusPath != "" {
			d, err := LoadCorpus(corpusPath)
			if err != nil {
				initialErr = err
				return
			}
			dictionary = d
		} else {
			dictionary = parseCorpus(strings.Split(embeddedCorpus, "\n"))
		}

		if answersPath != "" {
			a, err := LoadAnswers(answersPath)
			if err != nil {
				initialErr = err
				return
			}
			answers = a
		} else {
			answers = normalizeLines(embeddedAnswers)
		}

		if len(answers) == 0 {
			initialErr = errors.New("words: answers list is empty")
			return
		}
		if len(dictionary) == 0 {
			initialErr = errors.New("words: dictionary is empty")
		}
	})
	return initialErr
}

// LoadAnswers loads one word per line from a file, lowercases, trims, and
// keeps only valid 5-letter alphabetic words.
func LoadAnswers(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// LoadCorpus loads a frequency corpus of "word count" lines and returns
// the words ordered by descending count. Malformed lines are skipped.
func LoadCorpus(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return parseCorpus(lines), nil
}

// parseCorpus turns "word count" lines into a descending-frequency word
// list. The sort is stable so equal counts keep their input order.
func parseCorpus(lines []string) []string {
	type pair struct {
		word  string
		count int64
	}
	var pairs []pair
	for _, line := range lines {
		word, countStr, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok {
			continue
		}
		word = strings.ToLower(word)
		if len(word) != 5 || !isAlpha(word) {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(countStr), 10, 64)
		if err != nil {
			continue
		}
		pairs = append(pairs, pair{word: word, count: n})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].count > pairs[j].count })
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.word
	}
	return out
}

// normalizeLines processes an embedded multiline string
// into a slice of valid lowercase 5-letter words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Answers returns the loaded answers list.
func Answers() []string { return answers }

// Dictionary returns the frequency-ordered guessable word list.
func Dictionary() []string { return dictionary }

// Stats returns counts of loaded words: (answers, dictionary).
func Stats() (answersCount int, dictionaryCount int) {
	return len(answers), len(dictionary)
}
