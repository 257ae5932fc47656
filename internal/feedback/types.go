// internal/feedback/types.go
//
// Core type definitions for guess feedback.
// Defines:
//   - Mark: per-letter result of a guess (correct/misplaced/wrong).
//   - Mask: the fixed five-slot feedback for one guess.
//   - Guess: a played word paired with the mask it produced.

package feedback

// WordLen is the fixed word width. Every word handled by this package
// must be exactly WordLen ASCII lowercase letters; loaders enforce this,
// the core does not re-validate.
const WordLen = 5

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - Correct:   letter is correct and in the correct position.
//   - Misplaced: letter exists in the answer but in a different position.
//   - Wrong:     letter has no remaining occurrence in the answer.
type Mark uint8

const (
	Wrong Mark = iota
	Misplaced
	Correct
)

// String renders a Mark as a single character (C/M/W), used in logs and
// the CLI round display.
func (m Mark) String() string {
	switch m {
	case Correct:
		return "C"
	case Misplaced:
		return "M"
	default:
		return "W"
	}
}

// Mask is the per-position feedback for one guess. Fixed-size array on
// purpose: masks are created once per round and compared in the hot
// filtering loop, so they stay on the stack and compare with ==.
type Mask [WordLen]Mark

// allCorrect is the winning mask.
var allCorrect = Mask{Correct, Correct, Correct, Correct, Correct}

// IsCorrect reports whether every slot is Correct.
func (m Mask) IsCorrect() bool { return m == allCorrect }

// String renders the mask as five characters, e.g. "CCMWW".
func (m Mask) String() string {
	var b [WordLen]byte
	for i, v := range m {
		b[i] = v.String()[0]
	}
	return string(b[:])
}

// Guess pairs a played word with the mask it produced. The mask is only
// meaningful relative to the (unknown) answer it was computed against.
// Immutable once constructed; build one with Check.
type Guess struct {
	Word string
	Mask Mask
}

// Check plays word against answer and records the resulting feedback.
func Check(answer, word string) Guess {
	return Guess{Word: word, Mask: Compute(answer, word)}
}

// IsCorrect reports whether this guess solved the puzzle.
func (g Guess) IsCorrect() bool { return g.Mask.IsCorrect() }
