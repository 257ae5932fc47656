// internal/feedback/compute.go
//
// Feedback computation for a (answer, guess) pair.
// Responsibilities:
//   - Score a guess with the classic two-pass Wordle algorithm.
//   - Handle repeated letters via per-position consumption so that the
//     number of Correct+Misplaced marks for a letter never exceeds its
//     count in the answer.

package feedback

// Compute scores guess against answer and returns the five-slot mask.
//
// Pass 1:
//   - Mark exact position matches Correct and consume those answer positions.
//
// Pass 2:
//   - For each non-Correct guess position, scan answer positions left to
//     right; the first unconsumed position holding the same letter yields
//     Misplaced and is consumed. No such position means Wrong.
//
// Excess duplicate letters in the guess therefore come out Wrong once the
// answer's copies are used up (e.g. the second 's' of "dress" against an
// answer with a single 's').
//
// Pure and deterministic; both strings must be WordLen ASCII letters.
func Compute(answer, guess string) Mask {
	var mask Mask
	var consumed [WordLen]bool

	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			mask[i] = Correct
			consumed[i] = true
		}
	}

	for i := 0; i < WordLen; i++ {
		if mask[i] == Correct {
			continue
		}
		for j := 0; j < WordLen; j++ {
			if !consumed[j] && answer[j] == guess[i] {
				mask[i] = Misplaced
				consumed[j] = true
				break
			}
		}
	}
	return mask
}
