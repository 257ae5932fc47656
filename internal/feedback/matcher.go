// internal/feedback/matcher.go
//
// Candidate consistency checking: could a word be the secret answer that
// produced a given guess's mask?
// Responsibilities:
//   - Mirror Compute's duplicate-letter consumption over the candidate's
//     positions, so accepted candidates are exactly those for which
//     Compute(candidate, guess.Word) reproduces the observed mask.
//   - Enforce the closing conditions: every Misplaced mark must consume a
//     distinct candidate position, and a Wrong mark caps the candidate's
//     count of that letter.

package feedback

// Matches reports whether candidate could be the secret answer behind g.
// For every guess actually issued against the true secret, Matches always
// accepts the secret itself.
//
// The check tracks a consumed flag per candidate position:
//   - Correct at i: candidate[i] must equal g.Word[i]; position i is consumed.
//   - Misplaced at i: candidate[i] must differ from g.Word[i], and some
//     unconsumed position j != i must hold g.Word[i]; j is consumed. A
//     Misplaced mark that cannot consume a position rejects the candidate.
//   - Wrong at i: candidate[i] must differ from g.Word[i]; once all marks
//     have consumed their positions, no unconsumed candidate position may
//     still hold g.Word[i] — an extra occurrence would have produced a
//     Misplaced mark instead.
//
// Misplaced marks are resolved left to right with leftmost consumption,
// matching the order Compute assigns them, so the bookkeeping here and in
// Compute agree on which answer copy satisfies which mark.
func Matches(g Guess, candidate string) bool {
	var consumed [WordLen]bool

	// Correct marks pin their positions before anything else may consume them.
	for i := 0; i < WordLen; i++ {
		if g.Mask[i] == Correct {
			if candidate[i] != g.Word[i] {
				return false
			}
			consumed[i] = true
		}
	}

	// Positional constraints plus Misplaced consumption.
	for i := 0; i < WordLen; i++ {
		switch g.Mask[i] {
		case Misplaced:
			if candidate[i] == g.Word[i] {
				// Would have been Correct.
				return false
			}
			found := false
			for j := 0; j < WordLen; j++ {
				if j == i || consumed[j] {
					continue
				}
				if candidate[j] == g.Word[i] {
					consumed[j] = true
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case Wrong:
			if candidate[i] == g.Word[i] {
				return false
			}
		}
	}

	// Closing check: a Wrong mark means the answer had no copies left over,
	// so any unconsumed occurrence in the candidate is one too many.
	for i := 0; i < WordLen; i++ {
		if g.Mask[i] != Wrong {
			continue
		}
		for j := 0; j < WordLen; j++ {
			if !consumed[j] && candidate[j] == g.Word[i] {
				return false
			}
		}
	}
	return true
}
