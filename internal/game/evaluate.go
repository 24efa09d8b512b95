package game

import "fmt"

// Evaluate classifies every letter of guess against target.
//
// Exact positional matches are resolved first and never downgraded. The
// remaining letters are resolved left to right against a per-letter
// occurrence table of the target, debited by the exact matches, so a letter
// is never marked Correct or Present more times than it occurs in target.
// Earlier positions win ties between repeated guess letters.
//
// Both words must have the same length. A mismatch is a caller bug and panics.
func Evaluate(guess, target string) []Classification {
	if len(guess) != len(target) {
		panic(fmt.Sprintf("game: evaluate %q against %q: length mismatch", guess, target))
	}
	n := len(guess)
	res := make([]Classification, n)

	// Occurrences of each target letter not claimed by an exact match.
	remaining := make(map[byte]int, n)
	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = Correct
		} else {
			remaining[target[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == Correct {
			continue
		}
		c := guess[i]
		if remaining[c] > 0 {
			res[i] = Present
			remaining[c]--
		} else {
			res[i] = Absent
		}
	}
	return res
}

// Solved reports whether every classification is Correct.
func Solved(result []Classification) bool {
	if len(result) == 0 {
		return false
	}
	for _, c := range result {
		if c != Correct {
			return false
		}
	}
	return true
}
