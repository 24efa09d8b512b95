// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Classification: per-letter result of a guess (correct/present/absent).
//   - State: coarse session state (in_progress/won/lost).
//   - Attempt: one evaluated guess and its classifications.

package game

import "errors"

const (
	// WordLength is the number of letters in every target and guess.
	WordLength = 5
	// MaxAttempts is the number of guesses a player gets per session.
	MaxAttempts = 6
)

// Classification represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter matches the target at the same index.
//   - "present": letter exists in the target but at a different index.
//   - "absent":  letter does not exist in the target, or the target has no
//     occurrences left for this instance.
type Classification string

const (
	Correct Classification = "correct"
	Present Classification = "present"
	Absent  Classification = "absent"
)

// State is the termination state of a Session.
type State string

const (
	InProgress State = "in_progress"
	Won        State = "won"
	Lost       State = "lost"
)

// Finished reports whether the state is terminal.
func (s State) Finished() bool { return s == Won || s == Lost }

// Attempt holds one accepted guess and its per-letter result.
type Attempt struct {
	Guess  string           `json:"guess"`
	Result []Classification `json:"result"`
}

// Dictionary reports whether a word is an accepted guess.
// Implemented by words.Lists.
type Dictionary interface {
	Contains(word string) bool
}

// Validation errors. The messages are shown to the player verbatim.
// ErrNotLetters only surfaces without a dictionary; with one, such input
// is ErrNotInWordList.
var (
	ErrWrongLength   = errors.New("Word must be 5 letters.")
	ErrNotLetters    = errors.New("Word must only contain letters.")
	ErrNotInWordList = errors.New("Not a recognized word.")
	ErrSessionOver   = errors.New("game finished")
)
