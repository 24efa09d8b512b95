// internal/game/session.go
//
// Game session for a single Wordle round.
// Responsibilities:
//   - Hold the target for the round (immutable once created).
//   - Validate and apply guesses (length, alphabetic, optional dictionary).
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - The target is chosen by the caller (see words.Picker); a Session never
//     reaches for global word lists.
//   - Rejected guesses never consume an attempt.
package game

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Session holds the state of one round.
type Session struct {
	ID          string
	Target      string
	MaxAttempts int
	Attempts    []Attempt
	State       State
	StartedAt   time.Time
	FinishedAt  time.Time

	dict Dictionary
	now  func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithDictionary enables strict mode: guesses must be accepted by d.
func WithDictionary(d Dictionary) Option {
	return func(s *Session) { s.dict = d }
}

// WithClock overrides time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) { s.ID = id }
}

// NewSession starts a round against target. The target is uppercased.
func NewSession(target string, opts ...Option) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		Target:      Normalize(target),
		MaxAttempts: MaxAttempts,
		State:       InProgress,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.StartedAt = s.now()
	return s
}

// Normalize trims raw player input and uppercases ASCII letters. Anything
// outside a-z is left as is, so Validate rejects it.
func Normalize(raw string) string {
	return UpperASCII(strings.TrimSpace(raw))
}

// UpperASCII maps a-z to A-Z and leaves every other byte alone.
// strings.ToUpper would fold some non-ASCII letters (ſ, ı) into A-Z.
func UpperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// Validate checks a normalized guess without touching session state.
// With a dictionary attached, non-letters are simply not a recognized word.
func (s *Session) Validate(guess string) error {
	if utf8.RuneCountInString(guess) != len(s.Target) {
		return ErrWrongLength
	}
	if !isAlpha(guess) {
		if s.dict != nil {
			return ErrNotInWordList
		}
		return ErrNotLetters
	}
	if s.dict != nil && !s.dict.Contains(guess) {
		return ErrNotInWordList
	}
	return nil
}

// Guess validates, evaluates and records a guess.
//
// State transitions:
//   - Guess equals the target → Won.
//   - Otherwise, once MaxAttempts guesses were made → Lost.
func (s *Session) Guess(raw string) (Attempt, error) {
	if s.State.Finished() {
		return Attempt{}, ErrSessionOver
	}
	guess := Normalize(raw)
	if err := s.Validate(guess); err != nil {
		return Attempt{}, err
	}

	a := Attempt{Guess: guess, Result: Evaluate(guess, s.Target)}
	s.Attempts = append(s.Attempts, a)

	switch {
	case Solved(a.Result):
		s.finish(Won)
	case len(s.Attempts) >= s.MaxAttempts:
		s.finish(Lost)
	}
	return a, nil
}

// Used returns the number of accepted guesses so far.
func (s *Session) Used() int { return len(s.Attempts) }

// Remaining returns how many guesses are left.
func (s *Session) Remaining() int { return s.MaxAttempts - len(s.Attempts) }

// Elapsed is the time from start to finish (or now, while in progress).
func (s *Session) Elapsed() time.Duration {
	if s.FinishedAt.IsZero() {
		return s.now().Sub(s.StartedAt)
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// LetterStates merges all attempts into the best known state per letter,
// the way an on-screen keyboard shows it. Correct beats Present beats Absent.
func (s *Session) LetterStates() map[byte]Classification {
	out := make(map[byte]Classification)
	for _, a := range s.Attempts {
		for i := 0; i < len(a.Guess); i++ {
			c := a.Guess[i]
			if rank(a.Result[i]) > rank(out[c]) {
				out[c] = a.Result[i]
			}
		}
	}
	return out
}

func (s *Session) finish(st State) {
	s.State = st
	s.FinishedAt = s.now()
}

func rank(c Classification) int {
	switch c {
	case Correct:
		return 3
	case Present:
		return 2
	case Absent:
		return 1
	}
	return 0
}

// isAlpha checks that a string consists only of uppercase A–Z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
