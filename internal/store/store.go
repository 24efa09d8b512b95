// internal/store/store.go
//
// Results history for finished rounds.
// Two implementations:
//   - memory: map-backed, lost on exit (tests, `serve` without a database).
//   - sqlite: file-backed, survives restarts (default for the terminal game).
//
// Persistence is best-effort from the game's point of view: callers log a
// failed Save and keep playing.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store: closed")

// Mode tells how the target of a round was chosen.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeDaily  Mode = "daily"
)

// Result is one finished round.
type Result struct {
	SessionID  string        `json:"sessionId"`
	Mode       Mode          `json:"mode"`
	Date       string        `json:"date"` // YYYY-MM-DD (UTC): puzzle day for daily rounds, finish day otherwise
	Target     string        `json:"target"`
	Guesses    []string      `json:"guesses"`
	Won        bool          `json:"won"`
	Elapsed    time.Duration `json:"elapsed"`
	FinishedAt time.Time     `json:"finishedAt"`
}

// Attempts is the number of guesses the round used.
func (r Result) Attempts() int { return len(r.Guesses) }

// FromSession builds a Result from a finished session. A daily round is
// dated by its start, the day whose puzzle it played.
func FromSession(s *game.Session, mode Mode) Result {
	guesses := make([]string, 0, len(s.Attempts))
	for _, a := range s.Attempts {
		guesses = append(guesses, a.Guess)
	}
	finished := s.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}
	dated := finished
	if mode == ModeDaily && !s.StartedAt.IsZero() {
		dated = s.StartedAt
	}
	return Result{
		SessionID:  s.ID,
		Mode:       mode,
		Date:       dated.UTC().Format("2006-01-02"),
		Target:     s.Target,
		Guesses:    guesses,
		Won:        s.State == game.Won,
		Elapsed:    s.Elapsed(),
		FinishedAt: finished,
	}
}

// Store defines the persistence interface for finished rounds.
type Store interface {
	// Save records a result. Saving the same SessionID twice is a no-op.
	Save(ctx context.Context, r Result) error

	// Recent returns up to limit results, newest first.
	Recent(ctx context.Context, limit int) ([]Result, error)

	// Stats aggregates every stored result.
	Stats(ctx context.Context) (Stats, error)

	// PlayedDaily reports whether a daily round was finished on date.
	PlayedDaily(ctx context.Context, date string) (bool, error)

	Close() error
}

// Stats summarizes the history.
type Stats struct {
	Played        int                   `json:"played"`
	Wins          int                   `json:"wins"`
	CurrentStreak int                   `json:"currentStreak"`
	MaxStreak     int                   `json:"maxStreak"`
	Distribution  [game.MaxAttempts]int `json:"distribution"` // wins by guesses used, index 0 = 1 guess
}

// WinPercent is the rounded share of won games, 0 when nothing was played.
func (s Stats) WinPercent() int {
	if s.Played == 0 {
		return 0
	}
	return (s.Wins*100 + s.Played/2) / s.Played
}

// Summarize computes Stats from results in chronological order.
func Summarize(results []Result) Stats {
	var st Stats
	streak := 0
	for _, r := range results {
		st.Played++
		if !r.Won {
			streak = 0
			continue
		}
		st.Wins++
		streak++
		if streak > st.MaxStreak {
			st.MaxStreak = streak
		}
		if n := r.Attempts(); n >= 1 && n <= game.MaxAttempts {
			st.Distribution[n-1]++
		}
	}
	st.CurrentStreak = streak
	return st
}
