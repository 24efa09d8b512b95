// Package play is the session loop shared by every frontend: it picks the
// target, runs a game.Session per round and records finished rounds.
package play

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/internal/daily"
	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/store"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

// ErrDailyPlayed is returned when today's daily round was already finished.
var ErrDailyPlayed = errors.New("today's puzzle is already solved, come back tomorrow")

// Options configures a Loop.
type Options struct {
	Words  *words.Lists
	Picker words.Picker
	Store  store.Store
	Mode   store.Mode
	// Strict rejects guesses missing from the dictionary.
	Strict bool
	// Unlimited lets daily rounds repeat (shared servers).
	Unlimited bool
	Now       func() time.Time
}

// Loop hands out rounds.
type Loop struct {
	opts Options
}

// New validates opts and returns a Loop. Missing collaborators get defaults:
// a crypto picker, an in-memory store and random mode.
func New(opts Options) (*Loop, error) {
	if opts.Words == nil {
		return nil, errors.New("play: no word lists")
	}
	if opts.Mode == "" {
		opts.Mode = store.ModeRandom
	}
	if opts.Picker == nil {
		opts.Picker = words.NewCryptoPicker()
	}
	if opts.Store == nil {
		opts.Store = store.NewMemory()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Loop{opts: opts}, nil
}

// Mode reports how targets are chosen.
func (l *Loop) Mode() store.Mode { return l.opts.Mode }

// Replayable reports whether "play again" makes sense. A daily puzzle is
// one round per day.
func (l *Loop) Replayable() bool { return l.opts.Mode != store.ModeDaily || l.opts.Unlimited }

// Start begins a new round. In daily mode it fails with ErrDailyPlayed once
// today's round is recorded. A daily round belongs to the day it started on,
// however long it takes to finish.
func (l *Loop) Start(ctx context.Context) (*Round, error) {
	start := l.opts.Now()

	var puzzle string
	if l.opts.Mode == store.ModeDaily {
		puzzle = daily.DateKey(start)
		if !l.opts.Unlimited {
			played, err := l.opts.Store.PlayedDaily(ctx, puzzle)
			if err != nil {
				log.Warn().Err(err).Msg("check daily history")
			}
			if played {
				return nil, ErrDailyPlayed
			}
		}
	}

	sessOpts := []game.Option{game.WithClock(l.opts.Now)}
	if l.opts.Strict {
		sessOpts = append(sessOpts, game.WithDictionary(l.opts.Words))
	}
	s := game.NewSession(l.opts.Words.TargetAt(l.opts.Picker, start), sessOpts...)
	log.Debug().Str("session", s.ID).Str("mode", string(l.opts.Mode)).Str("puzzle", puzzle).Msg("round started")
	return &Round{Session: s, loop: l, puzzle: puzzle}, nil
}

// Words exposes the loop's word lists.
func (l *Loop) Words() *words.Lists { return l.opts.Words }

// Stats returns the history summary.
func (l *Loop) Stats(ctx context.Context) (store.Stats, error) {
	return l.opts.Store.Stats(ctx)
}

// Round is one session plus its bookkeeping.
type Round struct {
	*game.Session
	loop     *Loop
	puzzle   string // daily date key, empty for random rounds
	recorded bool
}

// Guess forwards to the session and records the round once it ends.
// Validation errors pass through untouched for the frontend to re-prompt.
func (r *Round) Guess(ctx context.Context, raw string) (game.Attempt, error) {
	a, err := r.Session.Guess(raw)
	if err != nil {
		return a, err
	}
	log.Debug().Str("session", r.ID).Str("guess", a.Guess).Int("attempt", r.Used()).Msg("guess evaluated")
	if r.State.Finished() {
		r.record(ctx)
	}
	return a, nil
}

// record saves the finished round. Failures are logged, never surfaced.
func (r *Round) record(ctx context.Context) {
	if r.recorded {
		return
	}
	r.recorded = true
	res := store.FromSession(r.Session, r.loop.opts.Mode)
	if r.puzzle != "" {
		res.Date = r.puzzle
	}
	if err := r.loop.opts.Store.Save(ctx, res); err != nil {
		log.Warn().Err(err).Str("session", r.ID).Msg("save result")
		return
	}
	log.Info().Str("session", r.ID).Bool("won", res.Won).Int("attempts", res.Attempts()).Msg("round finished")
}
