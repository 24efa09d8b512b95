package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

var base = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func result(id string, won bool, guesses int, day int) Result {
	g := make([]string, guesses)
	for i := range g {
		g[i] = "CRANE"
	}
	at := base.AddDate(0, 0, day)
	return Result{
		SessionID:  id,
		Mode:       ModeRandom,
		Date:       at.Format("2006-01-02"),
		Target:     "LEARN",
		Guesses:    g,
		Won:        won,
		Elapsed:    1500 * time.Millisecond,
		FinishedAt: at,
	}
}

func implementations(t *testing.T) map[string]Store {
	t.Helper()
	mem, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	file, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "wordle.db"))
	require.NoError(t, err)
	stores := map[string]Store{
		"memory":        NewMemory(),
		"sqlite-memory": mem,
		"sqlite-file":   file,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})
	return stores
}

func TestStore_SaveAndRecent(t *testing.T) {
	ctx := context.Background()
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Save(ctx, result("a", true, 3, 0)))
			require.NoError(t, s.Save(ctx, result("b", false, 6, 1)))
			require.NoError(t, s.Save(ctx, result("c", true, 2, 2)))
			require.NoError(t, s.Save(ctx, result("a", false, 6, 3)), "duplicate is ignored")

			got, err := s.Recent(ctx, 2)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "c", got[0].SessionID)
			assert.Equal(t, "b", got[1].SessionID)
			assert.Equal(t, 6, got[1].Attempts())
			assert.False(t, got[1].Won)
			assert.Equal(t, 1500*time.Millisecond, got[1].Elapsed)
			assert.True(t, base.AddDate(0, 0, 1).Equal(got[1].FinishedAt))

			all, err := s.Recent(ctx, 0)
			require.NoError(t, err)
			assert.Len(t, all, 3)
			assert.True(t, all[2].Won, "first save of a wins")
		})
	}
}

func TestStore_Stats(t *testing.T) {
	ctx := context.Background()
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			seq := []struct {
				won     bool
				guesses int
			}{
				{true, 3}, {true, 4}, {true, 3}, {false, 6}, {true, 1}, {true, 6},
			}
			for i, r := range seq {
				require.NoError(t, s.Save(ctx, result(string(rune('a'+i)), r.won, r.guesses, i)))
			}

			st, err := s.Stats(ctx)
			require.NoError(t, err)
			assert.Equal(t, 6, st.Played)
			assert.Equal(t, 5, st.Wins)
			assert.Equal(t, 83, st.WinPercent())
			assert.Equal(t, 2, st.CurrentStreak)
			assert.Equal(t, 3, st.MaxStreak)
			assert.Equal(t, [game.MaxAttempts]int{1, 0, 2, 1, 0, 1}, st.Distribution)
		})
	}
}

func TestStore_PlayedDaily(t *testing.T) {
	ctx := context.Background()
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			r := result("d", true, 4, 0)
			r.Mode = ModeDaily
			require.NoError(t, s.Save(ctx, r))
			require.NoError(t, s.Save(ctx, result("x", true, 4, 1)))

			played, err := s.PlayedDaily(ctx, r.Date)
			require.NoError(t, err)
			assert.True(t, played)

			played, err = s.PlayedDaily(ctx, base.AddDate(0, 0, 1).Format("2006-01-02"))
			require.NoError(t, err)
			assert.False(t, played, "random rounds do not count")
		})
	}
}

func TestOpenSQLite_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wordle.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, result("a", true, 2, 0)))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"CRANE", "CRANE"}, got[0].Guesses)
}

func TestMemory_Closed(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Save(context.Background(), result("a", true, 1, 0)), ErrClosed)
	_, err := s.Stats(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSummarize_Empty(t *testing.T) {
	st := Summarize(nil)
	assert.Equal(t, 0, st.Played)
	assert.Equal(t, 0, st.WinPercent())
}

func TestFromSession(t *testing.T) {
	s := game.NewSession("LEARN", game.WithID("sess"))
	_, err := s.Guess("RANGE")
	require.NoError(t, err)
	_, err = s.Guess("LEARN")
	require.NoError(t, err)

	r := FromSession(s, ModeDaily)
	assert.Equal(t, "sess", r.SessionID)
	assert.Equal(t, ModeDaily, r.Mode)
	assert.Equal(t, []string{"RANGE", "LEARN"}, r.Guesses)
	assert.True(t, r.Won)
	assert.Equal(t, s.FinishedAt.UTC().Format("2006-01-02"), r.Date)
}

func TestFromSession_DailyDatedByStart(t *testing.T) {
	now := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)
	s := game.NewSession("LEARN", game.WithClock(func() time.Time { return now }))
	now = now.Add(2 * time.Minute)
	_, err := s.Guess("LEARN")
	require.NoError(t, err)

	assert.Equal(t, "2026-10-16", FromSession(s, ModeDaily).Date)
	assert.Equal(t, "2026-10-17", FromSession(s, ModeRandom).Date)
}
