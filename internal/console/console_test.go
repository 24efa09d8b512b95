package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/play"
	"github.com/robalobadob/wordle/apps/cli/internal/store"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

func newLoop(t *testing.T, mode store.Mode) *play.Loop {
	t.Helper()
	l, err := words.New([]string{"LEARN"}, []string{"RANGE", "DUMPY"})
	require.NoError(t, err)
	loop, err := play.New(play.Options{
		Words:  l,
		Picker: words.PickerFunc(func(int) int { return 0 }),
		Store:  store.NewMemory(),
		Mode:   mode,
		Strict: true,
	})
	require.NoError(t, err)
	return loop
}

func TestRow(t *testing.T) {
	a := game.Attempt{Guess: "RANGE", Result: game.Evaluate("RANGE", "LEARN")}
	assert.Equal(t, "(R) (A) (N)  G  (E)", Row(a))

	a = game.Attempt{Guess: "LEARN", Result: game.Evaluate("LEARN", "LEARN")}
	assert.Equal(t, "[L] [E] [A] [R] [N]", Row(a))
}

func TestRun_WinThenQuit(t *testing.T) {
	in := strings.NewReader("ran\nzzzzz\nrange\nlearn\nn\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), newLoop(t, store.ModeRandom), in, &out))

	s := out.String()
	assert.Contains(t, s, "Word must be 5 letters.")
	assert.Contains(t, s, "Not a recognized word.")
	assert.Contains(t, s, "(R) (A) (N)  G  (E)")
	assert.Contains(t, s, "1/6")
	assert.Contains(t, s, "You win! Solved in 2/6.")
	assert.Contains(t, s, "Play again? (y/N)")
	assert.True(t, strings.HasSuffix(s, Farewell+"\n"))
}

func TestRun_StrictRejectsNonLettersAsUnknown(t *testing.T) {
	in := strings.NewReader("r4nge\nlearn\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), newLoop(t, store.ModeDaily), in, &out))

	s := out.String()
	assert.Contains(t, s, "Not a recognized word.")
	assert.NotContains(t, s, game.ErrNotLetters.Error())
	assert.Contains(t, s, "You win! Solved in 1/6.")
}

func TestRun_LossRevealsTarget(t *testing.T) {
	in := strings.NewReader(strings.Repeat("dumpy\n", 6))
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), newLoop(t, store.ModeRandom), in, &out))

	s := out.String()
	assert.Contains(t, s, "5/6")
	assert.NotContains(t, s, "6/6\n")
	assert.Contains(t, s, "Game over!")
	assert.Contains(t, s, "The correct word was: LEARN")
	assert.Contains(t, s, Farewell)
}

func TestRun_Replay(t *testing.T) {
	in := strings.NewReader("learn\ny\nlearn\nno\n")
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), newLoop(t, store.ModeRandom), in, &out))
	assert.Equal(t, 2, strings.Count(out.String(), "You win!"))
	assert.Contains(t, out.String(), "Played 2  Win 100%  Streak 2  Best 2")
}

func TestRun_DailyHasNoReplay(t *testing.T) {
	loop := newLoop(t, store.ModeDaily)
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), loop, strings.NewReader("learn\n"), &out))
	assert.NotContains(t, out.String(), "Play again?")

	out.Reset()
	require.NoError(t, Run(context.Background(), loop, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), play.ErrDailyPlayed.Error())
}

func TestRun_CancelledContext(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	loop := newLoop(t, store.ModeRandom)

	done := make(chan error, 1)
	go func() { done <- Run(ctx, loop, pr, &out) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.Contains(t, out.String(), Farewell)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
