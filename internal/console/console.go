// Package console is the line-mode frontend: one guess per input line,
// plain text feedback. Used when stdin is not a terminal (pipes, scripts).
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/play"
)

// Farewell is printed on every exit path.
const Farewell = "Thanks for playing!"

// Cell renders one letter: [A] correct, (A) present, " A " absent.
func Cell(letter byte, c game.Classification) string {
	switch c {
	case game.Correct:
		return "[" + string(letter) + "]"
	case game.Present:
		return "(" + string(letter) + ")"
	default:
		return " " + string(letter) + " "
	}
}

// Row renders an attempt as a line of cells.
func Row(a game.Attempt) string {
	cells := make([]string, len(a.Result))
	for i, c := range a.Result {
		cells[i] = Cell(a.Guess[i], c)
	}
	return strings.Join(cells, " ")
}

// Runner reads guesses from in and writes feedback to out.
type Runner struct {
	loop  *play.Loop
	out   io.Writer
	lines <-chan string
}

// Run plays rounds until the player declines a replay, input ends or ctx
// is cancelled. All of those are normal exits.
func Run(ctx context.Context, loop *play.Loop, in io.Reader, out io.Writer) error {
	r := &Runner{loop: loop, out: out, lines: scanLines(in)}
	err := r.run(ctx)
	fmt.Fprintln(out)
	fmt.Fprintln(out, Farewell)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (r *Runner) run(ctx context.Context) error {
	r.rules()
	for {
		round, err := r.loop.Start(ctx)
		if errors.Is(err, play.ErrDailyPlayed) {
			fmt.Fprintln(r.out, err.Error())
			return nil
		}
		if err != nil {
			return err
		}
		if err := r.playRound(ctx, round); err != nil {
			return err
		}
		if !r.loop.Replayable() {
			return nil
		}
		again, err := r.confirm(ctx, "Play again? (y/N) ")
		if err != nil || !again {
			return err
		}
		fmt.Fprintln(r.out)
	}
}

func (r *Runner) rules() {
	fmt.Fprintln(r.out, "CLI-WORDLE")
	fmt.Fprintln(r.out, "You have six tries to guess the hidden word.")
	fmt.Fprintln(r.out, "Your guess must be 5 letters! The puzzle will always be this length.")
	fmt.Fprintln(r.out, "[A] correct spot, (A) wrong spot, plain A not in the word.")
	fmt.Fprintln(r.out)
}

func (r *Runner) playRound(ctx context.Context, round *play.Round) error {
	for !round.State.Finished() {
		line, err := r.prompt(ctx, "Enter a 5 letter word: ")
		if err != nil {
			return err
		}
		a, err := round.Guess(ctx, line)
		if err != nil {
			fmt.Fprintln(r.out, err.Error())
			continue
		}
		fmt.Fprintln(r.out, Row(a))
		if !round.State.Finished() {
			fmt.Fprintf(r.out, "%d/%d\n", round.Used(), round.MaxAttempts)
		}
	}

	fmt.Fprintln(r.out)
	if round.State == game.Won {
		fmt.Fprintf(r.out, "You win! Solved in %d/%d.\n", round.Used(), round.MaxAttempts)
	} else {
		fmt.Fprintln(r.out, "Game over!")
		fmt.Fprintf(r.out, "The correct word was: %s\n", round.Target)
	}
	if st, err := r.loop.Stats(ctx); err == nil && st.Played > 0 {
		fmt.Fprintf(r.out, "Played %d  Win %d%%  Streak %d  Best %d\n",
			st.Played, st.WinPercent(), st.CurrentStreak, st.MaxStreak)
	}
	fmt.Fprintln(r.out)
	return nil
}

func (r *Runner) prompt(ctx context.Context, msg string) (string, error) {
	fmt.Fprint(r.out, msg)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

func (r *Runner) confirm(ctx context.Context, msg string) (bool, error) {
	line, err := r.prompt(ctx, msg)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// scanLines feeds input lines to a channel, closed at EOF. The goroutine
// lets prompt give up on ctx while a read is blocked.
func scanLines(in io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			ch <- sc.Text()
		}
	}()
	return ch
}
