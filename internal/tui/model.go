// Package tui is the interactive board: a bubbletea model that takes guesses
// through a text input and renders each attempt as coloured letter cells.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/play"
)

// Farewell is the last line shown when the program exits.
const Farewell = "Thanks for playing!"

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

type phase int

const (
	phaseGuessing phase = iota
	phaseOver
	phaseQuit
)

// Model is the board, following the Elm architecture.
type Model struct {
	ctx    context.Context
	loop   *play.Loop
	round  *play.Round
	input  textinput.Model
	styles *Styles
	keys   *KeyMap

	// notice is the re-prompt or end-of-round message under the input.
	notice string
	phase  phase
	err    error
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// New creates the board and starts the first round.
func New(ctx context.Context, loop *play.Loop) (*Model, error) {
	round, err := loop.Start(ctx)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "Enter a 5 letter word"
	ti.CharLimit = game.WordLength
	ti.Width = 24
	ti.Prompt = "> "
	ti.Focus()

	return &Model{
		ctx:    ctx,
		loop:   loop,
		round:  round,
		input:  ti,
		styles: DefaultStyles(),
		keys:   DefaultKeyMap(),
	}, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Err is a non-validation failure that ended the program, if any.
func (m *Model) Err() error { return m.err }

// Round exposes the current round (tests, final reporting).
func (m *Model) Round() *play.Round { return m.round }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if key.Matches(keyMsg, m.keys.Quit) {
		return m.quit()
	}

	switch m.phase {
	case phaseGuessing:
		if key.Matches(keyMsg, m.keys.Submit) {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(keyMsg)
		m.input.SetValue(game.UpperASCII(m.input.Value()))
		return m, cmd

	case phaseOver:
		if m.loop.Replayable() && key.Matches(keyMsg, m.keys.Replay) {
			return m.replay()
		}
		if key.Matches(keyMsg, m.keys.Decline) {
			return m.quit()
		}
	}
	return m, nil
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	_, err := m.round.Guess(m.ctx, m.input.Value())
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.input.Reset()
	m.notice = ""

	switch m.round.State {
	case game.Won:
		m.phase = phaseOver
		m.notice = fmt.Sprintf("You win! Solved in %d/%d.", m.round.Used(), m.round.MaxAttempts)
	case game.Lost:
		m.phase = phaseOver
		m.notice = "Game over! The correct word was: " + m.round.Target
	}
	if m.phase == phaseOver {
		m.input.Blur()
	}
	return m, nil
}

func (m *Model) replay() (tea.Model, tea.Cmd) {
	round, err := m.loop.Start(m.ctx)
	if err != nil {
		log.Error().Err(err).Msg("start round")
		m.err = err
		return m.quit()
	}
	m.round = round
	m.phase = phaseGuessing
	m.notice = ""
	m.input.Reset()
	return m, m.input.Focus()
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.phase = phaseQuit
	m.input.Blur()
	return m, tea.Quit
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.phase == phaseQuit {
		return Farewell + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("CLI-WORDLE"))
	b.WriteString("\n\n")
	b.WriteString(m.board())
	b.WriteString("\n\n")

	switch m.phase {
	case phaseGuessing:
		b.WriteString(m.input.View())
		b.WriteString("  ")
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d/%d", m.round.Used(), m.round.MaxAttempts)))
		b.WriteString("\n")
		if m.notice != "" {
			b.WriteString(m.styles.Error.Render(m.notice))
		}
		b.WriteString("\n\n")
		b.WriteString(m.keyboard())
		b.WriteString("\n\n")
		b.WriteString(m.styles.Help.Render(helpLine(m.keys.Submit, m.keys.Quit)))

	case phaseOver:
		if m.round.State == game.Won {
			b.WriteString(m.styles.Success.Render(m.notice))
		} else {
			b.WriteString(m.styles.Error.Render(m.notice))
		}
		b.WriteString("\n")
		if st, err := m.loop.Stats(m.ctx); err == nil && st.Played > 0 {
			b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Played %d  Win %d%%  Streak %d  Best %d",
				st.Played, st.WinPercent(), st.CurrentStreak, st.MaxStreak)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.loop.Replayable() {
			b.WriteString("Play again? ")
			b.WriteString(m.styles.Help.Render(helpLine(m.keys.Replay, m.keys.Decline)))
		} else {
			b.WriteString(m.styles.Help.Render(helpLine(m.keys.Decline)))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// board renders every attempt plus empty rows up to MaxAttempts.
func (m *Model) board() string {
	rows := make([]string, 0, m.round.MaxAttempts)
	for _, a := range m.round.Attempts {
		cells := make([]string, len(a.Result))
		for i, c := range a.Result {
			cells[i] = m.styles.Cell(a.Guess[i], c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	for len(rows) < m.round.MaxAttempts {
		cells := make([]string, game.WordLength)
		for i := range cells {
			cells[i] = m.styles.Cell(0, "")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// keyboard renders the alphabet coloured by the best known state per letter.
func (m *Model) keyboard() string {
	states := m.round.LetterStates()
	lines := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		cells := make([]string, len(row))
		for j := 0; j < len(row); j++ {
			c := row[j]
			if st, ok := states[c]; ok {
				cells[j] = m.styles.Cell(c, st)
			} else {
				cells[j] = m.styles.Cell(c, "")
			}
		}
		lines[i] = strings.Repeat(" ", i) + lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return strings.Join(lines, "\n")
}
