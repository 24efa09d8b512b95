package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

// Theme defines the colour palette of the board.
type Theme struct {
	// Correct, Present and Absent fill the letter cells.
	Correct lipgloss.Color
	Present lipgloss.Color
	Absent  lipgloss.Color

	// Empty is the border of cells not yet guessed.
	Empty lipgloss.Color

	// CellText is the letter colour on filled cells.
	CellText lipgloss.Color

	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
}

// DefaultTheme returns the classic green/yellow/gray palette.
func DefaultTheme() *Theme {
	return &Theme{
		Correct:  lipgloss.Color("#6AAA64"), // Green
		Present:  lipgloss.Color("#C9B458"), // Yellow
		Absent:   lipgloss.Color("#3A3A3C"), // Dark gray
		Empty:    lipgloss.Color("#565758"), // Border gray
		CellText: lipgloss.Color("#FFFFFF"),
		Primary:  lipgloss.Color("#7C3AED"), // Purple
		Muted:    lipgloss.Color("#6C7086"),
		Error:    lipgloss.Color("#F38BA8"),
		Success:  lipgloss.Color("#A6E3A1"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Help    lipgloss.Style

	// cells by classification; the zero classification is an unused key.
	cells map[game.Classification]lipgloss.Style
	empty lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	cell := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(theme.CellText)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		cells: map[game.Classification]lipgloss.Style{
			game.Correct: cell.Background(theme.Correct),
			game.Present: cell.Background(theme.Present),
			game.Absent:  cell.Background(theme.Absent),
		},
		empty: lipgloss.NewStyle().Padding(0, 1).Foreground(theme.Empty),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Cell renders a letter in its classification colour. Unknown or empty
// classifications render as an unfilled cell.
func (s *Styles) Cell(letter byte, c game.Classification) string {
	if st, ok := s.cells[c]; ok {
		return st.Render(string(letter))
	}
	if letter == 0 {
		letter = '_'
	}
	return s.empty.Render(string(letter))
}
