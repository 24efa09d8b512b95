// internal/words/words.go
//
// Word list management for the game.
//
// Responsibilities:
//   - Load puzzle and accepted-guess lists from configured files or fall back
//     to the embedded defaults in the assets package.
//   - Hold them in an immutable Lists value that is built once at startup
//     and handed to whoever needs it (no package-level state).
//   - Supply lookups (Contains, IsAnswer) and target selection via a Picker.
//
// Word Lists:
//   - "answers": puzzle words, candidate targets.
//   - "allowed": accepted guesses (always includes answers).
//
// Resolution (Load):
//  1. AnswersFile and AllowedFile both set: answers from the first,
//     accepted guesses from the second.
//  2. Only AllowedFile set: that file serves as both lists.
//  3. Only AnswersFile set: answers from it, embedded allowed list on top.
//  4. Neither set: embedded defaults.
//
// Constraints:
//   - Words must be 5 letters A–Z; anything else is dropped.
//   - Lists are normalized to uppercase and de-duplicated.
package words

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/assets"
	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

// ErrNoAnswers is returned when no valid puzzle word survived loading.
var ErrNoAnswers = errors.New("words: answers list is empty")

// Source says where word lists come from. Empty paths mean "embedded".
type Source struct {
	AnswersFile string
	AllowedFile string
}

// Lists is the read-only pair of word lists.
type Lists struct {
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{} // answers ∪ allowed
}

var _ game.Dictionary = (*Lists)(nil)

// Load resolves src into Lists.
func Load(src Source) (*Lists, error) {
	var ansList, allowList []string
	var err error

	switch {
	case src.AnswersFile != "" && src.AllowedFile != "":
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}

	case src.AllowedFile != "":
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}
		ansList = allowList

	case src.AnswersFile != "":
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("embedded allowed list: %w", err)
		}

	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("embedded answers list: %w", err)
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("embedded allowed list: %w", err)
		}
	}

	l, err := New(ansList, allowList)
	if err != nil {
		return nil, err
	}
	a, g := l.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).
		Str("answersFile", src.AnswersFile).Str("allowedFile", src.AllowedFile).
		Msg("word lists loaded")
	return l, nil
}

// New builds Lists from raw word slices. Invalid entries are dropped and
// every answer is also accepted as a guess.
func New(answers, allowed []string) (*Lists, error) {
	l := &Lists{
		answersSet: make(map[string]struct{}, len(answers)),
		allowedSet: make(map[string]struct{}, len(answers)+len(allowed)),
	}
	for _, w := range normalize(answers) {
		if _, dup := l.answersSet[w]; dup {
			continue
		}
		l.answersSet[w] = struct{}{}
		l.allowedSet[w] = struct{}{}
		l.answers = append(l.answers, w)
	}
	for _, w := range normalize(allowed) {
		l.allowedSet[w] = struct{}{}
	}
	if len(l.answers) == 0 {
		return nil, ErrNoAnswers
	}
	return l, nil
}

// readWordFile loads words from a file (one or more per line).
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	out, err := assets.ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return out, nil
}

// normalize keeps only valid uppercase 5-letter words.
func normalize(in []string) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		w = game.Normalize(w)
		if Valid(w) {
			out = append(out, w)
		}
	}
	return out
}

// Valid reports whether w is exactly game.WordLength letters A–Z.
func Valid(w string) bool {
	if len(w) != game.WordLength {
		return false
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is an accepted guess (answers ∪ allowed).
func (l *Lists) Contains(w string) bool {
	_, ok := l.allowedSet[game.Normalize(w)]
	return ok
}

// IsAnswer reports whether w is a puzzle word.
func (l *Lists) IsAnswer(w string) bool {
	_, ok := l.answersSet[game.Normalize(w)]
	return ok
}

// Answer returns the puzzle word at index i.
func (l *Lists) Answer(i int) string { return l.answers[i] }

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}

// Target picks a puzzle word using p.
func (l *Lists) Target(p Picker) string {
	return l.answers[p.Pick(len(l.answers))]
}

// TargetAt is Target for a round starting at t. Date-based pickers pick
// the word of t's day; others ignore t.
func (l *Lists) TargetAt(p Picker, t time.Time) string {
	if dp, ok := p.(DatedPicker); ok {
		return l.answers[dp.PickAt(t, len(l.answers))]
	}
	return l.Target(p)
}
