// assets/embed.go
//
// Embedded default word lists. Used whenever no word files are configured,
// so the game always starts with a playable dictionary.
package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// ReadWords splits r into words. Lines may carry several whitespace separated
// words; blank lines and lines starting with "#" are skipped. Words are
// returned uppercased and unfiltered.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		for _, w := range strings.Fields(s) {
			out = append(out, strings.ToUpper(w))
		}
	}
	return out, sc.Err()
}

func readList(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWords(f)
}

// AnswersList returns the embedded puzzle words.
func AnswersList() ([]string, error) {
	return readList("answers.txt")
}

// AllowedList returns the embedded extra accepted guesses.
func AllowedList() ([]string, error) {
	return readList("allowed.txt")
}
