// Package daily derives the "word of the day": every player gets the same
// puzzle on a given UTC date, and the pick cannot be guessed without the salt.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"time"
)

// Puzzle identifies one day's word.
type Puzzle struct {
	Date  string // YYYY-MM-DD, UTC
	Index int    // into the answers list
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PuzzleFor returns the puzzle of the UTC day containing t, drawn from n
// answers. n <= 0 yields index 0.
func PuzzleFor(t time.Time, salt string, n int) Puzzle {
	date := DateKey(t)
	return Puzzle{Date: date, Index: index(date, salt, n)}
}

// index reduces HMAC-SHA256(salt, date) modulo n.
func index(date, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	_, _ = io.WriteString(mac, date)
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}

// Number is the puzzle number for date, counted in days since epoch (1-based).
func Number(date, epoch time.Time) int {
	d := date.UTC().Truncate(24 * time.Hour)
	e := epoch.UTC().Truncate(24 * time.Hour)
	return int(d.Sub(e)/(24*time.Hour)) + 1
}
