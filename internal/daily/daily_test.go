package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 05:00 local on the 2nd is still the 1st in UTC.
	assert.Equal(t, "2026-03-01", DateKey(time.Date(2026, 3, 2, 5, 0, 0, 0, loc)))
	assert.Equal(t, "2026-03-02", DateKey(time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC)))
}

func TestPuzzleFor(t *testing.T) {
	day := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 17, 22, 0, 0, 0, time.UTC)

	p := PuzzleFor(day, "salt", 500)
	assert.Equal(t, "2026-10-17", p.Date)
	assert.GreaterOrEqual(t, p.Index, 0)
	assert.Less(t, p.Index, 500)
	assert.Equal(t, p, PuzzleFor(later, "salt", 500), "same UTC day yields the same puzzle")
	assert.Equal(t, 0, PuzzleFor(day, "salt", 0).Index)
	assert.Equal(t, 0, PuzzleFor(day, "salt", 1).Index)
}

func TestPuzzleFor_DateIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	local := time.Date(2026, 10, 16, 21, 0, 0, 0, loc) // 02:00 UTC on the 17th
	assert.Equal(t, PuzzleFor(local.UTC(), "salt", 500), PuzzleFor(local, "salt", 500))
	assert.Equal(t, "2026-10-17", PuzzleFor(local, "salt", 500).Date)
}

func TestPuzzleFor_VariesWithSaltAndDate(t *testing.T) {
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for d := 0; d < 30; d++ {
		seen[PuzzleFor(day.AddDate(0, 0, d), "salt", 1<<20).Index] = true
	}
	assert.Greater(t, len(seen), 25)

	differs := false
	for d := 0; d < 10 && !differs; d++ {
		date := day.AddDate(0, 0, d)
		differs = PuzzleFor(date, "a", 1<<20).Index != PuzzleFor(date, "b", 1<<20).Index
	}
	assert.True(t, differs)
}

func TestNumber(t *testing.T) {
	epoch := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, Number(epoch, epoch))
	assert.Equal(t, 1, Number(epoch.Add(23*time.Hour), epoch))
	assert.Equal(t, 32, Number(time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), epoch))
}
