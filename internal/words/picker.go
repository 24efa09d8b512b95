package words

import (
	"crypto/rand"
	"io"
	"math/big"
	mrand "math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/internal/daily"
)

// Picker chooses an index in [0, n). n is always > 0.
type Picker interface {
	Pick(n int) int
}

// DatedPicker picks by calendar date. Callers that track their own clock
// use PickAt so the pick and their bookkeeping agree on the day.
type DatedPicker interface {
	Picker
	PickAt(t time.Time, n int) int
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) int

func (f PickerFunc) Pick(n int) int { return f(n) }

type cryptoPicker struct {
	src io.Reader
}

// NewCryptoPicker returns a Picker backed by crypto/rand.
func NewCryptoPicker() Picker { return cryptoPicker{src: rand.Reader} }

func (p cryptoPicker) Pick(n int) int {
	nBig, err := rand.Int(p.src, big.NewInt(int64(n)))
	if err != nil {
		log.Error().Err(err).Msg("crypto/rand unavailable, picking the first word")
		return 0
	}
	return int(nBig.Int64())
}

// SeededPicker yields a reproducible sequence of picks for a given seed.
type SeededPicker struct {
	mu sync.Mutex
	r  *mrand.Rand
}

// NewSeededPicker returns a deterministic Picker.
func NewSeededPicker(seed uint64) *SeededPicker {
	return &SeededPicker{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *SeededPicker) Pick(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.r.IntN(n)
}

// DailyPicker selects the same index for everyone on a given UTC date.
type DailyPicker struct {
	Salt string
	Now  func() time.Time
}

func (p DailyPicker) Pick(n int) int {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return p.PickAt(now(), n)
}

// PickAt returns the index of the puzzle for the UTC day containing t.
func (p DailyPicker) PickAt(t time.Time, n int) int {
	return daily.PuzzleFor(t, p.Salt, n).Index
}
