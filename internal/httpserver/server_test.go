package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/play"
	"github.com/robalobadob/wordle/apps/cli/internal/store"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

func newServer(t *testing.T) *Server {
	t.Helper()
	l, err := words.New([]string{"LEARN"}, []string{"RANGE", "DUMPY"})
	require.NoError(t, err)
	st := store.NewMemory()
	games, err := play.New(play.Options{Words: l, Store: st, Strict: true})
	require.NoError(t, err)
	daily, err := play.New(play.Options{Words: l, Store: st, Strict: true, Mode: store.ModeDaily, Unlimited: true,
		Picker: words.DailyPicker{Salt: "s"}})
	require.NoError(t, err)
	return New(games, daily)
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestNotFound(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not_found"}`, rec.Body.String())
}

func TestGameFlow(t *testing.T) {
	s := newServer(t)

	rec := do(t, s, http.MethodPost, "/game/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[newGameRes](t, rec)
	assert.NotEmpty(t, created.GameID)
	assert.Equal(t, "random", created.Mode)
	assert.Equal(t, 5, created.Length)
	assert.Equal(t, 6, created.MaxAttempts)

	rec = do(t, s, http.MethodPost, "/game/guess", guessReq{GameID: created.GameID, Guess: "zzzzz"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"Not a recognized word."}`, rec.Body.String())

	rec = do(t, s, http.MethodPost, "/game/guess", guessReq{GameID: created.GameID, Guess: "range"})
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[guessRes](t, rec)
	assert.Equal(t, []game.Classification{game.Present, game.Present, game.Present, game.Absent, game.Present}, res.Result)
	assert.Equal(t, game.InProgress, res.State)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 5, res.Remaining)
	assert.Empty(t, res.Answer)

	rec = do(t, s, http.MethodPost, "/game/guess", guessReq{GameID: created.GameID, Guess: "learn"})
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[guessRes](t, rec)
	assert.Equal(t, game.Won, res.State)

	// finished rounds are dropped
	rec = do(t, s, http.MethodPost, "/game/guess", guessReq{GameID: created.GameID, Guess: "learn"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[map[string]any](t, rec)
	assert.EqualValues(t, 1, stats["played"])
	assert.EqualValues(t, 100, stats["winPercent"])
}

func TestGameLossRevealsAnswer(t *testing.T) {
	s := newServer(t)
	created := decode[newGameRes](t, do(t, s, http.MethodPost, "/game/new", nil))

	var res guessRes
	for i := 0; i < game.MaxAttempts; i++ {
		rec := do(t, s, http.MethodPost, "/game/guess", guessReq{GameID: created.GameID, Guess: "dumpy"})
		require.Equal(t, http.StatusOK, rec.Code)
		res = decode[guessRes](t, rec)
	}
	assert.Equal(t, game.Lost, res.State)
	assert.Equal(t, "LEARN", res.Answer)
}

func TestIdleRoundsExpire(t *testing.T) {
	s := newServer(t)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	idle := decode[newGameRes](t, do(t, s, http.MethodPost, "/game/new", nil))
	active := decode[newGameRes](t, do(t, s, http.MethodPost, "/game/new", nil))

	now = now.Add(RoundTTL / 2)
	rec := do(t, s, http.MethodPost, "/game/guess", guessReq{GameID: active.GameID, Guess: "range"})
	require.Equal(t, http.StatusOK, rec.Code)

	now = now.Add(RoundTTL/2 + time.Second)
	rec = do(t, s, http.MethodPost, "/game/guess", guessReq{GameID: idle.GameID, Guess: "range"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPost, "/game/guess", guessReq{GameID: active.GameID, Guess: "range"})
	assert.Equal(t, http.StatusOK, rec.Code, "a guess keeps the round alive")

	s.mu.Lock()
	assert.Len(t, s.rounds, 1)
	s.mu.Unlock()
}

func TestGuessBadRequests(t *testing.T) {
	s := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/game/guess", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/game/guess", guessReq{GameID: "missing", Guess: "learn"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDailyRoutes(t *testing.T) {
	s := newServer(t)

	rec := do(t, s, http.MethodGet, "/daily/today", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	today := decode[todayRes](t, rec)
	assert.Len(t, today.Date, len("2006-01-02"))
	assert.Positive(t, today.Number)

	created := decode[newGameRes](t, do(t, s, http.MethodPost, "/daily/new", nil))
	assert.Equal(t, "daily", created.Mode)

	rec = do(t, s, http.MethodPost, "/daily/guess", guessReq{GameID: created.GameID, Guess: "learn"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, game.Won, decode[guessRes](t, rec).State)
}

func TestDebugWords(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/debug/words", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"answers":1,"allowed":3}`, rec.Body.String())
}
