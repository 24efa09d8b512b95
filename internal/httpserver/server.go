// internal/httpserver/server.go
//
// HTTP server wiring for `wordle serve`.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/stats", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess.
//   - Daily endpoints: mounted under /daily (routes_daily.go).
//
// Notes:
//   - Rounds in progress live in an in-memory registry keyed by session ID
//     and are dropped once finished, or after RoundTTL without a guess;
//     finished rounds reach the results store through play.Round.
//   - The answer is only revealed once a round is lost.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/play"
)

// RoundTTL is how long a round may sit without a guess before it is
// forgotten.
const RoundTTL = 30 * time.Minute

// Server bundles router, loops and the registry of active rounds.
type Server struct {
	r     *chi.Mux
	games *play.Loop
	daily *play.Loop
	now   func() time.Time

	mu     sync.Mutex            // guards rounds and every Round in it
	rounds map[string]*liveRound // active rounds keyed by session ID
}

type liveRound struct {
	*play.Round
	touched time.Time
}

// New constructs a Server, installs middleware, and registers routes.
// daily may be nil to disable /daily.
func New(games, daily *play.Loop) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		games:  games,
		daily:  daily,
		now:    time.Now,
		rounds: make(map[string]*liveRound),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(requestLogger)                   // zerolog access log
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle","endpoints":["/health","/stats","POST /game/new","POST /game/guess","POST /daily/new","POST /daily/guess"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.games.Words().Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g})
	})
	s.r.Get("/stats", s.handleStats)

	s.r.Post("/game/new", s.handleNew(s.games))
	s.r.Post("/game/guess", s.handleGuess)

	if s.daily != nil {
		s.mountDaily(s.r)
	}

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Handler exposes the router (tests, custom listeners).
func (s *Server) Handler() http.Handler { return s.r }

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one debug line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("reqId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameRes is the payload for POST /game/new and /daily/new.
type newGameRes struct {
	GameID      string `json:"gameId"`
	Mode        string `json:"mode"`
	Length      int    `json:"length"`
	MaxAttempts int    `json:"maxAttempts"`
}

// handleNew starts a round on loop and registers it.
func (s *Server) handleNew(loop *play.Loop) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		round, err := loop.Start(r.Context())
		if errors.Is(err, play.ErrDailyPlayed) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("start round")
			writeError(w, http.StatusInternalServerError, "start_failed")
			return
		}
		s.mu.Lock()
		s.sweep()
		s.rounds[round.ID] = &liveRound{Round: round, touched: s.now()}
		s.mu.Unlock()

		writeJSON(w, http.StatusOK, newGameRes{
			GameID:      round.ID,
			Mode:        string(loop.Mode()),
			Length:      len(round.Target),
			MaxAttempts: round.MaxAttempts,
		})
	}
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Result    []game.Classification `json:"result"`
	State     game.State            `json:"state"`
	Attempts  int                   `json:"attempts"`
	Remaining int                   `json:"remaining"`
	Answer    string                `json:"answer,omitempty"`
}

// handleGuess applies a guess to an active round. Validation failures
// are 422 with the player-facing message and do not consume an attempt.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	round, ok := s.rounds[req.GameID]
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	round.touched = s.now()
	a, err := round.Guess(r.Context(), req.Guess)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	res := guessRes{
		Result:    a.Result,
		State:     round.State,
		Attempts:  round.Used(),
		Remaining: round.Remaining(),
	}
	if round.State.Finished() {
		delete(s.rounds, round.ID)
		if round.State == game.Lost {
			res.Answer = round.Target
		}
	}
	writeJSON(w, http.StatusOK, res)
}

// sweep drops rounds idle for longer than RoundTTL. Caller holds s.mu.
func (s *Server) sweep() {
	cutoff := s.now().Add(-RoundTTL)
	for id, lr := range s.rounds {
		if lr.touched.Before(cutoff) {
			delete(s.rounds, id)
			log.Debug().Str("session", id).Msg("idle round expired")
		}
	}
}

// handleStats returns the results history summary.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.games.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("stats")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"played":        st.Played,
		"wins":          st.Wins,
		"winPercent":    st.WinPercent(),
		"currentStreak": st.CurrentStreak,
		"maxStreak":     st.MaxStreak,
		"distribution":  st.Distribution,
	})
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
