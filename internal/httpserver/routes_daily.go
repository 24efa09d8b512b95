// internal/httpserver/routes_daily.go
//
// HTTP routes for the "word of the day".
//   - GET  /daily/today → today's date key and puzzle number
//   - POST /daily/new   → start a round on today's word
//   - POST /daily/guess → same contract as /game/guess
//
// Everyone gets the same word on a given UTC date (HMAC of date + salt).

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/cli/internal/daily"
)

// Epoch is day 1 of the daily puzzle numbering.
var Epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type todayRes struct {
	Date   string `json:"date"`
	Number int    `json:"number"`
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/today", func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			writeJSON(w, http.StatusOK, todayRes{Date: daily.DateKey(now), Number: daily.Number(now, Epoch)})
		})
		r.Post("/new", s.handleNew(s.daily))
		r.Post("/guess", s.handleGuess)
	})
}
