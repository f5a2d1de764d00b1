// internal/httpserver/routes_leaderboard.go
//
// Read-only leaderboard routes:
//   - GET /leaderboard?mode=Easy&n=10 → fastest n records for a mode
//   - GET /leaderboard/{name}?mode=Easy → one player's record (404 if absent)

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/leaderboard"
)

const (
	defaultTopN = 10
	maxTopN     = 100
)

// lbRow is one ranked record.
type lbRow struct {
	Rank int     `json:"rank"`
	Name string  `json:"name"`
	Time float64 `json:"time"`
	Date string  `json:"date,omitempty"`
}

// lbRes is returned by /leaderboard.
type lbRes struct {
	Mode game.Mode `json:"mode"`
	Top  []lbRow   `json:"top"`
}

// mountLeaderboard registers the /leaderboard routes.
func (s *Server) mountLeaderboard(r chi.Router) {
	r.Route("/leaderboard", func(r chi.Router) {
		r.Get("/", s.handleTop)
		r.Get("/{name}", s.handleBest)
	})
}

// handleTop returns the top n records for the requested mode (default Easy).
func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	mode, ok := modeParam(w, r)
	if !ok {
		return
	}
	n := defaultTopN
	if raw := r.URL.Query().Get("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			writeError(w, http.StatusBadRequest, "bad_n", raw)
			return
		}
		n = min(v, maxTopN)
	}

	top := s.store.TopN(r.Context(), mode, n)
	rows := make([]lbRow, len(top))
	for i, e := range top {
		rows[i] = lbRow{Rank: i + 1, Name: e.Name, Time: e.Time}
		if !e.Date.IsZero() {
			rows[i].Date = e.Date.UTC().Format(leaderboard.DateLayout)
		}
	}
	_ = json.NewEncoder(w).Encode(lbRes{Mode: mode, Top: rows})
}

// handleBest returns the record for {name} in the requested mode.
func (s *Server) handleBest(w http.ResponseWriter, r *http.Request) {
	mode, ok := modeParam(w, r)
	if !ok {
		return
	}
	name := chi.URLParam(r, "name")
	e, found := s.store.Best(r.Context(), name, mode)
	if !found {
		writeError(w, http.StatusNotFound, "not_found", name)
		return
	}
	_ = json.NewEncoder(w).Encode(e)
}

// modeParam parses ?mode=, writing a 400 on a bad value.
func modeParam(w http.ResponseWriter, r *http.Request) (game.Mode, bool) {
	raw := r.URL.Query().Get("mode")
	mode, err := game.ParseMode(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_mode", raw)
		return "", false
	}
	return mode.Effective(), true
}
