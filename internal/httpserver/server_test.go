package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/leaderboard"
	"github.com/robalobadob/wordle/internal/words"
)

type ServerSuite struct {
	suite.Suite
	srv *Server
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.T().Setenv("CLIENT_ORIGIN", "http://example.test")
	d := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	backend := leaderboard.NewMemoryBackend(
		leaderboard.Entry{Name: "Slow", Time: 90, Date: d, Mode: game.ModeEasy},
		leaderboard.Entry{Name: "Fast", Time: 15.5, Date: d, Mode: game.ModeEasy},
		leaderboard.Entry{Name: "Old", Time: 40, Date: d},
		leaderboard.Entry{Name: "Fast", Time: 70, Date: d, Mode: game.ModeMedium},
	)
	s.srv = New(leaderboard.NewStore(backend), words.Stats{Easy: 2, Medium: 1, Allowed: 5})
}

func (s *ServerSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.srv.Router().ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) TestHealth() {
	rec := s.get("/health")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok":true,"backend":"memory"}`, rec.Body.String())
	s.Equal("application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	s.Equal("http://example.test", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *ServerSuite) TestTopDefaultsToEasy() {
	rec := s.get("/leaderboard")
	s.Require().Equal(http.StatusOK, rec.Code)

	var res lbRes
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Equal(game.ModeEasy, res.Mode)
	s.Require().Len(res.Top, 3)
	s.Equal(lbRow{Rank: 1, Name: "Fast", Time: 15.5, Date: "2026-10-17T08:00:00.000000Z"}, res.Top[0])
	s.Equal("Old", res.Top[1].Name)
	s.Equal(3, res.Top[2].Rank)
}

func (s *ServerSuite) TestTopByModeAndLimit() {
	var res lbRes
	rec := s.get("/leaderboard?mode=medium")
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Equal(game.ModeMedium, res.Mode)
	s.Len(res.Top, 1)

	rec = s.get("/leaderboard?n=1")
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Len(res.Top, 1)

	rec = s.get("/leaderboard?n=0")
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.Empty(res.Top)
}

func (s *ServerSuite) TestBadParams() {
	s.Equal(http.StatusBadRequest, s.get("/leaderboard?mode=hard").Code)
	s.Equal(http.StatusBadRequest, s.get("/leaderboard?n=lots").Code)
	s.Equal(http.StatusBadRequest, s.get("/leaderboard?n=-2").Code)
}

func (s *ServerSuite) TestBestForPlayer() {
	rec := s.get("/leaderboard/Fast?mode=Medium")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"name":"Fast","time":70,"date":"2026-10-17T08:00:00.000000Z","mode":"Medium"}`, rec.Body.String())

	rec = s.get("/leaderboard/Old")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"name":"Old","time":40,"date":"2026-10-17T08:00:00.000000Z"}`, rec.Body.String())

	rec = s.get("/leaderboard/Nobody")
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"error":"not_found","detail":"Nobody"}`, rec.Body.String())
}

func (s *ServerSuite) TestNotFoundIsJSON() {
	rec := s.get("/nope")
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"error":"not_found","detail":"/nope"}`, rec.Body.String())
}

func (s *ServerSuite) TestPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/leaderboard", nil)
	rec := httptest.NewRecorder()
	s.srv.Router().ServeHTTP(rec, req)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerSuite) TestWordStats() {
	rec := s.get("/debug/words")
	s.JSONEq(`{"easy":2,"medium":1,"allowed":5}`, rec.Body.String())
}

func (s *ServerSuite) TestStartStopsOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.srv.Start(ctx, "127.0.0.1:0") }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(5 * time.Second):
		s.Fail("server did not stop")
	}
}
