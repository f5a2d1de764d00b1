package leaderboard

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/robalobadob/wordle/internal/game"
)

type StoreSuite struct {
	suite.Suite
	dir  string
	path string
	ctx  context.Context
	now  time.Time
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.path = filepath.Join(s.dir, "data", "placemate.json")
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 2, 3, 4, 5, 123456000, time.UTC)
}

func (s *StoreSuite) write(content string) {
	s.Require().NoError(os.MkdirAll(filepath.Dir(s.path), 0o755))
	s.Require().NoError(os.WriteFile(s.path, []byte(content), 0o644))
}

// plain keeps only the record fields, dropping what was read from storage.
func plain(lb Leaderboard) Leaderboard {
	out := make(Leaderboard, len(lb))
	for i, e := range lb {
		out[i] = Entry{Name: e.Name, Time: e.Time, Date: e.Date, Mode: e.Mode}
	}
	return out
}

func (s *StoreSuite) TestMissingFileIsEmpty() {
	st := NewStore(NewFileBackend(s.path))
	lb := st.Load(s.ctx)
	s.NotNil(lb)
	s.Empty(lb)
}

func (s *StoreSuite) TestMalformedFileIsEmpty() {
	for _, content := range []string{"{not json", `{"name":"Ann"}`, ""} {
		s.write(content)
		st := NewStore(NewFileBackend(s.path))
		s.Empty(st.Load(s.ctx), "content %q", content)
	}
}

func (s *StoreSuite) TestBackendReportsMalformed() {
	s.write("[1, 2")
	_, err := NewFileBackend(s.path).Load(s.ctx)
	s.ErrorIs(err, ErrMalformed)
}

func (s *StoreSuite) TestLenientRead() {
	s.write(`[
  {"name": "Ann", "time": 12.5, "date": "2024-01-02T03:04:05.123456Z", "mode": "Medium"},
  {"name": "Bob", "time": "fast", "date": "2024-01-02T03:04:05.123456Z"},
  {"time": 3},
  "junk",
  {"name": "Cat", "time": 40, "date": "yesterday"},
  {"name": "Dan", "time": 41, "date": "2024-01-02T03:04:05.5"}
]`)
	all, err := NewFileBackend(s.path).Load(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 6)
	lb := plain(all.Records())
	s.Require().Len(lb, 3)

	s.Equal(Entry{Name: "Ann", Time: 12.5, Date: s.now, Mode: game.ModeMedium}, lb[0])
	s.Equal("Cat", lb[1].Name)
	s.True(lb[1].Date.IsZero())
	s.Equal(game.Mode(""), lb[1].Mode)
	s.Equal(game.ModeEasy, lb[1].EffectiveMode())
	s.Equal(time.Date(2024, 1, 2, 3, 4, 5, 500000000, time.UTC), lb[2].Date)
}

func (s *StoreSuite) TestFileFormat() {
	b := NewFileBackend(s.path)
	lb := Leaderboard{
		{Name: "Ann", Time: 12.5, Date: s.now, Mode: game.ModeEasy},
		{Name: "Old", Time: 30, Date: s.now},
	}
	s.Require().NoError(b.Save(s.ctx, lb))

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	want := `[
  {
    "name": "Ann",
    "time": 12.5,
    "date": "2024-01-02T03:04:05.123456Z",
    "mode": "Easy"
  },
  {
    "name": "Old",
    "time": 30,
    "date": "2024-01-02T03:04:05.123456Z"
  }
]
`
	s.Equal(want, string(data))

	back, err := b.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(lb, plain(back))
}

func (s *StoreSuite) TestZeroDateIsOmitted() {
	b := NewFileBackend(s.path)
	s.Require().NoError(b.Save(s.ctx, Leaderboard{{Name: "Old", Time: 30}}))
	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.NotContains(string(data), "date")
	s.NotContains(string(data), "0001-01-01")
}

func (s *StoreSuite) TestUpsertLeavesOtherElementsUntouched() {
	s.write(`[{"name":"Old","time":30},{"name":"Str","time":"12.5","date":"2024-01-02T03:04:05.123456Z"},{"name":"Extra","time":20,"date":"2024-01-02T03:04:05.123456Z","mode":"Easy","guesses":3},{"name":"Ann","time":50,"date":"2024-01-02T03:04:05.123456Z","mode":"Easy","note":"old"}]`)
	st := NewStore(NewFileBackend(s.path))

	_, res, err := st.UpsertBest(s.ctx, "New", game.ModeEasy, 10, s.now)
	s.Require().NoError(err)
	s.Equal(OutcomeNewRecord, res.Outcome)
	_, res, err = st.UpsertBest(s.ctx, "Ann", game.ModeEasy, 40, s.now)
	s.Require().NoError(err)
	s.Equal(OutcomePersonalBest, res.Outcome)

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	want := `[
  {
    "name": "Old",
    "time": 30
  },
  {
    "name": "Str",
    "time": "12.5",
    "date": "2024-01-02T03:04:05.123456Z"
  },
  {
    "name": "Extra",
    "time": 20,
    "date": "2024-01-02T03:04:05.123456Z",
    "mode": "Easy",
    "guesses": 3
  },
  {
    "name": "Ann",
    "time": 40,
    "date": "2024-01-02T03:04:05.123456Z",
    "mode": "Easy"
  },
  {
    "name": "New",
    "time": 10,
    "date": "2024-01-02T03:04:05.123456Z",
    "mode": "Easy"
  }
]
`
	s.Equal(want, string(data))

	top := st.TopN(s.ctx, game.ModeEasy, 10)
	s.Require().Len(top, 4)
	s.Equal([]string{"New", "Extra", "Old", "Ann"}, []string{top[0].Name, top[1].Name, top[2].Name, top[3].Name})
}

func (s *StoreSuite) TestEmptySaveWritesEmptyArray() {
	b := NewFileBackend(s.path)
	s.Require().NoError(b.Save(s.ctx, nil))
	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.Equal("[]\n", string(data))
}

func (s *StoreSuite) TestUpsertBestPersists() {
	st := NewStore(NewFileBackend(s.path))

	lb, res, err := st.UpsertBest(s.ctx, "Ann", game.ModeEasy, 40, s.now)
	s.Require().NoError(err)
	s.Equal(OutcomeNewRecord, res.Outcome)
	s.Len(lb, 1)

	_, res, err = st.UpsertBest(s.ctx, "Ann", game.ModeEasy, 35, s.now.Add(time.Hour))
	s.Require().NoError(err)
	s.Equal(OutcomePersonalBest, res.Outcome)
	s.Equal(40.0, res.Previous)

	_, res, err = st.UpsertBest(s.ctx, "Ann", game.ModeEasy, 50, s.now)
	s.Require().NoError(err)
	s.Equal(OutcomeNotImproved, res.Outcome)

	reopened := NewStore(NewFileBackend(s.path))
	best, ok := reopened.Best(s.ctx, "Ann", game.ModeEasy)
	s.Require().True(ok)
	s.Equal(35.0, best.Time)
	s.Equal(s.now.Add(time.Hour), best.Date)
	s.Len(reopened.TopN(s.ctx, game.ModeEasy, 10), 1)
}

func (s *StoreSuite) TestUpsertBestOverMalformedFileStartsFresh() {
	s.write("garbage")
	st := NewStore(NewFileBackend(s.path))
	lb, res, err := st.UpsertBest(s.ctx, "Ann", game.ModeMedium, 40, s.now)
	s.Require().NoError(err)
	s.Equal(OutcomeNewRecord, res.Outcome)
	s.Len(lb, 1)
	s.Len(st.Load(s.ctx), 1)
}

func (s *StoreSuite) TestSaveFailureIsAWarning() {
	blocker := filepath.Join(s.dir, "file")
	s.Require().NoError(os.WriteFile(blocker, []byte("x"), 0o644))
	st := NewStore(NewFileBackend(filepath.Join(blocker, "sub", "board.json")))

	lb, res, err := st.UpsertBest(s.ctx, "Ann", game.ModeEasy, 40, s.now)
	s.Require().Error(err)
	var warn *PersistenceWarning
	s.Require().True(errors.As(err, &warn))
	s.Equal("json", warn.Backend)
	s.NotNil(warn.Unwrap())
	s.Contains(err.Error(), "could not save leaderboard record")

	s.Equal(OutcomeNewRecord, res.Outcome)
	s.Len(lb, 1, "in-memory result survives the failed save")
}

func (s *StoreSuite) TestDefaultFile() {
	s.Equal(DefaultFile, NewFileBackend("").Path())
}

func (s *StoreSuite) TestCloseWithoutCloser() {
	s.NoError(NewStore(NewMemoryBackend()).Close())
}
