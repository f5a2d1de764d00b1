package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/robalobadob/wordle/internal/dependencies/mocks"
	"github.com/robalobadob/wordle/internal/game"
)

type WordsSuite struct {
	suite.Suite
	dir string
}

func TestWordsSuite(t *testing.T) {
	suite.Run(t, new(WordsSuite))
}

func (s *WordsSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *WordsSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *WordsSuite) TestParseFiltersAndLowercases() {
	in := "Crane\n  trace  \nabc\ntoolong\ncr4ne\n\n# comment\nAPPLE\r\nhello world\n"
	words, err := Parse(strings.NewReader(in))
	s.Require().NoError(err)
	s.Equal([]string{"crane", "trace", "apple"}, words)
}

func (s *WordsSuite) TestParseSkipsOverlongLines() {
	in := "crane\n" + strings.Repeat("a", 70*1024) + "\ntrace"
	words, err := Parse(strings.NewReader(in))
	s.Require().NoError(err)
	s.Equal([]string{"crane", "trace"}, words)
}

func (s *WordsSuite) TestReadFileMissing() {
	_, err := ReadFile(filepath.Join(s.dir, "nope.txt"))
	s.ErrorIs(err, ErrWordListMissing)
}

func (s *WordsSuite) TestReadFileEmptyAfterFiltering() {
	path := s.writeFile("bad.txt", "abc\nabcdef\n12345\n")
	_, err := ReadFile(path)
	s.ErrorIs(err, ErrEmptyWordList)
}

func (s *WordsSuite) TestLoadEmbeddedDefaults() {
	l, err := Load(Config{})
	s.Require().NoError(err)

	st := l.Stats()
	s.Positive(st.Easy)
	s.Positive(st.Medium)
	s.GreaterOrEqual(st.Allowed, st.Easy)

	for _, w := range l.Easy {
		s.True(l.IsAllowed(w), "easy target %s must be guessable", w)
	}
	for _, w := range l.Medium {
		s.True(l.IsAllowed(w), "medium target %s must be guessable", w)
	}
}

func (s *WordsSuite) TestLoadFromFiles() {
	cfg := Config{
		EasyPath:    s.writeFile("easy.txt", "crane\nTRACE\n"),
		MediumPath:  s.writeFile("medium.txt", "abbey\n"),
		AllowedPath: s.writeFile("allowed.txt", "zesty\n"),
	}
	l, err := Load(cfg)
	s.Require().NoError(err)

	s.Equal([]string{"crane", "trace"}, l.Targets(game.ModeEasy))
	s.Equal([]string{"abbey"}, l.Targets(game.ModeMedium))
	s.Equal([]string{"crane", "trace"}, l.Targets(""))
	s.True(l.IsAllowed("zesty"))
	s.True(l.IsAllowed("ABBEY"))
	s.False(l.IsAllowed("vivid"))
	s.Equal(Stats{Easy: 2, Medium: 1, Allowed: 4}, l.Stats())
}

func (s *WordsSuite) TestLoadFailsOnMissingConfiguredFile() {
	_, err := Load(Config{EasyPath: filepath.Join(s.dir, "missing.txt")})
	s.ErrorIs(err, ErrWordListMissing)
}

func (s *WordsSuite) TestNewRequiresTargets() {
	_, err := New(nil, []string{"abbey"}, nil)
	s.ErrorIs(err, ErrEmptyWordList)
	_, err = New([]string{"crane"}, nil, nil)
	s.ErrorIs(err, ErrEmptyWordList)
}

func (s *WordsSuite) TestPickTarget() {
	list := []string{"crane", "trace", "abbey"}
	rng := mocks.NewMockRandom(2, 0)

	w, err := PickTarget(rng, list)
	s.Require().NoError(err)
	s.Equal("abbey", w)

	w, err = PickTarget(rng, list)
	s.Require().NoError(err)
	s.Equal("crane", w)

	_, err = PickTarget(rng, nil)
	s.ErrorIs(err, ErrEmptyWordList)
}
