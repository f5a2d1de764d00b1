package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"

	"github.com/robalobadob/wordle/internal/dependencies/mocks"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/leaderboard"
	"github.com/robalobadob/wordle/internal/words"
)

type ModelSuite struct {
	suite.Suite
	clock *mocks.MockClock
	store *leaderboard.Store
	m     Model
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelSuite))
}

func (s *ModelSuite) SetupTest() {
	lists, err := words.New([]string{"crane"}, []string{"abbey"}, []string{"trace", "vivid"})
	s.Require().NoError(err)
	s.clock = mocks.NewMockClock(time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC))
	s.store = leaderboard.NewStore(leaderboard.NewMemoryBackend())
	s.m = New(context.Background(), Deps{
		Lists:        lists,
		Store:        s.store,
		Clock:        s.clock,
		Random:       mocks.NewMockRandom(),
		RequireValid: true,
	})
}

func (s *ModelSuite) send(msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = s.m.Update(msg)
		s.m = next.(Model)
	}
	return cmd
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func (s *ModelSuite) typeText(text string) {
	for _, r := range text {
		s.send(runes(string(r)))
	}
}

func (s *ModelSuite) startAs(name string) {
	s.send(key(tea.KeyEnter)) // Start
	s.Require().Equal(screenName, s.m.screen)
	s.typeText(name)
	s.send(key(tea.KeyEnter))
	s.Require().Equal(screenGame, s.m.screen)
}

func (s *ModelSuite) guess(word string) {
	s.typeText(word)
	s.send(key(tea.KeyEnter))
}

func (s *ModelSuite) TestMenuNavigation() {
	s.Contains(s.m.View(), "> Start")
	s.Contains(s.m.View(), "Difficulty: Easy (6 attempts)")

	s.send(key(tea.KeyDown))
	s.Contains(s.m.View(), "> Leaderboard")
	s.send(key(tea.KeyUp), key(tea.KeyUp))
	s.Contains(s.m.View(), "> Exit")

	s.send(key(tea.KeyTab))
	s.Equal(game.ModeMedium, s.m.mode)
	s.Contains(s.m.View(), "Difficulty: Medium (4 attempts)")

	cmd := s.send(key(tea.KeyEnter))
	s.Require().NotNil(cmd)
	s.IsType(tea.QuitMsg{}, cmd())
}

func (s *ModelSuite) TestWinRecordsTime() {
	s.startAs("Ann")
	s.Equal("Ann", s.m.name)
	s.Contains(s.m.View(), "Attempt 1/6")

	s.guess("trace")
	s.Equal(screenGame, s.m.screen)
	s.Contains(s.m.View(), "Attempt 2/6")
	s.Equal(game.MarkExact, s.m.sess.Keyboard.Status('r'))

	s.clock.Advance(42 * time.Second)
	s.guess("crane")
	s.Require().Equal(screenResult, s.m.screen)
	s.True(s.m.result.won)
	s.InDelta(42.0, s.m.result.elapsed, 1e-9)

	view := s.m.View()
	s.Contains(view, "Your time: 42.00 seconds")
	s.Contains(view, "New Easy record! Saved Ann - 42.00s")

	best, ok := s.store.Best(context.Background(), "Ann", game.ModeEasy)
	s.Require().True(ok)
	s.InDelta(42.0, best.Time, 1e-9)
}

func (s *ModelSuite) TestValidationErrors() {
	s.startAs("Ann")

	s.guess("abc")
	s.Equal("Please enter exactly 5 letters.", s.m.errMsg)
	s.Contains(s.m.View(), "Please enter exactly 5 letters.")

	s.send(key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace))
	s.guess("zzzzz")
	s.Equal("Word not in list.", s.m.errMsg)
	s.Empty(s.m.sess.Guesses)

	s.send(key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace))
	s.guess("trace")
	s.Empty(s.m.errMsg)
	s.Len(s.m.sess.Guesses, 1)
}

func (s *ModelSuite) TestInputIsCappedAtFiveLetters() {
	s.startAs("Ann")
	s.typeText("cranes")
	s.Equal("crane", s.m.input.Value())
}

func (s *ModelSuite) TestLossShowsWord() {
	s.send(key(tea.KeyTab)) // Medium
	s.startAs("Ann")
	for i := 0; i < 4; i++ {
		s.guess("vivid")
	}
	s.Require().Equal(screenResult, s.m.screen)
	s.False(s.m.result.won)
	s.Contains(s.m.View(), "The word was: ABBEY")
	s.Empty(s.store.Load(context.Background()))
}

func (s *ModelSuite) TestBlankNameIsAnonymous() {
	s.startAs("")
	s.Equal(leaderboard.AnonymousName, s.m.name)
}

func (s *ModelSuite) TestEscAbandonsGame() {
	s.startAs("Ann")
	s.guess("trace")
	s.send(key(tea.KeyEsc))
	s.Equal(screenMenu, s.m.screen)
	s.Nil(s.m.sess)
}

func (s *ModelSuite) TestLeaderboardScreen() {
	ctx := context.Background()
	_, _, err := s.store.UpsertBest(ctx, "Ann", game.ModeEasy, 12.5, s.clock.Now())
	s.Require().NoError(err)
	_, _, err = s.store.UpsertBest(ctx, "Bob", game.ModeMedium, 30, s.clock.Now())
	s.Require().NoError(err)

	s.send(key(tea.KeyDown), key(tea.KeyEnter))
	s.Require().Equal(screenLeaderboard, s.m.screen)
	view := s.m.View()
	s.Contains(view, "Leaderboard - Easy")
	s.Contains(view, "Rank Name            Time(s)   Date")
	s.Contains(view, "1    Ann             12.50     2026-10-17")
	s.NotContains(view, "Bob")

	s.send(key(tea.KeyRight))
	s.Contains(s.m.View(), "Leaderboard - Medium")
	s.Contains(s.m.View(), "Bob")

	s.send(runes("l"))
	s.Contains(s.m.View(), "Leaderboard - Easy")

	s.send(key(tea.KeyEsc))
	s.Equal(screenMenu, s.m.screen)
}

func (s *ModelSuite) TestEmptyLeaderboard() {
	s.send(key(tea.KeyDown), key(tea.KeyEnter))
	s.Contains(s.m.View(), "No records for Easy mode yet.")
}

func (s *ModelSuite) TestResultToLeaderboard() {
	s.startAs("Ann")
	s.guess("crane")
	s.Require().Equal(screenResult, s.m.screen)

	s.send(runes("l"))
	s.Equal(screenLeaderboard, s.m.screen)
	s.Contains(s.m.View(), "Ann")
}

func (s *ModelSuite) TestTickUpdatesTimerOnlyInGame() {
	s.Nil(s.send(tickMsg{}))

	s.startAs("Ann")
	s.clock.Advance(3 * time.Second)
	s.NotNil(s.send(tickMsg{session: s.m.sess.ID}))
	s.Contains(s.m.View(), "Time: 3.0s")
}

func (s *ModelSuite) TestTicksFromAbandonedGameStop() {
	s.startAs("Ann")
	first := s.m.sess.ID

	s.send(key(tea.KeyEsc))
	s.Require().Equal(screenMenu, s.m.screen)
	s.startAs("Ann")
	s.Require().NotEqual(first, s.m.sess.ID)

	s.Nil(s.send(tickMsg{session: first}), "old timer chain must end")
	s.NotNil(s.send(tickMsg{session: s.m.sess.ID}))
}

func (s *ModelSuite) TestCtrlCQuitsAnywhere() {
	s.startAs("Ann")
	cmd := s.send(key(tea.KeyCtrlC))
	s.Require().NotNil(cmd)
	s.IsType(tea.QuitMsg{}, cmd())
}
