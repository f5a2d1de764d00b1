// internal/tui/model.go
//
// Full-screen bubbletea front end.
//
// Screens:
//   - menu:        Start / Leaderboard / Exit, tab toggles the difficulty.
//   - name:        player name entry.
//   - game:        guess grid, input line, error line, on-screen keyboard.
//   - result:      win/loss summary and the leaderboard outcome.
//   - leaderboard: top 10 per mode, left/right switches mode.
//
// All game state lives in the model's *game.Session.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/dependencies/clock"
	"github.com/robalobadob/wordle/internal/dependencies/random"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/leaderboard"
	"github.com/robalobadob/wordle/internal/ui"
	"github.com/robalobadob/wordle/internal/words"
)

type screen int

const (
	screenMenu screen = iota
	screenName
	screenGame
	screenResult
	screenLeaderboard
)

var menuItems = []string{"Start", "Leaderboard", "Exit"}

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Deps are the collaborators the TUI needs.
type Deps struct {
	Lists        *words.Lists
	Store        *leaderboard.Store
	Clock        clock.Clock
	Random       random.Random
	RequireValid bool
	Mode         game.Mode // initial difficulty
}

// tickMsg refreshes the timer of the game with the given session ID.
type tickMsg struct{ session string }

// result is what the result screen shows.
type result struct {
	won     bool
	target  string
	guesses int
	elapsed float64
	message string
	warning bool
}

// Model is the bubbletea model.
type Model struct {
	ctx  context.Context
	deps Deps

	screen screen
	cursor int
	mode   game.Mode

	input  textinput.Model
	name   string
	sess   *game.Session
	now    time.Time
	errMsg string
	result result

	lbMode  game.Mode
	entries []leaderboard.Entry
}

// New returns the model on the menu screen.
func New(ctx context.Context, deps Deps) Model {
	ti := textinput.New()
	ti.CharLimit = 20
	ti.Width = 20
	return Model{
		ctx:   ctx,
		deps:  deps,
		mode:  deps.Mode.Effective(),
		input: ti,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenName:
			return m.updateName(msg)
		case screenGame:
			return m.updateGame(msg)
		case screenResult:
			return m.updateResult(msg)
		case screenLeaderboard:
			return m.updateLeaderboard(msg)
		}
	case tickMsg:
		// Ticks from an abandoned game end their chain here.
		if m.screen == screenGame && m.sess != nil && msg.session == m.sess.ID {
			m.now = m.deps.Clock.Now()
			return m, tick(msg.session)
		}
	}
	return m, nil
}

func tick(session string) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{session: session} })
}

// ------------------------------- menu ---------------------------------------

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.cursor = (m.cursor + len(menuItems) - 1) % len(menuItems)
	case "down", "j":
		m.cursor = (m.cursor + 1) % len(menuItems)
	case "tab", "d":
		m.mode = toggle(m.mode)
	case "enter":
		switch menuItems[m.cursor] {
		case "Start":
			m.screen = screenName
			m.input.Reset()
			m.input.CharLimit = 20
			m.input.Placeholder = leaderboard.AnonymousName
			m.input.SetValue(m.name)
			cmd := m.input.Focus()
			return m, cmd
		case "Leaderboard":
			return m.openLeaderboard(m.mode), nil
		case "Exit":
			return m, tea.Quit
		}
	}
	return m, nil
}

// ------------------------------- name ---------------------------------------

func (m Model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.Blur()
		m.screen = screenMenu
		return m, nil
	case tea.KeyEnter:
		m.name = leaderboard.NormalizeName(m.input.Value())
		return m.startGame()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) startGame() (tea.Model, tea.Cmd) {
	target, err := words.PickTarget(m.deps.Random, m.deps.Lists.Targets(m.mode))
	if err != nil {
		m.errMsg = err.Error()
		m.screen = screenMenu
		return m, nil
	}
	var dict game.Dictionary
	if m.deps.RequireValid {
		dict = m.deps.Lists
	}
	m.now = m.deps.Clock.Now()
	sess, err := game.NewSession(target, m.mode, game.Options{Dictionary: dict, StartedAt: m.now})
	if err != nil {
		m.errMsg = err.Error()
		m.screen = screenMenu
		return m, nil
	}
	m.sess = sess
	m.errMsg = ""
	m.screen = screenGame
	m.input.Reset()
	m.input.CharLimit = game.WordLength
	m.input.Placeholder = "guess"
	log.Info().Str("session", sess.ID).Str("mode", string(sess.Mode)).Msg("game started")
	focus := m.input.Focus()
	return m, tea.Batch(focus, tick(sess.ID))
}

// ------------------------------- game ---------------------------------------

func (m Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		log.Debug().Str("session", m.sess.ID).Int("guesses", len(m.sess.Guesses)).Msg("game abandoned")
		m.input.Blur()
		m.sess = nil
		m.screen = screenMenu
		return m, nil
	case tea.KeyEnter:
		return m.submitGuess()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitGuess() (tea.Model, tea.Cmd) {
	_, state, err := m.sess.ApplyGuess(m.input.Value())
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		m.errMsg = "Please enter exactly 5 letters."
		return m, nil
	case errors.Is(err, game.ErrNotInWordList):
		m.errMsg = "Word not in list."
		return m, nil
	case err != nil:
		m.errMsg = err.Error()
		return m, nil
	}
	m.errMsg = ""
	m.input.Reset()
	if state == game.StatePlaying {
		return m, nil
	}
	return m.finish(), nil
}

func (m Model) finish() Model {
	m.input.Blur()
	m.now = m.deps.Clock.Now()
	r := result{
		won:     m.sess.Won,
		target:  m.sess.Target,
		guesses: len(m.sess.Guesses),
	}
	logger := log.With().Str("session", m.sess.ID).Logger()
	if !r.won {
		logger.Info().Int("guesses", r.guesses).Msg("game lost")
	} else {
		r.elapsed = m.sess.Elapsed(m.now)
		logger.Info().Int("guesses", r.guesses).Float64("time", r.elapsed).Msg("game won")
		_, res, warn := m.deps.Store.UpsertBest(m.ctx, m.name, m.sess.Mode, r.elapsed, m.now)
		r.message = ui.OutcomeMessage(m.name, m.sess.Mode, r.elapsed, res)
		if warn != nil {
			r.warning = true
			logger.Warn().Err(warn).Msg("leaderboard record not saved")
		}
	}
	m.result = r
	m.screen = screenResult
	return m
}

// ------------------------------ result --------------------------------------

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		return m.openLeaderboard(m.sess.Mode), nil
	case "enter", "esc":
		m.screen = screenMenu
	}
	return m, nil
}

// ---------------------------- leaderboard -----------------------------------

func (m Model) openLeaderboard(mode game.Mode) Model {
	m.lbMode = mode.Effective()
	m.entries = m.deps.Store.TopN(m.ctx, m.lbMode, 10)
	m.screen = screenLeaderboard
	return m
}

func (m Model) updateLeaderboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "right", "tab", "h", "l":
		return m.openLeaderboard(toggle(m.lbMode)), nil
	case "enter", "esc", "b":
		m.screen = screenMenu
	}
	return m, nil
}

func toggle(mode game.Mode) game.Mode {
	if mode.Effective() == game.ModeEasy {
		return game.ModeMedium
	}
	return game.ModeEasy
}

// ------------------------------- views --------------------------------------

func (m Model) View() string {
	switch m.screen {
	case screenName:
		return m.viewName()
	case screenGame:
		return m.viewGame()
	case screenResult:
		return m.viewResult()
	case screenLeaderboard:
		return m.viewLeaderboard()
	}
	return m.viewMenu()
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(ui.StyleTitle.Render("WORDLE") + "\n\n")
	for i, item := range menuItems {
		if i == m.cursor {
			b.WriteString(ui.StyleCursor.Render("> "+item) + "\n")
		} else {
			b.WriteString("  " + item + "\n")
		}
	}
	fmt.Fprintf(&b, "\nDifficulty: %s (%d attempts)\n", m.mode, m.mode.MaxAttempts())
	if m.errMsg != "" {
		b.WriteString(ui.StyleError.Render(m.errMsg) + "\n")
	}
	b.WriteString(ui.StyleSubtle.Render("↑/↓ move • enter select • tab difficulty • q quit"))
	return b.String()
}

func (m Model) viewName() string {
	return ui.StyleTitle.Render("Enter your name:") + "\n\n" +
		m.input.View() + "\n\n" +
		ui.StyleSubtle.Render("enter join • esc back")
}

func (m Model) viewGame() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Player: %s | Mode: %s | Attempt %d/%d | Time: %.1fs\n\n",
		m.name, m.sess.Mode, m.sess.Attempt(), m.sess.MaxAttempts, m.sess.Elapsed(m.now))

	for i := 0; i < m.sess.MaxAttempts; i++ {
		if i < len(m.sess.Guesses) {
			g := m.sess.Guesses[i]
			b.WriteString(ui.Row(g.Word, g.Feedback))
		} else {
			b.WriteString(emptyRow())
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.input.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(ui.StyleError.Render(m.errMsg))
	}
	b.WriteString("\n\n" + m.viewKeyboard() + "\n\n")
	b.WriteString(ui.StyleSubtle.Render("enter guess • esc menu"))
	return b.String()
}

func emptyRow() string {
	return ui.StyleEmpty.Render(strings.Repeat(" _ ", game.WordLength))
}

func (m Model) viewKeyboard() string {
	rows := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		var b strings.Builder
		for j := 0; j < len(row); j++ {
			b.WriteString(ui.Tile(row[j], m.sess.Keyboard.Status(row[j])))
		}
		rows[i] = b.String()
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m Model) viewResult() string {
	var b strings.Builder
	if m.result.won {
		b.WriteString(ui.StyleTitle.Render("Correct! You found the word.") + "\n\n")
		fmt.Fprintf(&b, "Your time: %.2f seconds\n", m.result.elapsed)
		b.WriteString(m.result.message + "\n")
		if m.result.warning {
			b.WriteString(ui.StyleError.Render("Warning: could not save leaderboard record.") + "\n")
		}
	} else {
		b.WriteString(ui.StyleTitle.Render("Out of tries.") + "\n\n")
		fmt.Fprintf(&b, "The word was: %s\n", strings.ToUpper(m.result.target))
	}
	b.WriteString("\n" + ui.StyleSubtle.Render("enter menu • l leaderboard • q quit"))
	return b.String()
}

func (m Model) viewLeaderboard() string {
	var b strings.Builder
	b.WriteString(ui.StyleTitle.Render(fmt.Sprintf("Leaderboard - %s", m.lbMode)) + "\n\n")
	if len(m.entries) == 0 {
		fmt.Fprintf(&b, "No records for %s mode yet.\n", m.lbMode)
	} else {
		b.WriteString(ui.TableHeader() + "\n")
		for i, e := range m.entries {
			b.WriteString(ui.TableRow(i+1, e) + "\n")
		}
	}
	b.WriteString("\n" + ui.StyleSubtle.Render("←/→ switch mode • enter back • q quit"))
	return b.String()
}
