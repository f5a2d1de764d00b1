// internal/console/console.go
//
// Line-oriented front end: one game per Play call over an io.Reader and an
// io.Writer, so it runs the same against a terminal or a test buffer.
//
// Flow:
//   - Difficulty prompt (unless a mode was given), target pick, top 10 table.
//   - Name prompt (unless given); blank names play as "Anonymous".
//   - Guess loop with re-prompts for malformed or unknown words.
//   - On a win the time is recorded through the leaderboard Store.
//
// End of input at any prompt ends the game quietly.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/dependencies/clock"
	"github.com/robalobadob/wordle/internal/dependencies/random"
	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/leaderboard"
	"github.com/robalobadob/wordle/internal/ui"
	"github.com/robalobadob/wordle/internal/words"
)

// Options configure one game.
type Options struct {
	Mode         game.Mode // empty: ask
	Name         string    // empty: ask
	Daily        bool      // play the word of the day; not recorded
	DailySalt    string
	RequireValid bool // reject guesses outside the allowed list
}

// Report summarises a finished (or abandoned) game.
type Report struct {
	Session string // game.Session ID; tags the game's log lines
	Mode    game.Mode
	Name    string
	Target  string
	Guesses int
	Won     bool
	Quit    bool    // input ended before the game did
	Elapsed float64 // seconds, set on a win
	Result  *leaderboard.Result
	Warning error // *leaderboard.PersistenceWarning when the save failed
}

// Console plays games over a reader/writer pair.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	lists *words.Lists
	store *leaderboard.Store
	clock clock.Clock
	rng   random.Random
}

// New wires a Console.
func New(in io.Reader, out io.Writer, lists *words.Lists, store *leaderboard.Store, clk clock.Clock, rng random.Random) *Console {
	return &Console{
		in:    bufio.NewScanner(in),
		out:   out,
		lists: lists,
		store: store,
		clock: clk,
		rng:   rng,
	}
}

// Play runs one game to completion. Errors are configuration problems
// (for example an empty target list); input ending early is not an error.
func (c *Console) Play(ctx context.Context, opts Options) (*Report, error) {
	rep := &Report{}
	err := c.play(ctx, opts, rep)
	if errors.Is(err, io.EOF) {
		rep.Quit = true
		fmt.Fprintln(c.out)
		log.Debug().Msg("input closed; leaving game")
		return rep, nil
	}
	return rep, err
}

func (c *Console) play(ctx context.Context, opts Options, rep *Report) error {
	mode := opts.Mode
	if mode == "" {
		var err error
		if mode, err = c.askMode(); err != nil {
			return err
		}
	}
	rep.Mode = mode.Effective()

	target, err := c.pickTarget(rep.Mode, opts)
	if err != nil {
		return err
	}
	rep.Target = target

	ui.WriteTop(c.out, rep.Mode, c.store.TopN(ctx, rep.Mode, 10))

	name := opts.Name
	if strings.TrimSpace(name) == "" {
		if name, err = c.readLine("Enter your name (used for the leaderboard): "); err != nil {
			return err
		}
	}
	rep.Name = leaderboard.NormalizeName(name)

	var dict game.Dictionary
	if opts.RequireValid {
		dict = c.lists
	}
	sess, err := game.NewSession(target, rep.Mode, game.Options{Dictionary: dict, StartedAt: c.clock.Now()})
	if err != nil {
		return err
	}
	rep.Session = sess.ID
	logger := log.With().Str("session", sess.ID).Logger()
	logger.Info().Str("mode", string(sess.Mode)).Bool("daily", opts.Daily).Msg("game started")
	if opts.Daily {
		fmt.Fprintf(c.out, "Daily word for %s.\n", daily.DateKey(sess.StartedAt))
	}
	fmt.Fprintf(c.out, "Guess the 5-letter word. You have %d tries (%s Mode).\n", sess.MaxAttempts, sess.Mode)

	for sess.State() == game.StatePlaying {
		line, err := c.readLine(fmt.Sprintf("[%d/%d] Enter guess: ", sess.Attempt(), sess.MaxAttempts))
		if err != nil {
			logger.Debug().Int("guesses", len(sess.Guesses)).Msg("game abandoned")
			return err
		}
		fb, _, err := sess.ApplyGuess(line)
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			fmt.Fprintln(c.out, "Please enter exactly 5 letters.")
			continue
		case errors.Is(err, game.ErrNotInWordList):
			fmt.Fprintln(c.out, "Word not in list.")
			continue
		case err != nil:
			return err
		}
		rep.Guesses = len(sess.Guesses)
		fmt.Fprintln(c.out, ui.FeedbackLine(sess.Guesses[len(sess.Guesses)-1].Word, fb))
	}

	if !sess.Won {
		logger.Info().Int("guesses", rep.Guesses).Msg("game lost")
		fmt.Fprintf(c.out, "Out of tries. The word was: %s\n", strings.ToUpper(target))
		return nil
	}

	rep.Won = true
	now := c.clock.Now()
	rep.Elapsed = sess.Elapsed(now)
	logger.Info().Int("guesses", rep.Guesses).Float64("time", rep.Elapsed).Msg("game won")
	tries := "tries"
	if rep.Guesses == 1 {
		tries = "try"
	}
	fmt.Fprintf(c.out, "Correct! You found the word in %d %s.\n", rep.Guesses, tries)
	fmt.Fprintf(c.out, "Your time: %.2f seconds\n", rep.Elapsed)

	if opts.Daily {
		fmt.Fprintln(c.out, "Daily games are not recorded on the leaderboard.")
		return nil
	}
	_, res, warn := c.store.UpsertBest(ctx, rep.Name, rep.Mode, rep.Elapsed, now)
	rep.Result = &res
	fmt.Fprintln(c.out, ui.OutcomeMessage(rep.Name, rep.Mode, rep.Elapsed, res))
	if warn != nil {
		rep.Warning = warn
		logger.Warn().Err(warn).Msg("leaderboard record not saved")
		fmt.Fprintln(c.out, "Warning: could not save leaderboard record.")
	}
	return nil
}

func (c *Console) askMode() (game.Mode, error) {
	for {
		fmt.Fprintln(c.out, "\nSelect Difficulty:")
		fmt.Fprintf(c.out, "1. Easy (%d attempts)\n", game.ModeEasy.MaxAttempts())
		fmt.Fprintf(c.out, "2. Medium (%d attempts)\n", game.ModeMedium.MaxAttempts())
		choice, err := c.readLine("Enter 1 or 2: ")
		if err != nil {
			return "", err
		}
		switch strings.TrimSpace(choice) {
		case "1":
			return game.ModeEasy, nil
		case "2":
			return game.ModeMedium, nil
		}
		fmt.Fprintln(c.out, "Invalid choice. Please enter 1 or 2.")
	}
}

func (c *Console) pickTarget(mode game.Mode, opts Options) (string, error) {
	list := c.lists.Targets(mode)
	if opts.Daily {
		salt := opts.DailySalt
		if salt == "" {
			salt = daily.DefaultSalt
		}
		w, ok := daily.Word(list, c.clock.Now(), salt)
		if !ok {
			return "", fmt.Errorf("daily word: %w", words.ErrEmptyWordList)
		}
		return w, nil
	}
	return words.PickTarget(c.rng, list)
}

// readLine prompts and returns the next line, or io.EOF when input ends.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}
