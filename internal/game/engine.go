// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Score guesses using the classic two-pass algorithm (Evaluate).
//   - Create sessions for a target word and difficulty mode.
//   - Validate and apply guesses (length, alphabetic, optional allowed list).
//   - Track state transitions: playing → won/lost, plus the keyboard letter status.
//
// The session is a plain value owned by the front end; nothing here is global.
package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// State is the coarse progress of a session.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Dictionary answers whether a word may be guessed.
type Dictionary interface {
	IsAllowed(word string) bool
}

// Options tune a new session. Zero values mean: attempts from the mode,
// any well-formed guess accepted, clock started at the zero time.
type Options struct {
	MaxAttempts int
	Dictionary  Dictionary
	StartedAt   time.Time
}

// Guess is one applied guess and its feedback.
type Guess struct {
	Word     string   `json:"word"`
	Feedback Feedback `json:"feedback"`
}

// Session holds the state of a single game.
type Session struct {
	ID          string    // Unique session identifier (uuid).
	Target      string    // The solution word (always lowercase).
	Mode        Mode      // Difficulty the session is played at.
	MaxAttempts int       // Guesses allowed before the session is lost.
	Guesses     []Guess   // Guesses applied so far.
	Keyboard    Keyboard  // Best mark seen per letter.
	StartedAt   time.Time // When the clock started.
	Finished    bool      // True once the session is over (won or lost).
	Won         bool      // True if the session finished with a win.

	dict Dictionary
}

// NewSession starts a session for target at the given mode.
func NewSession(target string, mode Mode, opts Options) (*Session, error) {
	target = strings.ToLower(strings.TrimSpace(target))
	if !isWord(target) {
		return nil, ErrInvalidWord
	}
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	attempts := opts.MaxAttempts
	if attempts <= 0 {
		attempts = mode.MaxAttempts()
	}
	return &Session{
		ID:          uuid.NewString(),
		Target:      target,
		Mode:        mode.Effective(),
		MaxAttempts: attempts,
		Guesses:     []Guess{},
		Keyboard:    Keyboard{},
		StartedAt:   opts.StartedAt,
		dict:        opts.Dictionary,
	}, nil
}

// ApplyGuess validates and scores a guess, mutating the session.
// Returns: the feedback, the new state, or an error.
//
// Validation rules:
//   - Session must not be finished.
//   - Guess must be exactly five letters a–z (after trimming and lower-casing).
//   - If the session has a Dictionary, the guess must be allowed by it.
//
// State transitions:
//   - All positions exact → Finished = true, Won = true.
//   - Else if the number of guesses reaches MaxAttempts → Finished = true (loss).
func (s *Session) ApplyGuess(raw string) (Feedback, State, error) {
	if s.Finished {
		return Feedback{}, s.State(), ErrGameFinished
	}
	guess := strings.ToLower(strings.TrimSpace(raw))
	if !isWord(guess) {
		return Feedback{}, s.State(), ErrInvalidGuess
	}
	if s.dict != nil && !s.dict.IsAllowed(guess) {
		return Feedback{}, s.State(), ErrNotInWordList
	}

	fb := score(guess, s.Target)
	s.Guesses = append(s.Guesses, Guess{Word: guess, Feedback: fb})
	s.Keyboard.Record(guess, fb)

	if fb.Solved() {
		s.Finished, s.Won = true, true
	} else if len(s.Guesses) >= s.MaxAttempts {
		s.Finished = true
	}
	return fb, s.State(), nil
}

// State reports the current session state.
func (s *Session) State() State {
	if s.Finished {
		if s.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Attempt is the 1-based number of the next guess, capped at MaxAttempts.
func (s *Session) Attempt() int {
	if n := len(s.Guesses) + 1; n < s.MaxAttempts {
		return n
	}
	return s.MaxAttempts
}

// Elapsed returns the seconds between the session start and now.
func (s *Session) Elapsed(now time.Time) float64 {
	d := now.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// Evaluate scores guess against target. Both must be exactly five lowercase
// letters; anything else yields ErrInvalidWord.
func Evaluate(guess, target string) (Feedback, error) {
	if !isWord(guess) || !isWord(target) {
		return Feedback{}, ErrInvalidWord
	}
	return score(guess, target), nil
}

// score implements the standard two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches.
//   - Count remaining (non-exact) target letters by letter index.
//
// Pass 2:
//   - Left to right over non-exact guess letters: if there is remaining count
//     for that letter, mark Present and decrement the count; otherwise Absent.
//
// Consuming counts left to right is what makes repeated letters come out
// right: surplus copies beyond the remaining count are Absent.
func score(guess, target string) Feedback {
	var res Feedback

	// Letter frequency for the non-exact positions (a–z).
	var counts [26]int

	for i := 0; i < WordLength; i++ {
		if guess[i] == target[i] {
			res[i] = MarkExact
		} else {
			counts[idx(target[i])]++
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] == MarkExact {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(c byte) int { return int(c - 'a') }

// isWord reports whether s is exactly WordLength lowercase ASCII letters.
func isWord(s string) bool {
	if len(s) != WordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
