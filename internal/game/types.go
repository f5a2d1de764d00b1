// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter result of a guess (exact/present/absent).
//   - Feedback: the five marks produced for one guess.
//   - Mode: difficulty, which fixes the attempt budget and target list.

package game

import (
	"slices"
	"strings"
)

// WordLength is the number of letters in every target and guess.
const WordLength = 5

// Mark represents the evaluation result for a single letter in a guess.
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter occurs elsewhere in the target and was not already accounted for.
//   - "absent":  letter does not occur, or all its occurrences are accounted for.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Feedback is the ordered list of marks for one guess, one per position.
type Feedback [WordLength]Mark

// Solved reports whether every position is exact.
func (f Feedback) Solved() bool {
	return f.Count(MarkExact) == WordLength
}

// Count returns how many positions carry mark m.
func (f Feedback) Count(m Mark) int {
	n := 0
	for _, x := range f {
		if x == m {
			n++
		}
	}
	return n
}

// Mask renders the feedback as g/y/b letters (green, yellow, black), e.g. "bggyg".
func (f Feedback) Mask() string {
	var b strings.Builder
	for _, m := range f {
		switch m {
		case MarkExact:
			b.WriteByte('g')
		case MarkPresent:
			b.WriteByte('y')
		default:
			b.WriteByte('b')
		}
	}
	return b.String()
}

func (f Feedback) String() string { return f.Mask() }

// ParseMask is the inverse of Mask. It returns false for anything that is not
// exactly five g/y/b characters.
func ParseMask(s string) (Feedback, bool) {
	var f Feedback
	if len(s) != WordLength {
		return f, false
	}
	for i := 0; i < WordLength; i++ {
		switch s[i] {
		case 'g':
			f[i] = MarkExact
		case 'y':
			f[i] = MarkPresent
		case 'b':
			f[i] = MarkAbsent
		default:
			return f, false
		}
	}
	return f, true
}

// Mode is the difficulty a game is played at. Leaderboard records are
// partitioned by mode; a record without a mode counts as Easy.
type Mode string

const (
	ModeEasy   Mode = "Easy"
	ModeMedium Mode = "Medium"
)

// Modes lists the playable modes in menu order.
var Modes = []Mode{ModeEasy, ModeMedium}

// ParseMode accepts a mode name in any case, or its menu number.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "1", "easy":
		return ModeEasy, nil
	case "2", "medium":
		return ModeMedium, nil
	}
	return "", ErrInvalidMode
}

// Effective maps the empty mode of legacy records to Easy.
func (m Mode) Effective() Mode {
	if m == "" {
		return ModeEasy
	}
	return m
}

// MaxAttempts is the number of guesses the mode allows.
func (m Mode) MaxAttempts() int {
	if m.Effective() == ModeMedium {
		return 4
	}
	return 6
}

// Valid reports whether m is one of Modes (the empty legacy mode counts as Easy).
func (m Mode) Valid() bool {
	return slices.Contains(Modes, m.Effective())
}
