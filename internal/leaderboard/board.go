package leaderboard

import (
	"sort"
	"time"

	"github.com/robalobadob/wordle/internal/game"
)

// Outcome says what an upsert did to the player's record.
type Outcome int

const (
	OutcomeNewRecord    Outcome = iota // no previous record for (name, mode)
	OutcomePersonalBest                // strictly faster than the previous record
	OutcomeNotImproved                 // equal or slower; record unchanged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNewRecord:
		return "new_record"
	case OutcomePersonalBest:
		return "personal_best"
	default:
		return "not_improved"
	}
}

// Result describes an upsert.
type Result struct {
	Outcome  Outcome
	Previous float64 // previous best; zero for OutcomeNewRecord
	Entry    Entry   // the stored record for (name, mode) afterwards
}

// Upsert records secs for (name, mode) and returns the updated leaderboard.
// An absent record is appended; an existing one is replaced only when secs is
// strictly less than its time. Every other element, unparsed ones included,
// is carried over as it was read. lb itself is not modified.
func Upsert(lb Leaderboard, name string, mode game.Mode, secs float64, ts time.Time) (Leaderboard, Result) {
	mode = mode.Effective()
	if secs < 0 {
		secs = 0
	}
	fresh := Entry{
		Name: name,
		Time: secs,
		Date: ts.UTC().Truncate(time.Microsecond),
		Mode: mode,
	}

	out := make(Leaderboard, len(lb), len(lb)+1)
	copy(out, lb)

	i := indexOf(out, name, mode)
	if i < 0 {
		return append(out, fresh), Result{Outcome: OutcomeNewRecord, Entry: fresh}
	}
	prev := out[i]
	if secs < prev.Time {
		out[i] = fresh
		return out, Result{Outcome: OutcomePersonalBest, Previous: prev.Time, Entry: fresh}
	}
	return out, Result{Outcome: OutcomeNotImproved, Previous: prev.Time, Entry: prev}
}

// Best returns the record for (name, mode).
func Best(lb Leaderboard, name string, mode game.Mode) (Entry, bool) {
	if i := indexOf(lb, name, mode.Effective()); i >= 0 {
		return lb[i], true
	}
	return Entry{}, false
}

// TopN returns at most n records for mode, fastest first. Equal times keep
// their storage order. Records without a mode are listed under Easy.
func TopN(lb Leaderboard, mode game.Mode, n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	mode = mode.Effective()
	out := make([]Entry, 0, len(lb))
	for _, e := range lb.Records() {
		if e.EffectiveMode() == mode {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func indexOf(lb Leaderboard, name string, mode game.Mode) int {
	for i, e := range lb {
		if !e.unparsed && e.Name == name && e.EffectiveMode() == mode {
			return i
		}
	}
	return -1
}
