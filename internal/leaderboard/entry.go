package leaderboard

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/robalobadob/wordle/internal/game"
)

// DateLayout is how dates are written: ISO-8601 UTC, microseconds, trailing Z.
const DateLayout = "2006-01-02T15:04:05.000000Z"

// AnonymousName is recorded for players who leave the name blank.
const AnonymousName = "Anonymous"

// Entry is one player's best time for one mode.
type Entry struct {
	Name string
	Time float64 // seconds
	Date time.Time
	Mode game.Mode // empty on legacy records; read as Easy

	// raw is the element as it was read. Backends write it back unchanged so
	// unknown keys and missing fields survive a rewrite. Upsert drops it on
	// the entries it creates.
	raw []byte
	// unparsed marks an element that is not a usable record. It keeps its
	// place in storage order but is never listed or matched.
	unparsed bool
}

// Leaderboard is the full persisted set in storage order, including elements
// that could not be read as records. Records lists the usable ones.
type Leaderboard []Entry

// EffectiveMode is the mode used for matching and filtering.
func (e Entry) EffectiveMode() game.Mode {
	return e.Mode.Effective()
}

type entryJSON struct {
	Name string    `json:"name"`
	Time float64   `json:"time"`
	Date string    `json:"date,omitempty"`
	Mode game.Mode `json:"mode,omitempty"`
}

// MarshalJSON writes {name, time, date, mode}; mode is omitted for legacy
// records so they are not migrated by a rewrite, and date is omitted when
// the record has none.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		Name: e.Name,
		Time: e.Time,
		Date: formatDate(e.Date),
		Mode: e.Mode,
	})
}

// encode is the stored form of e: the element as read when there is one,
// otherwise the canonical encoding.
func (e Entry) encode() ([]byte, error) {
	if e.raw != nil {
		return e.raw, nil
	}
	return e.MarshalJSON()
}

// Records returns the usable records in storage order.
func (lb Leaderboard) Records() Leaderboard {
	out := make(Leaderboard, 0, len(lb))
	for _, e := range lb {
		if !e.unparsed {
			out = append(out, e)
		}
	}
	return out
}

// NormalizeName trims the name and substitutes AnonymousName for a blank one.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return AnonymousName
	}
	return name
}

// parseEntry reads one record leniently: it needs a string name and a numeric
// time; a missing or unparsable date reads as the zero time. Anything else is
// kept as an unparsed element.
func parseEntry(v gjson.Result) Entry {
	raw := []byte(v.Raw)
	if !v.IsObject() {
		return Entry{raw: raw, unparsed: true}
	}
	name := v.Get("name")
	secs := v.Get("time")
	if name.Type != gjson.String || secs.Type != gjson.Number {
		return Entry{raw: raw, unparsed: true}
	}
	e := Entry{
		Name: name.String(),
		Time: secs.Float(),
		Date: parseDate(v.Get("date").String()),
		raw:  raw,
	}
	if m := v.Get("mode"); m.Type == gjson.String {
		e.Mode = game.Mode(m.String())
	}
	return e
}

// unparsedEntry keeps an element that is not even valid JSON.
func unparsedEntry(s string) Entry {
	return Entry{raw: []byte(s), unparsed: true}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

func parseDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
