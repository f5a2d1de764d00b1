// Package daily derives a deterministic word of the day, so everyone who
// plays the daily game on the same UTC date gets the same target.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DefaultSalt is used when WORDLE_DAILY_SALT is unset.
const DefaultSalt = "local_dev_salt"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Index maps a date to a position in a list of n words using
// HMAC-SHA256(salt, YYYY-MM-DD) mod n.
func Index(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// Word returns the word of the day from list, or false if list is empty.
func Word(list []string, date time.Time, salt string) (string, bool) {
	if len(list) == 0 {
		return "", false
	}
	return list[Index(date, salt, len(list))], true
}
