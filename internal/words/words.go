// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load the per-mode target lists and the allowed guess list from files,
//     falling back to the embedded defaults in package assets.
//   - Maintain a set for quick guess lookups (targets ∪ allowed).
//   - Supply Targets, IsAllowed and Stats.
//
// Word Lists:
//   - "easy" / "medium": target words for each difficulty mode.
//   - "allowed": valid guesses (always includes every target).
//
// Environment variables (any unset list uses the embedded default):
//   WORDLE_WORDS_EASY=/path/to/easy.txt
//   WORDLE_WORDS_MEDIUM=/path/to/medium.txt
//   WORDLE_WORDS_ALLOWED=/path/to/allowed.txt
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); other lines are dropped.
//   • Lists are normalized to lowercase.
//   • A missing or empty list is a configuration error.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/assets"
	"github.com/robalobadob/wordle/internal/game"
)

var (
	ErrWordListMissing = errors.New("words file not found")
	ErrEmptyWordList   = errors.New("no valid 5-letter words found")
)

// Config names the word list files. Empty paths use the embedded defaults.
type Config struct {
	EasyPath    string
	MediumPath  string
	AllowedPath string
}

// ConfigFromEnv reads the WORDLE_WORDS_* variables.
func ConfigFromEnv() Config {
	return Config{
		EasyPath:    os.Getenv("WORDLE_WORDS_EASY"),
		MediumPath:  os.Getenv("WORDLE_WORDS_MEDIUM"),
		AllowedPath: os.Getenv("WORDLE_WORDS_ALLOWED"),
	}
}

// Lists holds the loaded target lists and the allowed guess set.
type Lists struct {
	Easy   []string
	Medium []string

	allowed map[string]struct{} // targets ∪ allowed
}

// Stats are the sizes of the loaded lists.
type Stats struct {
	Easy    int `json:"easy"`
	Medium  int `json:"medium"`
	Allowed int `json:"allowed"`
}

// Load reads all three lists according to cfg.
func Load(cfg Config) (*Lists, error) {
	easy, err := loadList(cfg.EasyPath, assets.EasyWords)
	if err != nil {
		return nil, err
	}
	medium, err := loadList(cfg.MediumPath, assets.MediumWords)
	if err != nil {
		return nil, err
	}
	allowed, err := loadList(cfg.AllowedPath, assets.AllowedWords)
	if err != nil {
		return nil, err
	}
	l, err := New(easy, medium, allowed)
	if err != nil {
		return nil, err
	}
	st := l.Stats()
	log.Debug().Int("easy", st.Easy).Int("medium", st.Medium).Int("allowed", st.Allowed).Msg("word lists loaded")
	return l, nil
}

// New builds Lists from already-normalized words. Both target lists must be
// non-empty; every target is added to the allowed set so any game is winnable.
func New(easy, medium, allowed []string) (*Lists, error) {
	if len(easy) == 0 {
		return nil, fmt.Errorf("easy list: %w", ErrEmptyWordList)
	}
	if len(medium) == 0 {
		return nil, fmt.Errorf("medium list: %w", ErrEmptyWordList)
	}
	set := make(map[string]struct{}, len(allowed)+len(easy)+len(medium))
	for _, list := range [][]string{allowed, easy, medium} {
		for _, w := range list {
			set[w] = struct{}{}
		}
	}
	return &Lists{Easy: easy, Medium: medium, allowed: set}, nil
}

// Targets returns the target list for mode.
func (l *Lists) Targets(mode game.Mode) []string {
	if mode.Effective() == game.ModeMedium {
		return l.Medium
	}
	return l.Easy
}

// IsAllowed reports whether w is a valid guess.
func (l *Lists) IsAllowed(w string) bool {
	_, ok := l.allowed[strings.ToLower(w)]
	return ok
}

// Stats returns the list sizes.
func (l *Lists) Stats() Stats {
	return Stats{Easy: len(l.Easy), Medium: len(l.Medium), Allowed: len(l.allowed)}
}

// ReadFile loads one word per line from path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrWordListMissing, path)
		}
		return nil, err
	}
	defer f.Close()
	out, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmptyWordList, path)
	}
	return out, nil
}

// Parse lowercases and trims each line and keeps only 5-letter alphabetic words.
// Lines of any length are read; overlong ones are simply dropped.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		w := strings.ToLower(strings.TrimSpace(line))
		if len(w) == game.WordLength && isAlpha(w) {
			out = append(out, w)
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}

// loadList reads path, or the embedded list when path is empty.
func loadList(path, embedded string) ([]string, error) {
	if path != "" {
		return ReadFile(path)
	}
	f, err := assets.Words.Open(embedded)
	if err != nil {
		return nil, fmt.Errorf("%w: embedded %s", ErrWordListMissing, embedded)
	}
	defer f.Close()
	out, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w in embedded %s", ErrEmptyWordList, embedded)
	}
	return out, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
