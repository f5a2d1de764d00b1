// Package ui holds the lipgloss styles and text layouts shared by the console
// and TUI front ends.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/leaderboard"
)

var (
	StyleExact   = lipgloss.NewStyle().Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0")).Bold(true)
	StylePresent = lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0")).Bold(true)
	StyleAbsent  = lipgloss.NewStyle().Background(lipgloss.Color("8")).Foreground(lipgloss.Color("7"))
	StyleEmpty   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	StyleSubtle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	StyleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	StyleTitle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	StyleCursor  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

// MarkStyle returns the tile style for m; unknown marks get StyleEmpty.
func MarkStyle(m game.Mark) lipgloss.Style {
	switch m {
	case game.MarkExact:
		return StyleExact
	case game.MarkPresent:
		return StylePresent
	case game.MarkAbsent:
		return StyleAbsent
	}
	return StyleEmpty
}

// Tile renders one upper-case letter coloured by its mark.
func Tile(c byte, m game.Mark) string {
	return MarkStyle(m).Render(" " + strings.ToUpper(string(c)) + " ")
}

// Row renders a scored guess as five tiles.
func Row(word string, fb game.Feedback) string {
	var b strings.Builder
	for i := 0; i < game.WordLength && i < len(word); i++ {
		b.WriteString(Tile(word[i], fb[i]))
	}
	return b.String()
}

// FeedbackLine is Row followed by the g/y/b mask, so the result stays
// readable when colour is unavailable.
func FeedbackLine(word string, fb game.Feedback) string {
	return Row(word, fb) + "  " + StyleSubtle.Render(fb.Mask())
}

// OutcomeMessage is the line shown after a win is recorded.
func OutcomeMessage(name string, mode game.Mode, secs float64, res leaderboard.Result) string {
	mode = mode.Effective()
	switch res.Outcome {
	case leaderboard.OutcomeNewRecord:
		return fmt.Sprintf("🎉 New %s record! Saved %s - %.2fs", mode, name, secs)
	case leaderboard.OutcomePersonalBest:
		return fmt.Sprintf("🎉 New %s personal best! %s - %.2fs (was %.2fs)", mode, name, secs, res.Previous)
	default:
		return fmt.Sprintf("Good game! Your %s best is still %.2fs", mode, res.Previous)
	}
}

// WriteTop prints a ranked table of entries under a mode banner.
func WriteTop(w io.Writer, mode game.Mode, entries []leaderboard.Entry) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "TOP 10 FASTEST TIMES - %s MODE\n", strings.ToUpper(string(mode.Effective())))
	fmt.Fprintln(w, rule)
	if len(entries) == 0 {
		fmt.Fprintf(w, "No records for %s mode yet.\n", mode.Effective())
	}
	for i, e := range entries {
		fmt.Fprintf(w, "%2d. %-20s - %7.2fs  (%s)\n", i+1, e.Name, e.Time, FormatDate(e))
	}
	fmt.Fprintf(w, "%s\n\n", rule)
}

// TableHeader and TableRow lay out the compact Rank/Name/Time(s)/Date table.
func TableHeader() string {
	return fmt.Sprintf("%-5s%-16s%-10s%s", "Rank", "Name", "Time(s)", "Date")
}

func TableRow(rank int, e leaderboard.Entry) string {
	date := "unknown"
	if !e.Date.IsZero() {
		date = e.Date.UTC().Format("2006-01-02")
	}
	return fmt.Sprintf("%-5d%-16s%-10.2f%s", rank, truncate(e.Name, 15), e.Time, date)
}

// FormatDate is the stored date, or "unknown" for records without one.
func FormatDate(e leaderboard.Entry) string {
	if e.Date.IsZero() {
		return "unknown"
	}
	return e.Date.UTC().Format(leaderboard.DateLayout)
}

func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}
