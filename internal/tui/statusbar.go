package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type statusInfo struct {
	shown     int
	total     int
	query     string
	loading   bool
	failed    bool
	searching bool
}

func renderStatusBar(s statusInfo, width int) string {
	var left string
	switch {
	case s.loading:
		left = " loading headlines..."
	case s.failed:
		left = " " + warnStyle.Render("could not reach NewsAPI")
	case s.query != "":
		left = fmt.Sprintf(" %d of %d articles · %q", s.shown, s.total, s.query)
	default:
		left = fmt.Sprintf(" %d articles", s.total)
	}

	right := " / search  ←↓↑→ move  o open  ? help  q quit "
	if s.searching {
		right = " esc/enter done "
	}

	// The style's horizontal padding takes two columns.
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.MaxWidth(width).Render(bar)
}
