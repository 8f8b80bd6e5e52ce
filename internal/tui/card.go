package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/headlines/internal/dashboard"
)

const (
	minCardWidth = 36
	maxColumns   = 3

	titleLines = 2
	descLines  = 3
	// title + description + image, author, source, link
	cardContentLines = titleLines + descLines + 4
	// content plus top and bottom border
	cardHeight = cardContentLines + 2
)

// gridColumns mirrors a 1/2/3 column responsive grid.
func gridColumns(width int) int {
	cols := width / minCardWidth
	if cols < 1 {
		return 1
	}
	if cols > maxColumns {
		return maxColumns
	}
	return cols
}

func renderCard(c dashboard.Card, selected bool, width int) string {
	// border (2) + horizontal padding (2)
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	titleStyle := cardTitleStyle
	style := cardStyle
	if selected {
		titleStyle = cardTitleSelectedStyle
		style = cardSelectedStyle
	}

	lines := make([]string, 0, cardContentLines)
	for _, l := range clampLines(c.Title, inner, titleLines) {
		lines = append(lines, titleStyle.Render(l))
	}
	for _, l := range clampLines(c.Description, inner, descLines) {
		lines = append(lines, cardBodyStyle.Render(l))
	}
	lines = append(lines,
		cardMetaStyle.Render(truncateStr("Image: "+c.ImageURL, inner)),
		cardMetaStyle.Render(truncateStr("Author: "+c.Author, inner)),
		cardSourceStyle.Render(truncateStr("Source: "+c.Source, inner)),
		cardLinkStyle.Render(truncateStr("Read more: "+c.URL, inner)),
	)

	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderGrid(cards []dashboard.Card, cursor, width, height int) string {
	cols := gridColumns(width)
	cardW := width / cols

	rows := (len(cards) + cols - 1) / cols
	visibleRows := height / cardHeight
	if visibleRows < 1 {
		visibleRows = 1
	}

	startRow := 0
	if cursorRow := cursor / cols; cursorRow >= visibleRows {
		startRow = cursorRow - visibleRows + 1
	}
	endRow := startRow + visibleRows
	if endRow > rows {
		endRow = rows
	}

	var out []string
	for r := startRow; r < endRow; r++ {
		var cells []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(cards) {
				break
			}
			cells = append(cells, renderCard(cards[i], i == cursor, cardW))
		}
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// clampLines wraps s to width and returns exactly n lines, marking a cut
// with "...".
func clampLines(s string, width, n int) []string {
	wrapped := strings.Split(wrapText(s, width), "\n")
	lines := make([]string, n)
	for i := 0; i < n && i < len(wrapped); i++ {
		lines[i] = truncateStr(wrapped[i], width)
	}
	if len(wrapped) > n {
		last := []rune(wrapped[n-1])
		if len(last)+3 > width {
			last = last[:max(0, width-3)]
		}
		lines[n-1] = string(last) + "..."
	}
	return lines
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func centerText(s string, width, height int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
