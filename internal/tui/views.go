package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/harshadayini/The-Second-Mind/internal/report"
)

func renderListItem(c report.Card, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(c.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(c.Title, width-4))
	}

	meta := "  " + itemMetaStyle.Render(fmt.Sprintf("%d · %.1f", c.Year, c.Relevance))

	return title + "\n" + meta
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

func renderList(cards []report.Card, cursor, height, width int) string {
	if len(cards) == 0 {
		return centerText("No recent papers found", width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(cards) {
		end = len(cards)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(cards[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderPreview(d *report.Digest, card *report.Card, width, height, scroll int) string {
	if d == nil {
		return centerText("Loading", width, height)
	}

	var content string
	if card == nil {
		// No papers: show just the summary block.
		content = previewBodyStyle.Width(width).Render(d.Summary)
	} else {
		title := previewTitleStyle.Width(width).Render(card.Title)
		meta := previewMetaStyle.Render(
			fmt.Sprintf("%d · relevance %.1f · %d min read", card.Year, card.Relevance, card.ReadingTime),
		)
		body := previewBodyStyle.Width(width).Render(card.Summary)
		link := previewLinkStyle.Width(width).Render("Open: " + card.Link)
		content = lipgloss.JoinVertical(lipgloss.Left, title, meta, "", body, "", link)
	}

	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func renderStatusBar(paperCount int, status string, width int) string {
	left := fmt.Sprintf(" %d papers", paperCount)
	if status != "" {
		left += " · " + status
	}
	right := " j/k move  o open  q quit "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return statusBarStyle.Width(width).Render(left + fmt.Sprintf("%*s", gap, "") + right)
}

func centerText(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
