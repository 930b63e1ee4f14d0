package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/harshadayini/The-Second-Mind/internal/agent"
	"github.com/harshadayini/The-Second-Mind/internal/signal"
)

// Card is one paper prepared for display.
type Card struct {
	Index       int
	Title       string
	Summary     string
	Year        int
	Link        string
	ReadingTime int
	Relevance   float64
}

// Digest is a composite result arranged for the terminal. Cards keep the
// order the feed returned; relevance is informational only.
type Digest struct {
	Query     string
	DateLabel string
	Summary   string
	Cards     []Card
}

// Build prepares a digest from a composite result.
func Build(query string, res agent.Result) *Digest {
	d := &Digest{
		Query:     query,
		DateLabel: time.Now().Format("Jan 2"),
		Summary:   strings.TrimRight(res.Summary, "\n"),
	}

	for i, p := range res.RecentAdvancements {
		d.Cards = append(d.Cards, Card{
			Index:       i + 1,
			Title:       p.Title,
			Summary:     excerpt(p.Summary, 280),
			Year:        p.Year,
			Link:        p.Link,
			ReadingTime: estimateReadTime(p.Summary),
			Relevance: signal.Score(signal.Input{
				Title:     p.Title,
				Summary:   p.Summary,
				Query:     query,
				Published: p.ParsedDate,
			}),
		})
	}
	return d
}

// Render formats the digest with lipgloss for terminal output.
func (d *Digest) Render(width int) string {
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Second Mind · "+d.DateLabel) + "\n")
	b.WriteString(queryStyle.Render(d.Query) + "\n\n")
	b.WriteString(summaryStyle.Width(width).Render(wrapText(d.Summary, width)) + "\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Recent advancements (%d)", len(d.Cards))) + "\n")
	if len(d.Cards) == 0 {
		b.WriteString(emptyStyle.Render("No recent papers found.") + "\n")
		return b.String()
	}

	for _, c := range d.Cards {
		meta := fmt.Sprintf("%d · relevance %.1f · %d min read", c.Year, c.Relevance, c.ReadingTime)
		b.WriteString("\n")
		b.WriteString(cardTitleStyle.Render(fmt.Sprintf("%d. %s", c.Index, c.Title)) + "\n")
		b.WriteString("   " + cardMetaStyle.Render(meta) + "\n")
		b.WriteString(cardBodyStyle.Render(indent(wrapText(c.Summary, width-3), "   ")) + "\n")
		if c.Link != "" {
			b.WriteString("   " + cardLinkStyle.Render(c.Link) + "\n")
		}
	}
	return b.String()
}

// estimateReadTime assumes 200 words per minute, minimum 1 minute.
func estimateReadTime(text string) int {
	words := len(strings.Fields(text))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// wrapText wraps each line separately so the summary adapters' block
// structure (blank lines between results) survives.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	in := strings.Split(s, "\n")
	out := make([]string, 0, len(in))
	for _, line := range in {
		out = append(out, wrapLine(line, width))
	}
	return strings.Join(out, "\n")
}

func wrapLine(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
