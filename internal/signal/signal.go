package signal

import (
	"math"
	"strings"
	"time"
	"unicode"
)

// Input holds the data needed to score a paper against a query.
type Input struct {
	Title     string
	Summary   string
	Query     string
	Published time.Time
}

// Breakdown shows how each component contributed to the final score.
type Breakdown struct {
	Recency      float64
	QueryOverlap float64
	Final        float64
}

const (
	weightRecency = 0.6
	weightOverlap = 0.4
)

// Score computes a relevance score (0.0–10.0) for a paper. It is used
// for display alongside results and never changes their order.
func Score(input Input) float64 {
	return ScoreWithBreakdown(input).Final
}

// ScoreWithBreakdown computes a relevance score with component details.
func ScoreWithBreakdown(input Input) Breakdown {
	b := Breakdown{
		Recency:      recencyScore(input.Published),
		QueryOverlap: overlapScore(input.Query, input.Title, input.Summary),
	}
	raw := b.Recency*weightRecency + b.QueryOverlap*weightOverlap
	b.Final = math.Round(raw*100) / 10 // scale to 0.0–10.0
	return b
}

// recencyScore returns exponential decay over publication age:
// 1.0 at publish, ~0.5 after a year, ~0.03 at the five-year cutoff.
func recencyScore(published time.Time) float64 {
	if published.IsZero() || published.Unix() == 0 {
		return 0.0
	}
	days := time.Since(published).Hours() / 24
	if days < 0 {
		days = 0
	}
	// decay constant: ln(0.5)/365 ≈ -0.0019
	return math.Exp(-0.0019 * days)
}

// overlapScore returns how densely the query's terms appear in the
// paper's title and summary (0.0–1.0). Title hits count double.
func overlapScore(query, title, summary string) float64 {
	terms := tokenize(query)
	if len(terms) == 0 {
		return 0.0
	}
	termSet := make(map[string]bool, len(terms))
	for _, t := range terms {
		termSet[t] = true
	}

	hits := 0.0
	total := 0.0
	for _, w := range tokenize(title) {
		total++
		if termSet[w] {
			hits += 2
		}
	}
	for _, w := range tokenize(summary) {
		total++
		if termSet[w] {
			hits++
		}
	}
	if total == 0 {
		return 0.0
	}

	// Normalize: 10%+ weighted density = 1.0
	score := hits / total * 10
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
