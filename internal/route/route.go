package route

import "strings"

// Kind identifies which summary source should answer a query.
type Kind string

const (
	Space Kind = "space"
	Web   Kind = "web"
)

// spaceKeywords route a query to the astronomy source. Matching is a
// case-insensitive substring check, so "spaceship" still counts.
var spaceKeywords = []string{
	"nasa", "space", "astronomy", "planet", "cosmos", "asteroid", "galaxy",
}

// Classify picks the summary source for a query. Pure and deterministic:
// Space when any space keyword appears in the query, Web otherwise.
func Classify(query string) Kind {
	q := strings.ToLower(query)
	for _, kw := range spaceKeywords {
		if strings.Contains(q, kw) {
			return Space
		}
	}
	return Web
}
