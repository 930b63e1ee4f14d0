package agent

import (
	"context"
	"fmt"

	"github.com/harshadayini/The-Second-Mind/internal/config"
	"github.com/harshadayini/The-Second-Mind/internal/route"
	"github.com/harshadayini/The-Second-Mind/internal/source"
)

// SummarySource produces displayable text for a query. Implementations
// degrade to sentinel text internally and never fail.
type SummarySource interface {
	Fetch(ctx context.Context, query string) string
	Name() string
}

// PaperSource produces research papers for a query, degrading to an
// empty slice on failure.
type PaperSource interface {
	Fetch(ctx context.Context, query string) []source.Paper
	Name() string
}

// Result is the composite answer for one query: a summary from exactly
// one of the two summary sources plus recent research papers. Immutable
// once built; cached by value.
type Result struct {
	Summary            string         `json:"summary"`
	RecentAdvancements []source.Paper `json:"recent_advancements"`
}

// Agent orchestrates the three external sources behind one query
// interface. The composite cache is its only mutable state; it is not
// safe for concurrent use without external locking.
type Agent struct {
	memory source.Sink
	web    SummarySource
	space  SummarySource
	papers PaperSource
	cache  map[string]Result
}

// New wires the real adapters from config.
func New(cfg *config.Config, mem source.Sink) *Agent {
	web := source.NewWebSearch(cfg.SearchKey(), cfg.SearchCX(), mem)
	space := source.NewAPOD(cfg.NASAKey(), mem)
	papers := source.NewArxivFeed(mem)

	attempts := cfg.RetryCount()
	delay := cfg.RetryDelayDuration()
	web.Attempts, web.Delay = attempts, delay
	space.Attempts, space.Delay = attempts, delay
	papers.Attempts, papers.Delay = attempts, delay

	if cfg.Endpoints.Search != "" {
		web.Endpoint = cfg.Endpoints.Search
	}
	if cfg.Endpoints.NASA != "" {
		space.Endpoint = cfg.Endpoints.NASA
	}
	if cfg.Endpoints.Arxiv != "" {
		papers.Endpoint = cfg.Endpoints.Arxiv
	}

	return NewWithSources(mem, web, space, papers)
}

// NewWithSources injects the adapters directly; used by tests.
func NewWithSources(mem source.Sink, web, space SummarySource, papers PaperSource) *Agent {
	return &Agent{
		memory: mem,
		web:    web,
		space:  space,
		papers: papers,
		cache:  map[string]Result{},
	}
}

// FetchExternalData answers a query from the cache or, on a miss, from
// exactly one summary source (picked by the router) plus the paper feed.
// Identical query text always short-circuits to the cached composite with
// zero adapter side effects. Only fully combined composites are cached.
func (a *Agent) FetchExternalData(ctx context.Context, query string) Result {
	a.memory.LogEvent(fmt.Sprintf("[agent] Processing external data for: %q", query))

	if cached, ok := a.cache[query]; ok {
		a.memory.LogEvent("[agent] Cache hit! Returning cached data.")
		a.memory.StoreData("external_data", cached)
		return cached
	}

	var summary string
	if route.Classify(query) == route.Space {
		summary = a.space.Fetch(ctx, query)
	} else {
		summary = a.web.Fetch(ctx, query)
	}

	papers := a.papers.Fetch(ctx, query)
	a.memory.LogEvent(fmt.Sprintf("[agent] Found %d advancements from arXiv.", len(papers)))

	result := Result{Summary: summary, RecentAdvancements: papers}
	a.cache[query] = result
	a.memory.LogEvent("[agent] Cached the new result.")
	a.memory.StoreData("external_data", result)
	return result
}

// CacheSize reports how many distinct queries are cached.
func (a *Agent) CacheSize() int {
	return len(a.cache)
}
