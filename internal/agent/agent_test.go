package agent

import (
	"context"
	"testing"

	"github.com/harshadayini/The-Second-Mind/internal/source"
)

type fakeSink struct {
	events []string
	data   map[string]any
}

func (s *fakeSink) LogEvent(msg string) { s.events = append(s.events, msg) }

func (s *fakeSink) StoreData(key string, value any) {
	if s.data == nil {
		s.data = map[string]any{}
	}
	s.data[key] = value
}

type fakeSummary struct {
	name  string
	text  string
	calls int
}

func (f *fakeSummary) Fetch(ctx context.Context, query string) string {
	f.calls++
	return f.text
}

func (f *fakeSummary) Name() string { return f.name }

type fakePapers struct {
	papers []source.Paper
	calls  int
}

func (f *fakePapers) Fetch(ctx context.Context, query string) []source.Paper {
	f.calls++
	return f.papers
}

func (f *fakePapers) Name() string { return "papers" }

func testAgent() (*Agent, *fakeSummary, *fakeSummary, *fakePapers, *fakeSink) {
	web := &fakeSummary{name: "web", text: "web summary"}
	space := &fakeSummary{name: "space", text: "space summary"}
	papers := &fakePapers{papers: []source.Paper{{Title: "P1", Year: 2026}}}
	sink := &fakeSink{}
	return NewWithSources(sink, web, space, papers), web, space, papers, sink
}

func TestRoutingSpaceQuery(t *testing.T) {
	a, web, space, papers, _ := testAgent()

	got := a.FetchExternalData(context.Background(), "latest asteroid discovery")

	if space.calls != 1 || web.calls != 0 {
		t.Errorf("expected space adapter only, got space=%d web=%d", space.calls, web.calls)
	}
	if papers.calls != 1 {
		t.Errorf("expected paper source invoked, got %d calls", papers.calls)
	}
	if got.Summary != "space summary" {
		t.Errorf("Summary = %q", got.Summary)
	}
}

func TestRoutingWebQuery(t *testing.T) {
	a, web, space, papers, _ := testAgent()

	got := a.FetchExternalData(context.Background(), "best pizza recipe")

	if web.calls != 1 || space.calls != 0 {
		t.Errorf("expected web adapter only, got web=%d space=%d", web.calls, space.calls)
	}
	if papers.calls != 1 {
		t.Errorf("expected paper source invoked, got %d calls", papers.calls)
	}
	if got.Summary != "web summary" {
		t.Errorf("Summary = %q", got.Summary)
	}
}

func TestRepeatQueryHitsCacheWithZeroInvocations(t *testing.T) {
	a, web, space, papers, _ := testAgent()

	first := a.FetchExternalData(context.Background(), "best pizza recipe")
	second := a.FetchExternalData(context.Background(), "best pizza recipe")

	if web.calls != 1 || space.calls != 0 || papers.calls != 1 {
		t.Errorf("repeat query must not touch adapters: web=%d space=%d papers=%d",
			web.calls, space.calls, papers.calls)
	}
	if first.Summary != second.Summary || len(first.RecentAdvancements) != len(second.RecentAdvancements) {
		t.Error("cached result differs from original")
	}
	if a.CacheSize() != 1 {
		t.Errorf("expected 1 cached entry, got %d", a.CacheSize())
	}
}

func TestDistinctQueriesCachedSeparately(t *testing.T) {
	a, web, _, papers, _ := testAgent()

	a.FetchExternalData(context.Background(), "query one")
	a.FetchExternalData(context.Background(), "query two")

	if web.calls != 2 || papers.calls != 2 {
		t.Errorf("expected fresh fetches per distinct query: web=%d papers=%d", web.calls, papers.calls)
	}
	if a.CacheSize() != 2 {
		t.Errorf("expected 2 cached entries, got %d", a.CacheSize())
	}
}

func TestCompositeForwardedToSink(t *testing.T) {
	a, _, _, _, sink := testAgent()

	got := a.FetchExternalData(context.Background(), "go generics")

	stored, ok := sink.data["external_data"].(Result)
	if !ok {
		t.Fatalf("expected Result in external_data, got %T", sink.data["external_data"])
	}
	if stored.Summary != got.Summary {
		t.Errorf("stored summary %q differs from returned %q", stored.Summary, got.Summary)
	}

	// Cache hits forward the composite again.
	sink.data = nil
	a.FetchExternalData(context.Background(), "go generics")
	if _, ok := sink.data["external_data"].(Result); !ok {
		t.Error("cache hit must still forward the composite to the sink")
	}
}

func TestCompositeShapeWithEmptyPapers(t *testing.T) {
	web := &fakeSummary{name: "web", text: "Error: Google Search API request failed after 2 attempts."}
	space := &fakeSummary{name: "space"}
	papers := &fakePapers{papers: []source.Paper{}}
	a := NewWithSources(&fakeSink{}, web, space, papers)

	got := a.FetchExternalData(context.Background(), "anything")

	// Sentinel text is a normal result, never an error.
	if got.Summary == "" {
		t.Error("summary must never be empty")
	}
	if got.RecentAdvancements == nil {
		t.Error("RecentAdvancements must be an empty sequence, not nil")
	}
	if len(got.RecentAdvancements) != 0 {
		t.Errorf("expected no papers, got %d", len(got.RecentAdvancements))
	}
}
