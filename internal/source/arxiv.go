package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	defaultArxivEndpoint = "http://export.arxiv.org/api/query"
	arxivMaxResults      = 10

	// arXiv publishes Atom timestamps in exactly this shape. Anything
	// else normalizes to year 0 and falls out of the recency window.
	publishedLayout = "2006-01-02T15:04:05Z"

	// recencyYears is how far back a paper may be published and still
	// count as a recent advancement.
	recencyYears = 5
)

// ArxivFeed queries the arXiv Atom feed for recent papers matching a
// query. Unlike the summary adapters it degrades to an empty slice, not a
// sentinel string, since callers consume it as a list.
type ArxivFeed struct {
	Endpoint string
	Attempts int
	Delay    time.Duration

	client *http.Client
	parser *gofeed.Parser
	sink   Sink
}

func NewArxivFeed(sink Sink) *ArxivFeed {
	return &ArxivFeed{
		Endpoint: defaultArxivEndpoint,
		Attempts: DefaultAttempts,
		Delay:    DefaultDelay,
		client:   newHTTPClient(),
		parser:   gofeed.NewParser(),
		sink:     sink,
	}
}

func (f *ArxivFeed) Name() string { return "arXiv" }

// Fetch returns up to ten papers sorted by submission date descending (the
// feed's own order, preserved as received) and filtered to the last five
// years. Entries with unparseable timestamps are dropped by the filter.
func (f *ArxivFeed) Fetch(ctx context.Context, query string) []Paper {
	f.sink.LogEvent("[agent] Querying arXiv API for research papers.")

	params := url.Values{
		"search_query": {"all:" + query},
		"start":        {"0"},
		"max_results":  {strconv.Itoa(arxivMaxResults)},
		"sortBy":       {"submittedDate"},
		"sortOrder":    {"descending"},
	}

	var feed *gofeed.Feed
	ok := retry(ctx, f.Attempts, f.Delay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.Endpoint+"?"+params.Encode(), nil)
		if err != nil {
			return err
		}
		resp, err := f.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("status %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		feed, err = f.parser.ParseString(string(body))
		if err != nil {
			return fmt.Errorf("parsing feed: %w", err)
		}
		return nil
	}, func(attempt int, err error) {
		f.sink.LogEvent(fmt.Sprintf("[agent] arXiv API attempt %d failed: %v", attempt, err))
	})

	if !ok {
		f.sink.LogEvent("[agent] arXiv API request failed after retries")
		return []Paper{}
	}

	thresholdYear := time.Now().Year() - recencyYears

	papers := make([]Paper, 0, len(feed.Items))
	for _, item := range feed.Items {
		year := 0
		parsedDate := time.Unix(0, 0).UTC()
		published, err := time.Parse(publishedLayout, item.Published)
		if err != nil {
			f.sink.LogEvent(fmt.Sprintf("[agent] Error parsing published date %q: %v", item.Published, err))
		} else {
			year = published.Year()
			parsedDate = published
		}
		if year < thresholdYear {
			continue
		}

		title := strings.TrimSpace(item.Title)
		if title == "" {
			title = "No Title"
		}
		summary := strings.TrimSpace(item.Description)
		if summary == "" {
			summary = "No summary available."
		}

		papers = append(papers, Paper{
			Title:      title,
			Summary:    summary,
			Year:       year,
			Published:  item.Published,
			Link:       item.Link,
			ParsedDate: parsedDate,
		})
	}
	return papers
}
