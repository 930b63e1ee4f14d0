package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultSearchEndpoint = "https://www.googleapis.com/customsearch/v1"
	searchResultCount     = 5
)

// WebSearch wraps the Google Custom Search API. It never returns an error
// from Fetch: after the retry budget is spent it degrades to a labeled
// sentinel string that callers display like any other summary.
type WebSearch struct {
	APIKey   string
	CX       string
	Endpoint string
	Attempts int
	Delay    time.Duration

	client *http.Client
	sink   Sink
}

func NewWebSearch(apiKey, cx string, sink Sink) *WebSearch {
	return &WebSearch{
		APIKey:   apiKey,
		CX:       cx,
		Endpoint: defaultSearchEndpoint,
		Attempts: DefaultAttempts,
		Delay:    DefaultDelay,
		client:   newHTTPClient(),
		sink:     sink,
	}
}

func (w *WebSearch) Name() string { return "Google Custom Search" }

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Fetch returns up to five results formatted as one text block per item,
// in response order. Result links are stored in the sink under
// "external_urls". No items means the fixed "No web results found." text.
func (w *WebSearch) Fetch(ctx context.Context, query string) string {
	w.sink.LogEvent("[agent] Querying Google Custom Search API.")

	params := url.Values{
		"q":   {query},
		"key": {w.APIKey},
		"cx":  {w.CX},
		"num": {strconv.Itoa(searchResultCount)},
	}

	var out string
	ok := retry(ctx, w.Attempts, w.Delay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.Endpoint+"?"+params.Encode(), nil)
		if err != nil {
			return err
		}
		resp, err := w.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("status %d", resp.StatusCode)
		}

		var sr searchResponse
		if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}

		if len(sr.Items) == 0 {
			out = "No web results found."
			return nil
		}

		urls := make([]string, 0, len(sr.Items))
		blocks := make([]string, 0, len(sr.Items))
		for _, item := range sr.Items {
			urls = append(urls, item.Link)
			blocks = append(blocks, fmt.Sprintf("Title: %s\nLink: %s\nSnippet: %s\n", item.Title, item.Link, item.Snippet))
		}
		w.sink.StoreData("external_urls", urls)
		out = strings.Join(blocks, "\n")
		return nil
	}, func(attempt int, err error) {
		w.sink.LogEvent(fmt.Sprintf("[agent] Google API attempt %d failed: %v", attempt, err))
	})

	if !ok {
		return fmt.Sprintf("Error: Google Search API request failed after %d attempts.", w.Attempts)
	}
	return out
}
