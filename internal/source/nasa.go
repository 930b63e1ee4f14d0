package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultNASAEndpoint = "https://api.nasa.gov/planetary/apod"

// APOD wraps NASA's Astronomy Picture of the Day API. The query only
// selects this adapter; the request itself carries no query parameters
// beyond the key and the hd flag.
type APOD struct {
	APIKey   string
	Endpoint string
	Attempts int
	Delay    time.Duration

	client *http.Client
	sink   Sink
}

func NewAPOD(apiKey string, sink Sink) *APOD {
	return &APOD{
		APIKey:   apiKey,
		Endpoint: defaultNASAEndpoint,
		Attempts: DefaultAttempts,
		Delay:    DefaultDelay,
		client:   newHTTPClient(),
		sink:     sink,
	}
}

func (a *APOD) Name() string { return "NASA APOD" }

type apodResponse struct {
	Title       *string `json:"title"`
	Explanation *string `json:"explanation"`
}

// Fetch returns the daily record as a fixed three-line text block, or the
// labeled sentinel after the retry budget is spent.
func (a *APOD) Fetch(ctx context.Context, query string) string {
	a.sink.LogEvent("[agent] Querying NASA API (APOD).")

	params := url.Values{
		"api_key": {a.APIKey},
		"hd":      {"true"},
	}

	var out string
	ok := retry(ctx, a.Attempts, a.Delay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.Endpoint+"?"+params.Encode(), nil)
		if err != nil {
			return err
		}
		resp, err := a.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("status %d", resp.StatusCode)
		}

		var ar apodResponse
		if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}

		title := "No title provided."
		if ar.Title != nil {
			title = *ar.Title
		}
		explanation := "No explanation available."
		if ar.Explanation != nil {
			explanation = *ar.Explanation
		}
		out = fmt.Sprintf("NASA APOD\nTitle: %s\nExplanation: %s\n", title, explanation)
		return nil
	}, func(attempt int, err error) {
		a.sink.LogEvent(fmt.Sprintf("[agent] NASA API attempt %d failed: %v", attempt, err))
	})

	if !ok {
		return fmt.Sprintf("Error: NASA API request failed after %d attempts.", a.Attempts)
	}
	return out
}
