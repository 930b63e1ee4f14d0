package source

import (
	"context"
	"net/http"
	"time"
)

// Paper is one research-feed entry that survived the recency filter.
type Paper struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Year      int    `json:"year"`
	Published string `json:"published"`
	Link      string `json:"link"`
	// ParsedDate backs caller-side sorting. Epoch origin when the
	// published timestamp could not be parsed.
	ParsedDate time.Time `json:"parsed_date"`
}

// Sink receives log lines and named artifacts from the adapters and the
// agent. The memory store implements it; tests use in-memory fakes.
type Sink interface {
	LogEvent(msg string)
	StoreData(key string, value any)
}

const (
	// DefaultAttempts is the retry budget per adapter call.
	DefaultAttempts = 2
	// DefaultDelay is the fixed wait between failed attempts.
	DefaultDelay = time.Second
)

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

// retry runs try up to attempts times, sleeping a fixed delay between
// failures. Transport errors, bad statuses and decode errors all flow
// through try's error return, so every failure mode is retried the same
// way. Returns false once the budget is exhausted or ctx is done.
func retry(ctx context.Context, attempts int, delay time.Duration, try func() error, report func(attempt int, err error)) bool {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	for attempt := 1; attempt <= attempts; attempt++ {
		err := try()
		if err == nil {
			return true
		}
		report(attempt, err)
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}
	}
	return false
}
