package source

import (
	"context"
	"errors"
	"testing"
)

// fakeSink records log lines and artifacts for assertions.
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

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	ok := retry(context.Background(), 3, 0, func() error {
		calls++
		return nil
	}, func(int, error) { t.Error("report called on success") })

	if !ok {
		t.Error("expected success")
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryExhaustsBudget(t *testing.T) {
	calls := 0
	var reported []int
	ok := retry(context.Background(), 3, 0, func() error {
		calls++
		return errors.New("boom")
	}, func(attempt int, err error) {
		reported = append(reported, attempt)
	})

	if ok {
		t.Error("expected failure after exhaustion")
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if len(reported) != 3 || reported[0] != 1 || reported[2] != 3 {
		t.Errorf("unexpected reported attempts: %v", reported)
	}
}

func TestRetryRecoversMidway(t *testing.T) {
	calls := 0
	ok := retry(context.Background(), 3, 0, func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	}, func(int, error) {})

	if !ok {
		t.Error("expected recovery on second attempt")
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	ok := retry(ctx, 5, 0, func() error {
		calls++
		return errors.New("boom")
	}, func(int, error) {})

	if ok {
		t.Error("expected failure with canceled context")
	}
	// The first attempt runs; the canceled context stops the inter-attempt wait.
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryDefaultsNonPositiveAttempts(t *testing.T) {
	calls := 0
	retry(context.Background(), 0, 0, func() error {
		calls++
		return errors.New("boom")
	}, func(int, error) {})

	if calls != DefaultAttempts {
		t.Errorf("expected %d calls for zero attempts, got %d", DefaultAttempts, calls)
	}
}
