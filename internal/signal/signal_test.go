package signal

import (
	"testing"
	"time"
)

func TestScoreBounds(t *testing.T) {
	s := Score(Input{
		Title:     "Quantum computing advances",
		Summary:   "Quantum computing with error correction.",
		Query:     "quantum computing",
		Published: time.Now(),
	})
	if s < 0 || s > 10 {
		t.Errorf("score %v out of [0,10]", s)
	}
}

func TestFreshRelevantBeatsStaleIrrelevant(t *testing.T) {
	fresh := Score(Input{
		Title:     "Quantum computing advances",
		Summary:   "New results in quantum computing.",
		Query:     "quantum computing",
		Published: time.Now().Add(-24 * time.Hour),
	})
	stale := Score(Input{
		Title:     "Soil composition survey",
		Summary:   "Agricultural field data.",
		Query:     "quantum computing",
		Published: time.Now().Add(-4 * 365 * 24 * time.Hour),
	})
	if fresh <= stale {
		t.Errorf("fresh relevant (%v) should outscore stale irrelevant (%v)", fresh, stale)
	}
}

func TestRecencyDecay(t *testing.T) {
	now := recencyScore(time.Now())
	yearOld := recencyScore(time.Now().Add(-365 * 24 * time.Hour))
	if now < 0.95 {
		t.Errorf("just-published recency = %v, want near 1.0", now)
	}
	if yearOld > 0.6 || yearOld < 0.4 {
		t.Errorf("one-year recency = %v, want near 0.5", yearOld)
	}
}

func TestRecencyEpochAndZeroScoreZero(t *testing.T) {
	if recencyScore(time.Time{}) != 0 {
		t.Error("zero time should score 0")
	}
	if recencyScore(time.Unix(0, 0).UTC()) != 0 {
		t.Error("epoch origin should score 0")
	}
}

func TestOverlapEmptyQuery(t *testing.T) {
	if overlapScore("", "Title", "Summary") != 0 {
		t.Error("empty query should score 0 overlap")
	}
}

func TestOverlapTitleWeightedHigher(t *testing.T) {
	inTitle := overlapScore("quantum", "quantum results", "other words entirely here")
	inSummary := overlapScore("quantum", "other results", "quantum words entirely here")
	if inTitle <= inSummary {
		t.Errorf("title hit (%v) should outscore summary hit (%v)", inTitle, inSummary)
	}
}

func TestBreakdownComponents(t *testing.T) {
	b := ScoreWithBreakdown(Input{
		Title:     "Quantum computing",
		Summary:   "Quantum computing summary.",
		Query:     "quantum computing",
		Published: time.Now(),
	})
	if b.Recency <= 0 || b.QueryOverlap <= 0 {
		t.Errorf("expected positive components, got %+v", b)
	}
	if b.Final <= 0 {
		t.Errorf("expected positive final score, got %v", b.Final)
	}
}
