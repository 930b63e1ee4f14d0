package route

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		query string
		want  Kind
	}{
		{"latest asteroid discovery", Space},
		{"NASA budget news", Space},
		{"Galaxy formation models", Space},
		{"exoplanet atmospheres", Space}, // substring match on "planet"
		{"the COSMOS survey", Space},
		{"best pizza recipe", Web},
		{"go generics tutorial", Web},
		{"", Web},
	}

	for _, tt := range tests {
		if got := Classify(tt.query); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.query, got, tt.want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if Classify("ASTRONOMY picture") != Space {
		t.Error("expected uppercase keyword to route to Space")
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if Classify("space weather") != Space {
			t.Fatal("classification changed between calls")
		}
	}
}
