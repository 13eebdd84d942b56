package cardocr

import "testing"

func TestClassifyExactMatch(t *testing.T) {
	c := DefaultCatalog()
	for _, kind := range []Kind{KindRank, KindSuit} {
		for _, e := range c.Entries(kind) {
			m := Classify(e.Pattern, c.Entries(kind), DefaultLayout().MaxDistance)
			if m.Label != e.Label || m.Distance != 0 {
				t.Errorf("%s %s: expected exact match, got %+v", kind, e.Label, m)
			}
		}
	}
}

func TestClassifyPolicy(t *testing.T) {
	entries := []Entry{
		{Kind: KindSuit, Label: "h", Pattern: "**.."},
		{Kind: KindSuit, Label: "s", Pattern: "..**"},
		{Kind: KindSuit, Label: "d", Pattern: "*..*"},
	}

	tests := []struct {
		name        string
		observed    Pattern
		maxDistance int
		want        Match
	}{
		{
			name:        "closest wins",
			observed:    "***.",
			maxDistance: 100,
			want:        Match{Label: "h", Distance: 1},
		},
		{
			name:        "tie keeps earliest entry",
			observed:    "....",
			maxDistance: 100,
			want:        Match{Label: "h", Distance: 2},
		},
		{
			name:        "distance equal to threshold does not match",
			observed:    "....",
			maxDistance: 2,
			want:        Match{},
		},
		{
			name:        "strictly below threshold matches",
			observed:    "....",
			maxDistance: 3,
			want:        Match{Label: "h", Distance: 2},
		},
		{
			name:        "zero threshold never matches",
			observed:    "**..",
			maxDistance: 0,
			want:        Match{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.observed, entries, tt.maxDistance)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
			if got.Matched() != (tt.want.Label != "") {
				t.Errorf("Matched() = %v for %+v", got.Matched(), got)
			}
		})
	}
}

func TestClassifyNoEntries(t *testing.T) {
	if m := Classify("**..", nil, 1000); m.Matched() {
		t.Errorf("Expected no match without entries, got %+v", m)
	}
}

func TestCardCodeWithUnmatchedLabels(t *testing.T) {
	result := Result{
		{Slot: 0, Rank: "A", Suit: "h"},
		{Slot: 2, Rank: "", Suit: "d"},
		{Slot: 3, Rank: "10", Suit: ""},
	}
	if got := result.String(); got != "Ahd10" {
		t.Errorf("Expected %q, got %q", "Ahd10", got)
	}
}
