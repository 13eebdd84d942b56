package cardocr

// Match is the outcome of classifying one pattern. A zero Match (empty
// Label) means no catalog entry was closer than the threshold.
type Match struct {
	Label    string
	Distance int
}

// Matched reports whether a label was found.
func (m Match) Matched() bool {
	return m.Label != ""
}

// Classify returns the entry label closest to p by Distance.
//
// The best distance starts at maxDistance and an entry replaces the current
// best only when it is strictly closer, so on a tie the earliest entry wins
// and an entry at maxDistance or beyond never matches.
func Classify(p Pattern, entries []Entry, maxDistance int) Match {
	best := Match{Distance: maxDistance}
	for _, e := range entries {
		if d := Distance(p, e.Pattern); d < best.Distance {
			best = Match{Label: e.Label, Distance: d}
		}
	}
	if !best.Matched() {
		return Match{}
	}
	return best
}
