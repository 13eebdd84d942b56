package cardocr

import (
	"fmt"
	"image"
)

// Recognizer turns table screenshots into card results. It holds only
// immutable state, so one Recognizer can serve any number of goroutines.
type Recognizer struct {
	layout  Layout
	catalog *Catalog
}

// RecognizerOption is a functional option for configuring a Recognizer.
type RecognizerOption func(*Recognizer)

// NewRecognizer creates a Recognizer. Defaults: DefaultLayout and
// DefaultCatalog.
func NewRecognizer(opts ...RecognizerOption) *Recognizer {
	r := &Recognizer{
		layout:  DefaultLayout(),
		catalog: DefaultCatalog(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithLayout replaces the table geometry.
func WithLayout(layout Layout) RecognizerOption {
	return func(r *Recognizer) {
		r.layout = layout
	}
}

// WithCatalog replaces the reference patterns.
func WithCatalog(c *Catalog) RecognizerOption {
	return func(r *Recognizer) {
		r.catalog = c
	}
}

// Layout returns the geometry used by the recognizer.
func (r *Recognizer) Layout() Layout {
	return r.layout
}

// Catalog returns the reference patterns used by the recognizer.
func (r *Recognizer) Catalog() *Catalog {
	return r.catalog
}

// Validate checks that the catalog patterns have the dimensions of the
// layout windows. Mismatched sizes still classify, but every distance is
// inflated by the size difference.
func (r *Recognizer) Validate() error {
	checks := []struct {
		kind Kind
		win  Window
	}{
		{KindRank, r.layout.Number},
		{KindSuit, r.layout.Suit},
	}
	for _, c := range checks {
		for _, e := range r.catalog.entries(c.kind) {
			if e.Width != c.win.Width || e.Height != c.win.Height {
				return fmt.Errorf("%s %s is %dx%d, layout window is %dx%d",
					c.kind, e.Label, e.Width, e.Height, c.win.Width, c.win.Height)
			}
		}
	}
	return nil
}

// DetectSlots returns the occupied slots of img.
func (r *Recognizer) DetectSlots(img image.Image) []Observation {
	return r.layout.DetectSlots(img)
}

// Classify matches p against the catalog entries of kind.
func (r *Recognizer) Classify(p Pattern, kind Kind) Match {
	return Classify(p, r.catalog.entries(kind), r.layout.MaxDistance)
}

// Identify classifies both patterns of one observation.
func (r *Recognizer) Identify(obs Observation) Card {
	return Card{
		Slot: obs.Slot,
		Rank: r.Classify(obs.Number, KindRank).Label,
		Suit: r.Classify(obs.Suit, KindSuit).Label,
	}
}

// Recognize detects the occupied slots of img and classifies each one.
func (r *Recognizer) Recognize(img image.Image) Result {
	observations := r.DetectSlots(img)
	result := make(Result, 0, len(observations))
	for _, obs := range observations {
		result = append(result, r.Identify(obs))
	}
	return result
}
