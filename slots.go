package cardocr

import "image"

// Observation holds the two patterns sampled from one slot.
type Observation struct {
	Slot   int
	Number Pattern
	Suit   Pattern
}

// occupied reports whether the slot passes the emptiness filter: both
// windows must contain at least one card face pixel. A slot over bare felt
// samples as all ink and is dropped.
func (o Observation) occupied() bool {
	return o.Number.HasBackground() && o.Suit.HasBackground()
}

// DetectSlots samples every slot of the layout, left to right, and returns
// the observations of occupied slots in scan order. Dropped slots leave no
// gap; Observation.Slot keeps the original index.
func (l Layout) DetectSlots(img image.Image) []Observation {
	observations := make([]Observation, 0, l.Slots)
	number, suit := l.Number, l.Suit
	for i := 0; i < l.Slots; i++ {
		obs := Observation{
			Slot:   i,
			Number: l.Sample(img, number),
			Suit:   l.Sample(img, suit),
		}
		number.Offset.X -= l.Step
		suit.Offset.X -= l.Step

		if !obs.occupied() {
			continue
		}
		observations = append(observations, obs)
	}
	return observations
}
