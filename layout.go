package cardocr

import (
	"image"
	"image/color"
)

// Window is a sampling rectangle. Offset is the translation applied to the
// source image when it is drawn into the window, so the window shows the
// source rectangle starting at (-Offset.X, -Offset.Y).
type Window struct {
	Width  int
	Height int
	Offset image.Point
}

// Len returns the number of pixels, and so the pattern length, of the window.
func (w Window) Len() int {
	return w.Width * w.Height
}

// SourceRect returns the rectangle of the source image the window covers.
func (w Window) SourceRect() image.Rectangle {
	return image.Rect(-w.Offset.X, -w.Offset.Y, -w.Offset.X+w.Width, -w.Offset.Y+w.Height)
}

// Layout holds the fixed table geometry and colour constants.
type Layout struct {
	// Slots is the number of card positions scanned per image.
	Slots int

	// Step is subtracted from both window offsets after each slot.
	Step int

	// Number and Suit are the windows of slot 0.
	Number Window
	Suit   Window

	// White and Grey are the card face colours; every other colour is ink.
	White color.RGBA
	Grey  color.RGBA

	// MaxDistance is the starting best distance of the classifier. Only a
	// catalog entry strictly closer than this can match.
	MaxDistance int
}

// DefaultLayout returns the geometry of the reference table screenshots:
// five slots 72px apart, 12x14 number windows and 12x12 suit windows.
func DefaultLayout() Layout {
	return Layout{
		Slots: 5,
		Step:  72,
		Number: Window{
			Width:  12,
			Height: 14,
			Offset: image.Point{X: -146, Y: -586},
		},
		Suit: Window{
			Width:  12,
			Height: 12,
			Offset: image.Point{X: -146, Y: -604},
		},
		White:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Grey:        color.RGBA{R: 120, G: 120, B: 120, A: 255},
		MaxDistance: 1000,
	}
}

// SlotWindows returns the number and suit windows of slot i. Each slot moves
// both offsets by Step, which walks the windows one card to the right.
func (l Layout) SlotWindows(i int) (number, suit Window) {
	number, suit = l.Number, l.Suit
	number.Offset.X -= i * l.Step
	suit.Offset.X -= i * l.Step
	return number, suit
}

// Bounds returns the smallest origin-anchored image rectangle that contains
// every window of every slot.
func (l Layout) Bounds() image.Rectangle {
	var r image.Rectangle
	for i := 0; i < l.Slots; i++ {
		number, suit := l.SlotWindows(i)
		r = r.Union(number.SourceRect()).Union(suit.SourceRect())
	}
	return image.Rect(0, 0, r.Max.X, r.Max.Y)
}

// isBackground reports whether c is one of the card face colours.
func (l Layout) isBackground(c color.RGBA) bool {
	return (c.R == l.White.R && c.G == l.White.G && c.B == l.White.B) ||
		(c.R == l.Grey.R && c.G == l.Grey.G && c.B == l.Grey.B)
}
