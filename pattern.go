package cardocr

import (
	"image"
	"strings"

	"golang.org/x/image/draw"
)

const (
	// Foreground marks an ink pixel in a Pattern.
	Foreground = '*'
	// Background marks a card face pixel (white or grey) in a Pattern.
	Background = '.'
)

// Pattern is a window of pixels flattened row by row into Foreground and
// Background symbols.
type Pattern string

// HasBackground reports whether any pixel of the pattern is card face.
func (p Pattern) HasBackground() bool {
	return strings.IndexByte(string(p), Background) >= 0
}

// Count returns how many pixels of the pattern equal symbol.
func (p Pattern) Count(symbol byte) int {
	return strings.Count(string(p), string(symbol))
}

// Rows splits the pattern into rows of the given width. A trailing partial
// row is kept.
func (p Pattern) Rows(width int) []string {
	if width <= 0 {
		return nil
	}
	s := string(p)
	rows := make([]string, 0, (len(s)+width-1)/width)
	for len(s) > width {
		rows = append(rows, s[:width])
		s = s[width:]
	}
	if s != "" {
		rows = append(rows, s)
	}
	return rows
}

// Sample renders img into a window and converts every window pixel into a
// pattern symbol.
//
// The source's top-left corner is drawn at w.Offset inside a window that is
// first filled with the layout's white, so window pixels the source does not
// cover read as Background. The window is then scanned from its own origin,
// columns fastest. img is not modified.
func (l Layout) Sample(img image.Image, w Window) Pattern {
	if w.Width <= 0 || w.Height <= 0 {
		return ""
	}
	window := image.NewRGBA(image.Rect(0, 0, w.Width, w.Height))
	draw.Draw(window, window.Bounds(), &image.Uniform{C: l.White}, image.Point{}, draw.Src)
	draw.Copy(window, w.Offset, img, img.Bounds(), draw.Over, nil)

	var sb strings.Builder
	sb.Grow(w.Len())
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if l.isBackground(window.RGBAAt(x, y)) {
				sb.WriteByte(Background)
			} else {
				sb.WriteByte(Foreground)
			}
		}
	}
	return Pattern(sb.String())
}
