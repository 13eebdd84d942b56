package cardocr

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/wbrown/cardocr/imageutil"
)

// TableStyle controls how RenderTable paints a synthetic screenshot.
type TableStyle struct {
	Felt     color.RGBA // table colour around the cards
	Red      color.RGBA // ink for hearts and diamonds
	Black    color.RGBA // ink for spades and clubs
	Margin   int        // card face border around the windows
	Dimmed   bool       // paint card faces grey instead of white
	Disabled []int      // slots left as bare felt even when a card is given
}

// DefaultTableStyle returns a green felt table with white cards.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Felt:   color.RGBA{R: 30, G: 107, B: 58, A: 255},
		Red:    color.RGBA{R: 200, G: 20, B: 30, A: 255},
		Black:  color.RGBA{R: 10, G: 10, B: 10, A: 255},
		Margin: 4,
	}
}

// RenderTable paints a synthetic table screenshot holding cards. Each card
// is placed at its Slot; the rank and suit patterns come from catalog.
// Slots without a card show bare felt.
func RenderTable(layout Layout, catalog *Catalog, cards Result, style TableStyle) (*imageutil.RGBAImage, error) {
	b := layout.Bounds()
	img := imageutil.NewRGBAImage(b.Dx()+style.Margin, b.Dy()+style.Margin)
	fillRect(img, img.Bounds(), style.Felt)

	face := layout.White
	if style.Dimmed {
		face = layout.Grey
	}
	disabled := make(map[int]bool, len(style.Disabled))
	for _, s := range style.Disabled {
		disabled[s] = true
	}

	for _, card := range cards {
		if card.Slot < 0 || card.Slot >= layout.Slots {
			return nil, fmt.Errorf("card %s: slot %d outside 0..%d", card.Code(), card.Slot, layout.Slots-1)
		}
		if disabled[card.Slot] {
			continue
		}
		rank, ok := catalog.Lookup(KindRank, card.Rank)
		if !ok {
			return nil, &LabelError{Kind: KindRank, Label: card.Rank}
		}
		suit, ok := catalog.Lookup(KindSuit, card.Suit)
		if !ok {
			return nil, &LabelError{Kind: KindSuit, Label: card.Suit}
		}

		number, suitWin := layout.SlotWindows(card.Slot)
		cardRect := number.SourceRect().Union(suitWin.SourceRect()).Inset(-style.Margin)
		fillRect(img, cardRect, face)

		ink := style.Black
		if card.Suit == "h" || card.Suit == "d" {
			ink = style.Red
		}
		DrawPattern(img, number, rank.Pattern, ink, face)
		DrawPattern(img, suitWin, suit.Pattern, ink, face)
	}
	return img, nil
}

// DrawPattern paints p into the source area covered by w: Foreground
// symbols in ink, everything else in face. Pixels outside img are skipped.
func DrawPattern(img draw.Image, w Window, p Pattern, ink, face color.RGBA) {
	origin := w.SourceRect().Min
	for i := 0; i < len(p) && i < w.Len(); i++ {
		c := face
		if p[i] == Foreground {
			c = ink
		}
		img.Set(origin.X+i%w.Width, origin.Y+i/w.Width, c)
	}
}

// fillRect fills a rectangle with the given color
func fillRect(img draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}
