package cardocr

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// suitRunes maps suit labels to the glyphs drawn for them.
var suitRunes = map[string]rune{
	"h": '♥',
	"s": '♠',
	"d": '♦',
	"c": '♣',
}

// LoadFont parses a TrueType font from path. An empty path selects the
// embedded Go Regular font.
func LoadFont(path string) (*truetype.Font, error) {
	fontBytes := goregular.TTF
	if path != "" {
		var err error
		fontBytes, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}

	f, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return f, nil
}

// RenderLabel draws a rank or suit label with ttfFont into a window-sized
// alpha image and converts it to a Pattern.
//
// The label is horizontally centred and its baseline is placed from the
// face metrics so that the ascent fits the window. Pixels with more than 25%
// coverage become Foreground; anti-aliased edges below that stay card face.
func RenderLabel(ttfFont *truetype.Font, kind Kind, label string, w Window) (Pattern, error) {
	if !validLabel(kind, label) {
		return "", &LabelError{Kind: kind, Label: label}
	}
	text := label
	if kind == KindSuit {
		text = string(suitRunes[label])
	}

	size := float64(w.Height)
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, w.Width, w.Height))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttfFont)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	baselineY := (w.Height + ascent - descent) / 2

	advance := font.MeasureString(face, text)
	x := (fixed.I(w.Width) - advance) / 2
	if x < 0 {
		x = 0
	}

	if _, err := ctx.DrawString(text, fixed.Point26_6{X: x, Y: fixed.I(baselineY)}); err != nil {
		return "", fmt.Errorf("failed to draw %s %s: %w", kind, label, err)
	}

	var sb strings.Builder
	sb.Grow(w.Len())
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if img.AlphaAt(x, y).A > 64 {
				sb.WriteByte(Foreground)
			} else {
				sb.WriteByte(Background)
			}
		}
	}
	return Pattern(sb.String()), nil
}

// FontCatalog renders every rank into the layout's number window and every
// suit into its suit window.
func FontCatalog(ttfFont *truetype.Font, layout Layout) (*Catalog, error) {
	var entries []Entry
	render := func(kind Kind, labels []string, w Window) error {
		for _, label := range labels {
			p, err := RenderLabel(ttfFont, kind, label, w)
			if err != nil {
				return err
			}
			entries = append(entries, Entry{
				Kind:    kind,
				Label:   label,
				Pattern: p,
				Width:   w.Width,
				Height:  w.Height,
			})
		}
		return nil
	}
	if err := render(KindRank, Ranks, layout.Number); err != nil {
		return nil, err
	}
	if err := render(KindSuit, Suits, layout.Suit); err != nil {
		return nil, err
	}
	return NewCatalog(entries)
}

// CaptureCatalog samples the occupied slots of a real screenshot and labels
// them with cards, in slot order. Labels already captured from an earlier
// slot are skipped. The result is not a full catalog; merge it with others
// before calling NewCatalog.
func CaptureCatalog(img image.Image, layout Layout, cards Result) ([]Entry, error) {
	bySlot := make(map[int]Observation)
	for _, obs := range layout.DetectSlots(img) {
		bySlot[obs.Slot] = obs
	}

	var entries []Entry
	seen := make(map[string]bool)
	add := func(kind Kind, label string, p Pattern, w Window) {
		key := kind.String() + "/" + label
		if label == "" || seen[key] {
			return
		}
		seen[key] = true
		entries = append(entries, Entry{Kind: kind, Label: label, Pattern: p, Width: w.Width, Height: w.Height})
	}
	for _, card := range cards {
		obs, ok := bySlot[card.Slot]
		if !ok {
			return nil, fmt.Errorf("slot %d holds no card in this image", card.Slot)
		}
		add(KindRank, card.Rank, obs.Number, layout.Number)
		add(KindSuit, card.Suit, obs.Suit, layout.Suit)
	}
	return entries, nil
}

// MergeEntries combines entry lists. A later entry replaces an earlier one
// with the same kind and label, keeping the earlier position.
func MergeEntries(lists ...[]Entry) []Entry {
	var merged []Entry
	index := make(map[string]int)
	for _, list := range lists {
		for _, e := range list {
			key := e.Kind.String() + "/" + e.Label
			if i, ok := index[key]; ok {
				merged[i] = e
				continue
			}
			index[key] = len(merged)
			merged = append(merged, e)
		}
	}
	return merged
}
