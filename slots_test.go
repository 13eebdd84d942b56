package cardocr

import (
	"image"
	"testing"

	"github.com/wbrown/cardocr/imageutil"
)

func TestSlotWindowsStepLeft(t *testing.T) {
	layout := DefaultLayout()
	number0, suit0 := layout.SlotWindows(0)
	if number0 != layout.Number || suit0 != layout.Suit {
		t.Fatal("Slot 0 should use the layout windows unchanged")
	}
	for i := 1; i < layout.Slots; i++ {
		number, suit := layout.SlotWindows(i)
		if number.Offset.X != layout.Number.Offset.X-i*layout.Step {
			t.Errorf("Slot %d number offset: expected %d, got %d",
				i, layout.Number.Offset.X-i*layout.Step, number.Offset.X)
		}
		if suit.Offset.X != layout.Suit.Offset.X-i*layout.Step {
			t.Errorf("Slot %d suit offset: expected %d, got %d",
				i, layout.Suit.Offset.X-i*layout.Step, suit.Offset.X)
		}
		if number.Offset.Y != layout.Number.Offset.Y || suit.Offset.Y != layout.Suit.Offset.Y {
			t.Errorf("Slot %d: vertical offsets must not change", i)
		}
		prevNumber, prevSuit := layout.SlotWindows(i - 1)
		if number.Offset.X >= prevNumber.Offset.X || suit.Offset.X >= prevSuit.Offset.X {
			t.Errorf("Slot %d offsets should strictly decrease", i)
		}
	}
}

func TestLayoutBounds(t *testing.T) {
	layout := DefaultLayout()
	b := layout.Bounds()
	last, lastSuit := layout.SlotWindows(layout.Slots - 1)
	if b.Min != (image.Point{}) {
		t.Errorf("Bounds should start at the origin, got %v", b.Min)
	}
	if b.Max.X != last.SourceRect().Max.X {
		t.Errorf("Expected width %d, got %d", last.SourceRect().Max.X, b.Max.X)
	}
	if b.Max.Y != lastSuit.SourceRect().Max.Y {
		t.Errorf("Expected height %d, got %d", lastSuit.SourceRect().Max.Y, b.Max.Y)
	}
}

// paintWindow fills the source area of w with a solid colour.
func paintWindow(img *imageutil.RGBAImage, w Window, c imageutil.RGB) {
	r := w.SourceRect()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGB(x, y, c)
		}
	}
}

func TestDetectSlotsEmptinessFilter(t *testing.T) {
	layout := DefaultLayout()
	b := layout.Bounds()
	img := imageutil.CreateSolidImage(b.Dx(), b.Dy(), felt)
	white := imageutil.RGBFromColor(layout.White)

	// Slot 0: both windows contain card face.
	n0, s0 := layout.SlotWindows(0)
	paintWindow(img, n0, white)
	paintWindow(img, s0, white)
	// Slot 1: only the number window has card face.
	n1, _ := layout.SlotWindows(1)
	paintWindow(img, n1, white)
	// Slot 2: only the suit window has card face.
	_, s2 := layout.SlotWindows(2)
	paintWindow(img, s2, white)
	// Slot 3: a single grey pixel in each window is enough.
	n3, s3 := layout.SlotWindows(3)
	img.SetRGBA(n3.SourceRect().Min.X, n3.SourceRect().Min.Y, layout.Grey)
	img.SetRGBA(s3.SourceRect().Max.X-1, s3.SourceRect().Max.Y-1, layout.Grey)
	// Slot 4: bare felt.

	obs := layout.DetectSlots(img)
	if len(obs) != 2 {
		t.Fatalf("Expected 2 occupied slots, got %d", len(obs))
	}
	if obs[0].Slot != 0 || obs[1].Slot != 3 {
		t.Errorf("Expected slots [0 3], got [%d %d]", obs[0].Slot, obs[1].Slot)
	}
	for _, o := range obs {
		if len(o.Number) != layout.Number.Len() || len(o.Suit) != layout.Suit.Len() {
			t.Errorf("Slot %d: pattern lengths %d/%d, expected %d/%d",
				o.Slot, len(o.Number), len(o.Suit), layout.Number.Len(), layout.Suit.Len())
		}
	}
	if got := obs[1].Number.Count(Background); got != 1 {
		t.Errorf("Slot 3 number pattern should hold one background pixel, got %d", got)
	}
}

func TestDetectSlotsAllFelt(t *testing.T) {
	layout := DefaultLayout()
	b := layout.Bounds()
	img := imageutil.CreateSolidImage(b.Dx(), b.Dy(), felt)
	if obs := layout.DetectSlots(img); len(obs) != 0 {
		t.Errorf("Expected no slots on bare felt, got %d", len(obs))
	}
}

// TestDetectSlotsBlankCardIsKept documents the filter literally: a slot whose
// windows are pure card face is occupied, even with no ink at all.
func TestDetectSlotsBlankCardIsKept(t *testing.T) {
	layout := DefaultLayout()
	b := layout.Bounds()
	img := imageutil.CreateSolidImage(b.Dx(), b.Dy(), imageutil.RGBFromColor(layout.White))
	obs := layout.DetectSlots(img)
	if len(obs) != layout.Slots {
		t.Fatalf("Expected all %d blank slots kept, got %d", layout.Slots, len(obs))
	}
	for i, o := range obs {
		if o.Slot != i {
			t.Errorf("Expected slot %d at position %d, got %d", i, i, o.Slot)
		}
	}
}
