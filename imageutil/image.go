// Package imageutil provides the pixel grid used by card recognition, plus
// decoding and saving of screenshots.
package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to color.RGBA for use with standard library.
func (rgb RGB) ToColor() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// RGBFromColor converts a color.Color to RGB.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
// Decoded screenshots are always normalised to this type, with bounds
// starting at the origin.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to RGBAImage, moving its
// bounds to the origin.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	if rgba, ok := img.(*RGBAImage); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())
	draw.Draw(rgba.RGBA, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the RGB value at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, c.ToColor())
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
