package imageutil

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	// This is the closest equivalent to OpenCV's INTER_AREA.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	// Equivalent to OpenCV's INTER_LINEAR.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

var interpolationNames = map[string]Interpolation{
	"area":    InterpolationArea,
	"linear":  InterpolationLinear,
	"nearest": InterpolationNearest,
}

// ParseInterpolation maps "area", "linear" or "nearest" to an Interpolation.
func ParseInterpolation(name string) (Interpolation, error) {
	interp, ok := interpolationNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown interpolation %q (use area, linear or nearest)", name)
	}
	return interp, nil
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)

	var scaler draw.Scaler
	switch interp {
	case InterpolationArea:
		// CatmullRom provides high quality for both up and down scaling
		scaler = draw.CatmullRom
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.CatmullRom
	}

	scaler.Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Over, nil)
	return dst
}

// Scale resizes an image by an integer factor. InterpolationNearest keeps
// every output pixel an exact copy of a source pixel, so card face colours
// survive scaling; the smoothing methods do not.
func Scale(img *RGBAImage, factor int, interp Interpolation) *RGBAImage {
	if factor <= 1 {
		return img.Clone()
	}
	return Resize(img, img.Width()*factor, img.Height()*factor, interp)
}
