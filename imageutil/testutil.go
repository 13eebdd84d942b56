package imageutil

import "image/color"

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, c)
		}
	}
	return img
}

// CreateCheckerboardImage creates a checkerboard pattern for edge testing.
func CreateCheckerboardImage(width, height, squareSize int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			isWhite := ((x/squareSize)+(y/squareSize))%2 == 0
			if isWhite {
				img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 0, G: 0, B: 0, A: 255})
			}
		}
	}
	return img
}

// CalculateMaxDiff calculates the maximum pixel difference between two images.
func CalculateMaxDiff(img1, img2 *RGBAImage) int {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return 256
	}

	width, height := img1.Width(), img1.Height()
	maxDiff := 0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c1 := img1.GetRGB(x, y)
			c2 := img2.GetRGB(x, y)
			dr := abs(int(c1.R) - int(c2.R))
			dg := abs(int(c1.G) - int(c2.G))
			db := abs(int(c1.B) - int(c2.B))
			if dr > maxDiff {
				maxDiff = dr
			}
			if dg > maxDiff {
				maxDiff = dg
			}
			if db > maxDiff {
				maxDiff = db
			}
		}
	}

	return maxDiff
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
