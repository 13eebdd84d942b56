//go:build gocv

package imageutil

import (
	"fmt"

	"gocv.io/x/gocv"
)

// LoadImageOpenCV decodes path with OpenCV's imread. It accepts every format
// the linked OpenCV build supports.
func LoadImageOpenCV(path string) (*RGBAImage, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		return nil, fmt.Errorf("could not read image from %s", path)
	}
	defer mat.Close()

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert image from %s: %w", path, err)
	}
	return RGBAImageFromImage(img), nil
}
