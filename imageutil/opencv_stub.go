//go:build !gocv

package imageutil

import "errors"

// ErrOpenCVUnavailable is returned by LoadImageOpenCV when the binary was
// built without the gocv tag.
var ErrOpenCVUnavailable = errors.New("opencv decoder not compiled in, rebuild with -tags gocv")

// LoadImageOpenCV always fails; build with -tags gocv to decode via OpenCV.
func LoadImageOpenCV(path string) (*RGBAImage, error) {
	return nil, ErrOpenCVUnavailable
}
