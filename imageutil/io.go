package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// LoadFunc loads and decodes the image at path.
type LoadFunc func(path string) (*RGBAImage, error)

// ErrUnknownDecoder is returned by Loader for an unregistered decoder name.
var ErrUnknownDecoder = errors.New("unknown decoder")

// ErrImageTooLarge is returned by DecodeBounded when the image header
// declares more pixels than allowed.
var ErrImageTooLarge = errors.New("image too large")

var loaders = map[string]LoadFunc{
	"go":     LoadImage,
	"opencv": LoadImageOpenCV,
}

// Loader returns the load function registered under name: "go" for the
// pure Go decoders, "opencv" for gocv (only functional when built with the
// gocv tag).
func Loader(name string) (LoadFunc, error) {
	if name == "" {
		name = "go"
	}
	load, ok := loaders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownDecoder, name, strings.Join(Decoders(), ", "))
	}
	return load, nil
}

// Decoders lists the registered decoder names.
func Decoders() []string {
	names := make([]string, 0, len(loaders))
	for name := range loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadImage loads an image from the specified path.
// Supports PNG, JPEG, GIF, BMP, TIFF and WebP formats.
func LoadImage(path string) (*RGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode decodes an image from r in any registered format.
func Decode(r io.Reader) (*RGBAImage, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return RGBAImageFromImage(img), nil
}

// DecodeBounded decodes an image from r after checking the dimensions in its
// header, so an oversized image is rejected before its pixels are allocated.
// maxPixels <= 0 disables the check.
func DecodeBounded(r io.ReadSeeker, maxPixels int) (*RGBAImage, error) {
	if maxPixels > 0 {
		cfg, _, err := image.DecodeConfig(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image header: %w", err)
		}
		if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > maxPixels/cfg.Height {
			return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageTooLarge, cfg.Width, cfg.Height, maxPixels)
		}
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to rewind image: %w", err)
		}
	}
	return Decode(r)
}

// SaveImage saves an image to the specified path.
// Format is determined by file extension (png, jpg/jpeg, gif).
func SaveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".gif":
		return gif.Encode(f, img, nil)
	default:
		// Default to PNG
		return png.Encode(f, img)
	}
}

// SavePNG saves an image as PNG to the specified path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return png.Encode(f, img)
}
