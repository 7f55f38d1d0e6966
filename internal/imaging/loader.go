package imaging

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// AllowedExtensions lists the upload file extensions the pipeline accepts,
// lowercase with leading dot.
var AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tiff"}

// SupportedExtension reports whether the path carries one of the accepted
// image extensions. The check is case-insensitive.
func SupportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Open loads and decodes an image file. JPEG, PNG, BMP, TIFF and GIF are
// all handled by the imaging codec set.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Decode reads and decodes an image from a stream.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
