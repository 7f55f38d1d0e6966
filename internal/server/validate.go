package server

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Ensemble-v1/ensemble-v1/internal/imaging"
)

// ErrValidation marks an upload rejected before reaching the pipeline.
// Always reported to the client as a 400 with the wrapped detail.
var ErrValidation = errors.New("upload rejected")

// validateUpload checks the client-supplied filename and size against the
// accepted extensions and the configured size cap. It guards the pipeline's
// upload contract; the image content itself is validated later by decoding.
func validateUpload(filename string, size, maxBytes int64) error {
	if filename == "" {
		return fmt.Errorf("%w: no file selected", ErrValidation)
	}
	if !imaging.SupportedExtension(filename) {
		return fmt.Errorf("%w: file type %s not supported, allowed: %s",
			ErrValidation,
			strings.ToLower(filepath.Ext(filename)),
			strings.Join(imaging.AllowedExtensions, ", "))
	}
	if size > maxBytes {
		return fmt.Errorf("%w: file too large (max %dMB)", ErrValidation, maxBytes>>20)
	}
	return nil
}
