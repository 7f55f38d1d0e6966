package analyze

import "errors"

// Classified failure kinds. Every error leaving this package wraps one of
// these sentinels, so the API layer can map failures to responses without
// string matching. Soft conditions (no staff lines, out-of-range pitches)
// are absorbed with fallbacks and never surface as errors.
var (
	// ErrImageDecode marks an unreadable or unsupported image. Fatal for
	// the request.
	ErrImageDecode = errors.New("image could not be decoded")

	// ErrDetection marks a failure of the external symbol detector.
	ErrDetection = errors.New("symbol detection failed")

	// ErrMIDIEncode marks an I/O or structural failure producing the MIDI
	// output. Fatal for the request.
	ErrMIDIEncode = errors.New("midi encoding failed")
)
