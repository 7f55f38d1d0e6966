// Package analyze orchestrates the transcription pipeline for one image:
// decode, staff-line detection, external symbol detection, score
// reconstruction and MIDI encoding, behind a content-addressed result cache.
//
// # Failure Model
//
// Failures divide into soft and fatal. Soft conditions degrade the result
// and are logged: an image with no detectable staves proceeds on a synthetic
// fallback staff, and unmappable pitches resolve to middle C inside the
// score package. Fatal conditions (undecodable image, detector failure,
// MIDI encoding failure) abort the request with an error wrapping one of the
// sentinel kinds in errors.go, which the API layer translates into its error
// envelope. No error leaves this package unclassified.
package analyze
