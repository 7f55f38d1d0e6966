// Package midi encodes a transcribed note sequence into a single-track
// Standard MIDI File using the gomidi SMF writer.
package midi
