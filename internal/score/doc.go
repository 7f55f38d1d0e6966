// Package score reconstructs a musical score from raw detector output.
//
// The stages run in a fixed order, each fully consuming its predecessor:
//
//  1. BuildSymbols types every detection and assigns pitch and duration to
//     note-like classes from the staff geometry and the inferred clef.
//  2. BindAccidentals attaches sharps, flats and naturals to the notes they
//     alter and drops them from the stream.
//  3. SegmentMeasures partitions the stream at bar lines into measures using
//     half-open x intervals.
//  4. Assemble aggregates everything into a Transcription with the default
//     tempo, time and key signatures.
//
// The external detection model is consumed only through the Detector
// interface; StubDetector and FileDetector are the deterministic stand-ins
// used in tests and offline runs.
package score
