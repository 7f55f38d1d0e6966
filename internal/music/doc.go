// Package music defines the musical vocabulary shared by the transcription
// pipeline: the closed 47-class symbol enumeration matching the detector's
// training labels, structured pitches with real semitone arithmetic, clef
// pitch ladders, bounding boxes in the detector's wire format, and the
// Symbol and Measure aggregates the pipeline stages pass between each other.
//
// # Pitch Representation
//
// Pitches are structured values (letter, accidental, octave), never free-form
// strings. Raising a pitch by a semitone means attaching a sharp, not
// splicing a "#" into a string, so arithmetic stays correct for every letter
// and octave. ParsePitch and Pitch.String convert to and from scientific
// notation at the API boundary only.
//
// # Class Enumeration
//
// SymbolKind values equal the detector's class ids. Capability queries
// (IsNote, IsRest, IsAccidental, IsBarLine, IsClef) replace substring checks
// on class names; new pipeline logic should dispatch on these, not on labels.
package music
