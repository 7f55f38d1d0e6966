package score

import "github.com/Ensemble-v1/ensemble-v1/internal/music"

// Process-wide defaults attached to every transcription. Reading tempo, time
// and key signatures out of the detected symbols is out of scope for this
// version; the detector's signature classes are carried through the symbol
// stream for future use.
const (
	DefaultTempoBPM      = 120
	DefaultTimeSignature = "4/4"
	DefaultKeySignature  = "C major"
)

// Transcription is the assembled result of one analysis: the resolved symbol
// stream, its measure partition and the musical header values.
type Transcription struct {
	TempoBPM      int             `json:"bpm"`
	TimeSignature string          `json:"time_signature"`
	KeySignature  string          `json:"key_signature"`
	Measures      []music.Measure `json:"-"`
	Symbols       []music.Symbol  `json:"-"`
	SymbolCount   int             `json:"symbols_detected"`
	MeasureCount  int             `json:"measures"`
}

// Assemble aggregates resolved symbols and their measures into the final
// transcription. Pure and deterministic: no side effects, same inputs give
// the same output.
func Assemble(symbols []music.Symbol, measures []music.Measure) Transcription {
	return Transcription{
		TempoBPM:      DefaultTempoBPM,
		TimeSignature: DefaultTimeSignature,
		KeySignature:  DefaultKeySignature,
		Measures:      measures,
		Symbols:       symbols,
		SymbolCount:   len(symbols),
		MeasureCount:  len(measures),
	}
}

// Notes returns the pitched-note subsequence in detection order.
func (t Transcription) Notes() []music.Symbol {
	var notes []music.Symbol
	for _, s := range t.Symbols {
		if s.Kind.IsNote() {
			notes = append(notes, s)
		}
	}
	return notes
}

// Playable returns the notes and rests in detection order, the sequence the
// MIDI encoder consumes.
func (t Transcription) Playable() []music.Symbol {
	var seq []music.Symbol
	for _, s := range t.Symbols {
		if s.Kind.IsNote() || s.Kind.IsRest() {
			seq = append(seq, s)
		}
	}
	return seq
}
