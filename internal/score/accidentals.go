package score

import (
	"math"

	"github.com/Ensemble-v1/ensemble-v1/internal/music"
)

// accidentalWindow is how far apart (in pixels) the vertical centers of an
// accidental and a note may be for the accidental to apply to it.
const accidentalWindow = 20.0

// BindAccidentals associates accidental symbols with the notes they alter
// and removes the accidentals from the stream.
//
// For each note, the closest accidental strictly to its left whose vertical
// center lies within the window is applied: sharps and flats shift the pitch
// by one semitone (doubles by two), naturals clear any prior alteration.
// Matching is greedy and independent per note, so one accidental may alter
// several notes; it is never consumed, only dropped from the output.
//
// Notes with no accidental in range pass through untouched, and the returned
// slice preserves the input order minus the accidental symbols.
func BindAccidentals(symbols []music.Symbol) []music.Symbol {
	var accidentals []music.Symbol
	for _, s := range symbols {
		if s.Kind.IsAccidental() {
			accidentals = append(accidentals, s)
		}
	}

	out := make([]music.Symbol, 0, len(symbols))
	for _, s := range symbols {
		if s.Kind.IsAccidental() {
			continue
		}
		if s.Kind.IsNote() {
			if acc, ok := closestAccidental(s, accidentals); ok {
				s = applyAccidental(s, acc)
			}
		}
		out = append(out, s)
	}
	return out
}

// closestAccidental finds the accidental with the smallest positive
// horizontal distance left of the note within the vertical window.
func closestAccidental(note music.Symbol, accidentals []music.Symbol) (music.SymbolKind, bool) {
	best := music.SymbolKind(-1)
	bestDist := math.MaxFloat64
	for _, acc := range accidentals {
		if acc.Box.X >= note.Box.X {
			continue
		}
		if math.Abs(acc.Box.CenterY()-note.Box.CenterY()) >= accidentalWindow {
			continue
		}
		if dist := float64(note.Box.X - acc.Box.X); dist < bestDist {
			best, bestDist = acc.Kind, dist
		}
	}
	return best, best >= 0
}

func applyAccidental(note music.Symbol, kind music.SymbolKind) music.Symbol {
	switch kind {
	case music.Sharp:
		note.Accidental = music.AccSharp
		note.Pitch = note.Pitch.WithAccidental(music.AccSharp)
	case music.Flat:
		note.Accidental = music.AccFlat
		note.Pitch = note.Pitch.WithAccidental(music.AccFlat)
	case music.DoubleSharp:
		note.Accidental = music.AccDoubleSharp
		note.Pitch = note.Pitch.WithAccidental(music.AccDoubleSharp)
	case music.DoubleFlat:
		note.Accidental = music.AccDoubleFlat
		note.Pitch = note.Pitch.WithAccidental(music.AccDoubleFlat)
	case music.Natural:
		note.Accidental = music.AccNatural
		note.Pitch = note.Pitch.WithAccidental(music.NoAccidental)
	}
	return note
}
