package score

import (
	"math"

	"github.com/Ensemble-v1/ensemble-v1/internal/music"
	"github.com/Ensemble-v1/ensemble-v1/internal/staff"
)

// InferClef picks the clef governing pitch lookup: the leftmost detected
// clef symbol wins, matching reading order. Treble is the default when the
// page shows no clef at all.
func InferClef(detections []Detection) music.Clef {
	clef := music.ClefTreble
	bestX := math.MaxInt
	for _, d := range detections {
		kind, ok := music.KindFromClassID(d.ClassID)
		if !ok || !kind.IsClef() {
			continue
		}
		if d.Box.X < bestX {
			if c, ok := music.ClefForKind(kind); ok {
				clef, bestX = c, d.Box.X
			}
		}
	}
	return clef
}

// BuildSymbols converts raw detections into typed symbols. Detections with
// class ids outside the 47-entry table are dropped. Note kinds get a pitch
// computed from their vertical center against the nearest staff system;
// every note and rest gets its duration from the kind table.
func BuildSymbols(detections []Detection, systems []staff.System, clef music.Clef) []music.Symbol {
	symbols := make([]music.Symbol, 0, len(detections))
	for _, d := range detections {
		kind, ok := music.KindFromClassID(d.ClassID)
		if !ok {
			continue
		}

		sym := music.Symbol{
			Kind:       kind,
			Confidence: d.Confidence,
			Box:        d.Box,
			Duration:   kind.DurationBeats(),
		}
		if kind.IsNote() {
			sym.Pitch = pitchFromPosition(d.Box.CenterY(), systems, clef)
		}
		symbols = append(symbols, sym)
	}
	return symbols
}

// pitchFromPosition maps a vertical position onto the clef's pitch ladder.
//
// With center the mean of the staff line positions and spacing the nominal
// inter-line gap, the ladder index is round(5 + (y - center) / spacing):
// index 5 sits on the middle line and each full spacing moves one ladder
// step. An empty or degenerate staff, or an index off either end of the
// ladder, falls back to middle C.
func pitchFromPosition(y float64, systems []staff.System, clef music.Clef) music.Pitch {
	sys, ok := staff.Nearest(systems, y)
	if !ok {
		return music.MiddleC
	}
	spacing := sys.Spacing()
	if spacing <= 0 {
		return music.MiddleC
	}

	index := int(math.Round(5 + (y-sys.Center())/spacing))
	pitch, ok := clef.PitchAt(index)
	if !ok {
		return music.MiddleC
	}
	return pitch
}
