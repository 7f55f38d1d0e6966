package score

import (
	"testing"

	"github.com/Ensemble-v1/ensemble-v1/internal/music"
	"github.com/Ensemble-v1/ensemble-v1/internal/staff"
)

func fallbackSystems() []staff.System {
	return []staff.System{staff.Fallback()}
}

// det builds a zero-size detection box so the vertical center is exactly y.
func det(kind music.SymbolKind, x, y int) Detection {
	return Detection{ClassID: int(kind), Confidence: 0.9, Box: music.Box{X: x, Y: y}}
}

func TestInferClef(t *testing.T) {
	tests := []struct {
		name       string
		detections []Detection
		want       music.Clef
	}{
		{"no clef defaults to treble", []Detection{det(music.QuarterNote, 100, 200)}, music.ClefTreble},
		{"single bass clef", []Detection{det(music.BassClef, 40, 200)}, music.ClefBass},
		{"leftmost clef wins", []Detection{
			det(music.TrebleClef, 120, 200),
			det(music.BassClef, 40, 200),
		}, music.ClefBass},
		{"tenor clef uses the alto ladder", []Detection{det(music.TenorClef, 40, 200)}, music.ClefAlto},
		{"unknown ids ignored", []Detection{{ClassID: 99, Box: music.Box{X: 10}}}, music.ClefTreble},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferClef(tt.detections); got != tt.want {
				t.Errorf("InferClef = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildSymbolsDropsUnknownClasses(t *testing.T) {
	detections := []Detection{
		det(music.QuarterNote, 100, 200),
		{ClassID: -1, Box: music.Box{X: 120}},
		{ClassID: music.NumKinds, Box: music.Box{X: 140}},
	}
	symbols := BuildSymbols(detections, fallbackSystems(), music.ClefTreble)
	if len(symbols) != 1 {
		t.Fatalf("expected 1 symbol, got %d", len(symbols))
	}
	if symbols[0].Kind != music.QuarterNote {
		t.Errorf("Kind = %v", symbols[0].Kind)
	}
}

func TestBuildSymbolsPitchLadder(t *testing.T) {
	// The fallback staff centers at y=200 with 50px spacing, so each 50px
	// step down the page descends one ladder position.
	tests := []struct {
		y    int
		want string
	}{
		{-50, "E5"}, // top of the ladder
		{0, "D5"},
		{100, "B4"}, // top staff line, ladder index 3
		{150, "A4"},
		{200, "G4"}, // middle line
		{250, "F4"},
		{300, "E4"}, // bottom staff line
		{450, "B3"}, // bottom of the ladder
		{500, "C4"}, // off the ladder: middle C fallback
	}
	for _, tt := range tests {
		symbols := BuildSymbols([]Detection{det(music.QuarterNote, 100, tt.y)}, fallbackSystems(), music.ClefTreble)
		if got := symbols[0].Pitch.String(); got != tt.want {
			t.Errorf("y=%d: pitch %s, want %s", tt.y, got, tt.want)
		}
	}
}

func TestBuildSymbolsClefChangesPitch(t *testing.T) {
	d := []Detection{det(music.QuarterNote, 100, 200)}
	systems := fallbackSystems()

	if p := BuildSymbols(d, systems, music.ClefTreble)[0].Pitch.String(); p != "G4" {
		t.Errorf("treble middle line = %s, want G4", p)
	}
	if p := BuildSymbols(d, systems, music.ClefBass)[0].Pitch.String(); p != "B2" {
		t.Errorf("bass middle line = %s, want B2", p)
	}
	if p := BuildSymbols(d, systems, music.ClefAlto)[0].Pitch.String(); p != "B3" {
		t.Errorf("alto middle line = %s, want B3", p)
	}
}

func TestBuildSymbolsNoStaff(t *testing.T) {
	symbols := BuildSymbols([]Detection{det(music.QuarterNote, 100, 200)}, nil, music.ClefTreble)
	if symbols[0].Pitch != music.MiddleC {
		t.Errorf("no staff should fall back to middle C, got %s", symbols[0].Pitch)
	}
}

func TestBuildSymbolsDurations(t *testing.T) {
	detections := []Detection{
		det(music.HalfNote, 100, 200),
		det(music.QuarterRest, 140, 200),
		det(music.EighthNote, 180, 200),
	}
	symbols := BuildSymbols(detections, fallbackSystems(), music.ClefTreble)
	want := []float64{2.0, 1.0, 0.5}
	for i, w := range want {
		if symbols[i].Duration != w {
			t.Errorf("symbol %d duration = %v, want %v", i, symbols[i].Duration, w)
		}
	}
	// Rests carry duration but never a pitch.
	if symbols[1].Pitch != (music.Pitch{}) {
		t.Errorf("rest acquired a pitch: %v", symbols[1].Pitch)
	}
}

func TestDefaultStubFeedsPipeline(t *testing.T) {
	dets, err := DefaultStub().Detect(nil)
	if err != nil {
		t.Fatal(err)
	}
	symbols := BuildSymbols(dets, fallbackSystems(), music.ClefTreble)
	if len(symbols) != 2 {
		t.Fatalf("expected 2 symbols, got %d", len(symbols))
	}
	if symbols[0].Pitch.String() != "G4" {
		t.Errorf("quarter note pitch = %s, want G4", symbols[0].Pitch)
	}
	if symbols[1].Pitch.String() != "A4" {
		t.Errorf("half note pitch = %s, want A4", symbols[1].Pitch)
	}
}
