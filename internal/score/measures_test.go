package score

import (
	"testing"

	"github.com/Ensemble-v1/ensemble-v1/internal/music"
)

func sym(kind music.SymbolKind, x int) music.Symbol {
	return music.Symbol{Kind: kind, Box: music.Box{X: x, Width: 10, Height: 10}}
}

func TestSegmentNoBarLines(t *testing.T) {
	symbols := []music.Symbol{
		sym(music.QuarterNote, 300),
		sym(music.QuarterNote, 100),
		sym(music.HalfNote, 200),
	}
	measures := SegmentMeasures(symbols)
	if len(measures) != 1 {
		t.Fatalf("expected 1 measure, got %d", len(measures))
	}
	// Sorted by x inside the measure.
	xs := []int{100, 200, 300}
	for i, s := range measures[0].Symbols {
		if s.Box.X != xs[i] {
			t.Errorf("position %d: x=%d, want %d", i, s.Box.X, xs[i])
		}
	}
}

func TestSegmentSplitsAtBarLines(t *testing.T) {
	symbols := []music.Symbol{
		sym(music.QuarterNote, 50),
		sym(music.QuarterNote, 100),
		sym(music.BarLine, 150),
		sym(music.HalfNote, 200),
		sym(music.BarLine, 250),
		sym(music.WholeNote, 300),
	}
	measures := SegmentMeasures(symbols)
	if len(measures) != 3 {
		t.Fatalf("expected 3 measures, got %d", len(measures))
	}
	wantLens := []int{2, 1, 1}
	for i, m := range measures {
		if len(m.Symbols) != wantLens[i] {
			t.Errorf("measure %d has %d symbols, want %d", i, len(m.Symbols), wantLens[i])
		}
		for _, s := range m.Symbols {
			if s.Kind.IsBarLine() {
				t.Errorf("measure %d contains a bar line", i)
			}
		}
	}
}

func TestSegmentBoundarySymbol(t *testing.T) {
	// A symbol exactly on a bar line's x starts the next measure: intervals
	// are half-open on the right.
	symbols := []music.Symbol{
		sym(music.QuarterNote, 100),
		sym(music.BarLine, 150),
		sym(music.QuarterNote, 150),
	}
	measures := SegmentMeasures(symbols)
	if len(measures) != 2 {
		t.Fatalf("expected 2 measures, got %d", len(measures))
	}
	if len(measures[0].Symbols) != 1 || len(measures[1].Symbols) != 1 {
		t.Errorf("boundary symbol in the wrong measure: %d + %d symbols",
			len(measures[0].Symbols), len(measures[1].Symbols))
	}
}

func TestSegmentDropsEmptyMeasures(t *testing.T) {
	symbols := []music.Symbol{
		sym(music.QuarterNote, 100),
		sym(music.BarLine, 150),
		sym(music.BarLine, 200), // adjacent bars: the candidate between is empty
		sym(music.BarLine, 250),
		sym(music.HalfNote, 300),
	}
	measures := SegmentMeasures(symbols)
	if len(measures) != 2 {
		t.Fatalf("expected 2 measures (empties dropped), got %d", len(measures))
	}
}

func TestSegmentOnlyBarLines(t *testing.T) {
	symbols := []music.Symbol{sym(music.BarLine, 100), sym(music.DoubleBarLine, 200)}
	if measures := SegmentMeasures(symbols); len(measures) != 0 {
		t.Errorf("bar lines alone produce no measures, got %d", len(measures))
	}
}

func TestSegmentIsPartition(t *testing.T) {
	symbols := []music.Symbol{
		sym(music.QuarterNote, 40),
		sym(music.EighthNote, 90),
		sym(music.BarLine, 120),
		sym(music.QuarterRest, 120),
		sym(music.HalfNote, 180),
		sym(music.DoubleBarLine, 220),
		sym(music.WholeNote, 260),
	}
	measures := SegmentMeasures(symbols)

	nonBar := 0
	for _, s := range symbols {
		if !s.Kind.IsBarLine() {
			nonBar++
		}
	}
	placed := 0
	for _, m := range measures {
		placed += len(m.Symbols)
	}
	if placed != nonBar {
		t.Errorf("partition placed %d symbols, want %d", placed, nonBar)
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	if measures := SegmentMeasures(nil); len(measures) != 0 {
		t.Errorf("no symbols should give no measures, got %d", len(measures))
	}
}
