package score

import (
	"sort"

	"github.com/Ensemble-v1/ensemble-v1/internal/music"
)

// SegmentMeasures partitions symbols into measures at bar-line positions.
//
// Symbols are sorted by x ascending. Bar lines (single or double) define the
// boundaries; each measure covers the half-open interval [prev, next) over
// bar-line x positions, with implicit sentinels at -inf before the first bar
// and +inf after the last. The half-open convention means a symbol sitting
// exactly on a bar line's x belongs to the measure starting there, so every
// non-bar symbol lands in exactly one measure. Candidate measures that end
// up empty are dropped rather than emitted.
//
// With no bar lines at all, the whole sorted sequence forms a single measure.
func SegmentMeasures(symbols []music.Symbol) []music.Measure {
	sorted := make([]music.Symbol, len(symbols))
	copy(sorted, symbols)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Box.X < sorted[j].Box.X
	})

	var bars []int
	for _, s := range sorted {
		if s.Kind.IsBarLine() {
			bars = append(bars, s.Box.X)
		}
	}

	var measures []music.Measure
	var current []music.Symbol
	flush := func() {
		if len(current) > 0 {
			measures = append(measures, music.Measure{Symbols: current})
			current = nil
		}
	}

	next := 0
	for _, s := range sorted {
		if s.Kind.IsBarLine() {
			continue
		}
		for next < len(bars) && s.Box.X >= bars[next] {
			flush()
			next++
		}
		current = append(current, s)
	}
	flush()

	return measures
}
