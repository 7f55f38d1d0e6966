package staff

// System is one physical staff: exactly five ascending line y-coordinates.
//
// Accepted systems always satisfy the spacing invariant checked by
// ValidSpacing: each of the four inter-line gaps lies within 20% of the
// gaps' mean.
type System struct {
	Lines [5]int `json:"lines"`
}

// spacingTolerance is the allowed relative deviation of each inter-line gap
// from the mean gap.
const spacingTolerance = 0.2

// Top returns the y-coordinate of the highest staff line.
func (s System) Top() int { return s.Lines[0] }

// Bottom returns the y-coordinate of the lowest staff line.
func (s System) Bottom() int { return s.Lines[4] }

// Center returns the mean of the five line positions.
func (s System) Center() float64 {
	sum := 0
	for _, y := range s.Lines {
		sum += y
	}
	return float64(sum) / 5
}

// Spacing returns the nominal inter-line distance, (bottom - top) / 4.
func (s System) Spacing() float64 {
	return float64(s.Bottom()-s.Top()) / 4
}

// ValidSpacing reports whether five line positions form a plausible staff:
// ascending, with every gap within 20% of the mean gap.
func ValidSpacing(lines [5]int) bool {
	var gaps [4]int
	total := 0
	for i := 0; i < 4; i++ {
		gaps[i] = lines[i+1] - lines[i]
		if gaps[i] <= 0 {
			return false
		}
		total += gaps[i]
	}
	mean := float64(total) / 4
	for _, g := range gaps {
		if diff := float64(g) - mean; diff > mean*spacingTolerance || -diff > mean*spacingTolerance {
			return false
		}
	}
	return true
}

// Fallback returns the synthetic single staff used when detection finds
// nothing. Analysis degrades to approximate pitches instead of aborting.
func Fallback() System {
	return System{Lines: [5]int{100, 150, 200, 250, 300}}
}

// Group scans sorted line midpoints with a sliding window of five and
// collects every window that passes the spacing check. On acceptance the
// scan advances past the whole window so systems never overlap; on rejection
// it advances by one and retries.
func Group(midpoints []int) []System {
	var systems []System
	i := 0
	for i+5 <= len(midpoints) {
		var candidate [5]int
		copy(candidate[:], midpoints[i:i+5])
		if ValidSpacing(candidate) {
			systems = append(systems, System{Lines: candidate})
			i += 5
		} else {
			i++
		}
	}
	return systems
}

// Nearest returns the system whose center is vertically closest to y.
// ok is false when systems is empty.
func Nearest(systems []System, y float64) (System, bool) {
	if len(systems) == 0 {
		return System{}, false
	}
	best := systems[0]
	bestDist := absFloat(best.Center() - y)
	for _, s := range systems[1:] {
		if d := absFloat(s.Center() - y); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best, true
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
