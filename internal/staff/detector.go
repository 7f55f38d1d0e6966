package staff

import (
	"image"
	"sort"

	"github.com/Ensemble-v1/ensemble-v1/internal/imaging"
)

// Detector finds staff systems in a page image using classical geometry:
// adaptive binarization, a wide horizontal opening, line-segment extraction
// with gap bridging, and window-of-five grouping of the segment midpoints.
type Detector struct {
	// MinLengthFrac is the minimum segment length as a fraction of image
	// width. Staff lines span most of the page; anything shorter is a beam,
	// a tie, or noise.
	MinLengthFrac float64

	// MaxGap is the widest break (in pixels) bridged inside one segment.
	// Symbols drawn over a staff line interrupt its pixel run.
	MaxGap int

	// MaxSkew is the maximum height difference between a segment's endpoints
	// for it to count as horizontal.
	MaxSkew int

	// ThresholdWindow is the adaptive binarization neighborhood side.
	ThresholdWindow int

	// OpeningLength is the horizontal structuring element length.
	OpeningLength int
}

// NewDetector returns a detector with the tuning that works for phone photos
// of printed scores.
func NewDetector() *Detector {
	return &Detector{
		MinLengthFrac:   0.3,
		MaxGap:          10,
		MaxSkew:         10,
		ThresholdWindow: imaging.DefaultThresholdWindow,
		OpeningLength:   25,
	}
}

// Detect returns the staff systems found in the image, ordered top to
// bottom. An image with no detectable staves yields an empty slice, never an
// error: callers substitute Fallback() and continue.
func (d *Detector) Detect(img image.Image) []System {
	mask := imaging.InkMask(img, d.ThresholdWindow)
	mask = imaging.OpenHorizontal(mask, d.OpeningLength)

	segments := d.findSegments(mask, img.Bounds().Dx())
	midpoints := collapseMidpoints(segments)
	return Group(midpoints)
}

// lineSegment is a near-horizontal ink run found in the opened mask.
type lineSegment struct {
	y0, y1 int // row of the first and last pixel
	x0, x1 int // horizontal extent
}

func (s lineSegment) length() int { return s.x1 - s.x0 + 1 }

// midY is the vertical midpoint the segment collapses to.
func (s lineSegment) midY() int { return (s.y0 + s.y1) / 2 }

// findSegments extracts long horizontal runs row by row, bridging breaks up
// to MaxGap pixels wide. Runs from adjacent rows whose extents overlap are
// merged into one segment, so a 3px-thick printed line (or a slightly skewed
// one crossing rows) yields a single segment as long as its total rise stays
// within MaxSkew.
func (d *Detector) findSegments(mask [][]bool, imageWidth int) []lineSegment {
	minLength := int(d.MinLengthFrac * float64(imageWidth))
	if minLength < 1 {
		minLength = 1
	}

	var open []lineSegment // segments still growing downward
	var done []lineSegment

	for y := 0; y < len(mask); y++ {
		runs := bridgedRuns(mask[y], d.MaxGap)

		var next []lineSegment
		for _, r := range runs {
			merged := false
			for i, seg := range open {
				if seg.y1 == y-1 && r.x0 <= seg.x1 && r.x1 >= seg.x0 && y-seg.y0 <= d.MaxSkew {
					seg.y1 = y
					seg.x0 = minOf(seg.x0, r.x0)
					seg.x1 = maxOf(seg.x1, r.x1)
					next = append(next, seg)
					open = append(open[:i], open[i+1:]...)
					merged = true
					break
				}
			}
			if !merged {
				next = append(next, lineSegment{y0: y, y1: y, x0: r.x0, x1: r.x1})
			}
		}

		// Segments that found no continuation in this row are finished.
		done = append(done, open...)
		open = next
	}
	done = append(done, open...)

	var long []lineSegment
	for _, seg := range done {
		if seg.length() >= minLength && seg.y1-seg.y0 < d.MaxSkew {
			long = append(long, seg)
		}
	}
	return long
}

type run struct{ x0, x1 int }

// bridgedRuns returns the ink runs of one row, joining runs separated by at
// most maxGap background pixels.
func bridgedRuns(row []bool, maxGap int) []run {
	var runs []run
	start := -1
	for x := 0; x < len(row); x++ {
		if row[x] {
			if start < 0 {
				start = x
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, run{x0: start, x1: x - 1})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, run{x0: start, x1: len(row) - 1})
	}

	if len(runs) < 2 {
		return runs
	}
	bridged := runs[:1]
	for _, r := range runs[1:] {
		last := &bridged[len(bridged)-1]
		if r.x0-last.x1-1 <= maxGap {
			last.x1 = r.x1
		} else {
			bridged = append(bridged, r)
		}
	}
	return bridged
}

// collapseMidpoints reduces each segment to its vertical midpoint, merges
// midpoints closer than two pixels (duplicate responses from one printed
// line), and returns them sorted ascending.
func collapseMidpoints(segments []lineSegment) []int {
	if len(segments) == 0 {
		return nil
	}
	mids := make([]int, 0, len(segments))
	for _, seg := range segments {
		mids = append(mids, seg.midY())
	}
	sort.Ints(mids)

	merged := mids[:1]
	for _, y := range mids[1:] {
		if y-merged[len(merged)-1] <= 2 {
			continue
		}
		merged = append(merged, y)
	}
	return merged
}

func minOf(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}
