package music

import (
	"encoding/json"
	"fmt"
)

// Box is an axis-aligned bounding box in pixel coordinates. It serializes as
// the 4-element array [x, y, width, height] the detector and the API speak.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 {
	return float64(b.X) + float64(b.Width)/2
}

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 {
	return float64(b.Y) + float64(b.Height)/2
}

// MarshalJSON encodes the box as [x, y, width, height].
func (b Box) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]int{b.X, b.Y, b.Width, b.Height})
}

// UnmarshalJSON decodes a [x, y, width, height] array.
func (b *Box) UnmarshalJSON(data []byte) error {
	var arr [4]int
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("box must be [x, y, width, height]: %w", err)
	}
	b.X, b.Y, b.Width, b.Height = arr[0], arr[1], arr[2], arr[3]
	return nil
}

// Symbol is one detected musical symbol with its musical interpretation
// attached. Pitch is only meaningful when Kind.IsNote() is true.
//
// Symbols are immutable after construction except for Pitch and Accidental,
// which the accidental binder alone rewrites.
type Symbol struct {
	Kind       SymbolKind `json:"class"`
	Confidence float64    `json:"confidence"`
	Box        Box        `json:"box"`
	Pitch      Pitch      `json:"pitch"`
	Duration   float64    `json:"duration"`
	Accidental Accidental `json:"accidental,omitempty"`
}

// MarshalText lets SymbolKind fields render as their class labels in JSON.
func (k SymbolKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a class label back into its SymbolKind.
func (k *SymbolKind) UnmarshalText(text []byte) error {
	name := string(text)
	for i, n := range kindNames {
		if n == name {
			*k = SymbolKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown symbol class %q", name)
}

// Measure is the ordered run of symbols between two consecutive bar lines.
type Measure struct {
	Symbols []Symbol `json:"symbols"`
}

// NoteCount returns how many pitched notes the measure holds.
func (m Measure) NoteCount() int {
	n := 0
	for _, s := range m.Symbols {
		if s.Kind.IsNote() {
			n++
		}
	}
	return n
}
