package music

// Clef fixes the pitch-to-line-position mapping for a staff.
type Clef int

const (
	ClefTreble Clef = iota
	ClefBass
	ClefAlto
)

// String returns the clef name.
func (c Clef) String() string {
	switch c {
	case ClefBass:
		return "bass"
	case ClefAlto:
		return "alto"
	default:
		return "treble"
	}
}

// ClefForKind maps clef symbol kinds to the ladder used for pitch lookup.
// The tenor clef shares the alto ladder: its dedicated table was never part
// of the trained vocabulary's pitch model.
func ClefForKind(k SymbolKind) (Clef, bool) {
	switch k {
	case TrebleClef:
		return ClefTreble, true
	case BassClef:
		return ClefBass, true
	case AltoClef, TenorClef:
		return ClefAlto, true
	default:
		return ClefTreble, false
	}
}

// Pitch ladders, one entry per position step moving down the staff.
// Index 5 is the middle staff line; smaller indexes sit higher on the page
// and sound higher.
var (
	trebleLadder = [11]Pitch{
		{Letter: 'E', Octave: 5}, {Letter: 'D', Octave: 5}, {Letter: 'C', Octave: 5},
		{Letter: 'B', Octave: 4}, {Letter: 'A', Octave: 4}, {Letter: 'G', Octave: 4},
		{Letter: 'F', Octave: 4}, {Letter: 'E', Octave: 4}, {Letter: 'D', Octave: 4},
		{Letter: 'C', Octave: 4}, {Letter: 'B', Octave: 3},
	}
	bassLadder = [11]Pitch{
		{Letter: 'G', Octave: 3}, {Letter: 'F', Octave: 3}, {Letter: 'E', Octave: 3},
		{Letter: 'D', Octave: 3}, {Letter: 'C', Octave: 3}, {Letter: 'B', Octave: 2},
		{Letter: 'A', Octave: 2}, {Letter: 'G', Octave: 2}, {Letter: 'F', Octave: 2},
		{Letter: 'E', Octave: 2}, {Letter: 'D', Octave: 2},
	}
	altoLadder = [11]Pitch{
		{Letter: 'G', Octave: 4}, {Letter: 'F', Octave: 4}, {Letter: 'E', Octave: 4},
		{Letter: 'D', Octave: 4}, {Letter: 'C', Octave: 4}, {Letter: 'B', Octave: 3},
		{Letter: 'A', Octave: 3}, {Letter: 'G', Octave: 3}, {Letter: 'F', Octave: 3},
		{Letter: 'E', Octave: 3}, {Letter: 'D', Octave: 3},
	}
)

// LadderSize is the number of vertical positions each clef ladder covers.
const LadderSize = 11

// PitchAt returns the ladder pitch for the given position index under this
// clef. ok is false when the index falls outside the ladder; callers fall
// back to middle C.
func (c Clef) PitchAt(index int) (Pitch, bool) {
	if index < 0 || index >= LadderSize {
		return MiddleC, false
	}
	switch c {
	case ClefBass:
		return bassLadder[index], true
	case ClefAlto:
		return altoLadder[index], true
	default:
		return trebleLadder[index], true
	}
}
