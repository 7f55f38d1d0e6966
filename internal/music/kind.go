package music

// SymbolKind identifies one of the 47 musical symbol classes the detector is
// trained on. The numeric values match the detector's class ids exactly, so a
// raw class id converts with KindFromClassID rather than arithmetic on names.
type SymbolKind int

const (
	WholeNote SymbolKind = iota
	HalfNote
	QuarterNote
	EighthNote
	SixteenthNote
	ThirtySecondNote
	SixtyFourthNote
	WholeRest
	HalfRest
	QuarterRest
	EighthRest
	SixteenthRest
	ThirtySecondRest
	SixtyFourthRest
	TrebleClef
	BassClef
	AltoClef
	TenorClef
	Sharp
	Flat
	Natural
	DoubleSharp
	DoubleFlat
	TimeSig24
	TimeSig34
	TimeSig44
	TimeSig68
	TimeSig98
	TimeSig128
	CommonTime
	CutTime
	BarLine
	DoubleBarLine
	RepeatStart
	RepeatEnd
	Tie
	Slur
	Beam
	Dot
	Staccato
	Accent
	Fermata
	Trill
	Mordent
	Turn
	GraceNote
	Chord
	numKinds // sentinel, keep last
)

// NumKinds is the size of the closed class enumeration.
const NumKinds = int(numKinds)

var kindNames = [NumKinds]string{
	"whole_note", "half_note", "quarter_note", "eighth_note",
	"sixteenth_note", "thirty_second_note", "sixty_fourth_note",
	"whole_rest", "half_rest", "quarter_rest", "eighth_rest",
	"sixteenth_rest", "thirty_second_rest", "sixty_fourth_rest",
	"treble_clef", "bass_clef", "alto_clef", "tenor_clef",
	"sharp", "flat", "natural", "double_sharp", "double_flat",
	"time_signature_2_4", "time_signature_3_4", "time_signature_4_4",
	"time_signature_6_8", "time_signature_9_8", "time_signature_12_8",
	"common_time", "cut_time", "bar_line", "double_bar_line",
	"repeat_start", "repeat_end", "tie", "slur",
	"beam", "dot", "staccato", "accent",
	"fermata", "trill", "mordent", "turn",
	"grace_note", "chord",
}

// String returns the snake_case class label, e.g. "quarter_note".
func (k SymbolKind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return "unknown"
	}
	return kindNames[k]
}

// KindFromClassID maps a detector class id to its SymbolKind.
// ok is false for ids outside [0, 46].
func KindFromClassID(id int) (SymbolKind, bool) {
	if id < 0 || id >= NumKinds {
		return 0, false
	}
	return SymbolKind(id), true
}

// IsNote reports whether the kind is a pitched note head (whole note through
// sixty-fourth note). Grace notes and chords carry their own classes and are
// deliberately excluded; they have no duration entry.
func (k SymbolKind) IsNote() bool {
	return k >= WholeNote && k <= SixtyFourthNote
}

// IsRest reports whether the kind is a rest.
func (k SymbolKind) IsRest() bool {
	return k >= WholeRest && k <= SixtyFourthRest
}

// IsClef reports whether the kind is a clef symbol.
func (k SymbolKind) IsClef() bool {
	return k >= TrebleClef && k <= TenorClef
}

// IsAccidental reports whether the kind alters the pitch of a nearby note:
// sharp, flat, natural, double sharp or double flat.
func (k SymbolKind) IsAccidental() bool {
	return k >= Sharp && k <= DoubleFlat
}

// IsBarLine reports whether the kind delimits measures.
func (k SymbolKind) IsBarLine() bool {
	return k == BarLine || k == DoubleBarLine
}

// durationBeats maps note and rest kinds to their length in beats. A whole
// note spans a full 4/4 measure; each step down halves the value.
var durationBeats = map[SymbolKind]float64{
	WholeNote:        4.0,
	HalfNote:         2.0,
	QuarterNote:      1.0,
	EighthNote:       0.5,
	SixteenthNote:    0.25,
	ThirtySecondNote: 0.125,
	SixtyFourthNote:  0.0625,
	WholeRest:        4.0,
	HalfRest:         2.0,
	QuarterRest:      1.0,
	EighthRest:       0.5,
	SixteenthRest:    0.25,
	ThirtySecondRest: 0.125,
	SixtyFourthRest:  0.0625,
}

// DurationBeats returns the duration in beats for note and rest kinds.
// Every other kind gets a 1.0 beat placeholder; nothing downstream consumes
// it, but layout passes may.
func (k SymbolKind) DurationBeats() float64 {
	if d, ok := durationBeats[k]; ok {
		return d
	}
	return 1.0
}

// durationNames gives the human label used in the API note list.
var durationNames = map[SymbolKind]string{
	WholeNote:        "whole",
	HalfNote:         "half",
	QuarterNote:      "quarter",
	EighthNote:       "eighth",
	SixteenthNote:    "sixteenth",
	ThirtySecondNote: "thirty_second",
	SixtyFourthNote:  "sixty_fourth",
	WholeRest:        "whole",
	HalfRest:         "half",
	QuarterRest:      "quarter",
	EighthRest:       "eighth",
	SixteenthRest:    "sixteenth",
	ThirtySecondRest: "thirty_second",
	SixtyFourthRest:  "sixty_fourth",
}

// DurationName returns the duration label ("quarter", "half", ...) for note
// and rest kinds, or "" for kinds without a musical length.
func (k SymbolKind) DurationName() string {
	return durationNames[k]
}
