package music

import (
	"fmt"
	"strconv"
)

// Accidental is a chromatic alteration applied to a pitch letter.
type Accidental int

const (
	NoAccidental Accidental = iota
	AccSharp
	AccFlat
	AccNatural
	AccDoubleSharp
	AccDoubleFlat
)

// Semitones returns the chromatic offset the accidental contributes.
func (a Accidental) Semitones() int {
	switch a {
	case AccSharp:
		return 1
	case AccFlat:
		return -1
	case AccDoubleSharp:
		return 2
	case AccDoubleFlat:
		return -2
	default:
		return 0
	}
}

// String returns the conventional suffix: "#", "b", "##", "bb" or "".
func (a Accidental) String() string {
	switch a {
	case AccSharp:
		return "#"
	case AccFlat:
		return "b"
	case AccDoubleSharp:
		return "##"
	case AccDoubleFlat:
		return "bb"
	default:
		return ""
	}
}

// Name returns the accidental's class label as the detector names it, or ""
// for no alteration.
func (a Accidental) Name() string {
	switch a {
	case AccSharp:
		return "sharp"
	case AccFlat:
		return "flat"
	case AccNatural:
		return "natural"
	case AccDoubleSharp:
		return "double_sharp"
	case AccDoubleFlat:
		return "double_flat"
	default:
		return ""
	}
}

// MarshalText renders accidentals by class label in JSON responses.
func (a Accidental) MarshalText() ([]byte, error) {
	return []byte(a.Name()), nil
}

// Pitch is a structured note pitch: a letter A..G, an optional accidental and
// a scientific octave number (C4 is middle C). All pitch arithmetic happens
// on this structure; pitches are never mutated through their string form.
type Pitch struct {
	Letter     byte       // 'A'..'G'
	Accidental Accidental // chromatic alteration
	Octave     int        // scientific pitch notation octave
}

// MiddleC is the documented fallback pitch for empty staves, out-of-range
// ladder indexes and unparseable pitch strings.
var MiddleC = Pitch{Letter: 'C', Octave: 4}

// letterSemitones maps pitch letters to semitone offsets within an octave
// under standard 12-tone chromatic assignment (C=0 .. B=11).
var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Valid reports whether the letter is one of A..G.
func (p Pitch) Valid() bool {
	_, ok := letterSemitones[p.Letter]
	return ok
}

// MIDINumber converts the pitch to its MIDI note number,
// (octave + 1) * 12 + semitone offset, clamped into [0, 127].
// An invalid letter yields middle C (60).
func (p Pitch) MIDINumber() int {
	offset, ok := letterSemitones[p.Letter]
	if !ok {
		return MiddleC.MIDINumber()
	}
	n := (p.Octave+1)*12 + offset + p.Accidental.Semitones()
	if n < 0 {
		return 0
	}
	if n > 127 {
		return 127
	}
	return n
}

// WithAccidental returns a copy of the pitch carrying the given alteration.
// NoAccidental clears any prior alteration (a natural sign).
func (p Pitch) WithAccidental(a Accidental) Pitch {
	p.Accidental = a
	return p
}

// Transpose shifts the pitch by whole octaves. Finer transposition is done
// through accidentals; the pipeline never needs arbitrary semitone respelling.
func (p Pitch) Transpose(octaves int) Pitch {
	p.Octave += octaves
	return p
}

// String renders the pitch in scientific notation, e.g. "C4", "F#3", "Bb2".
func (p Pitch) String() string {
	if !p.Valid() {
		return MiddleC.String()
	}
	return fmt.Sprintf("%c%s%d", p.Letter, p.Accidental, p.Octave)
}

// MarshalText implements encoding.TextMarshaler so pitches serialize as
// their scientific notation in JSON responses.
func (p Pitch) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pitch) UnmarshalText(text []byte) error {
	parsed, err := ParsePitch(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePitch parses scientific pitch notation: a letter A..G (case
// insensitive), an optional accidental suffix (#, ##, b, bb) and an octave
// number which may be negative ("C4", "F#3", "Bbb-1").
func ParsePitch(s string) (Pitch, error) {
	if len(s) < 2 {
		return Pitch{}, fmt.Errorf("pitch %q too short", s)
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	if _, ok := letterSemitones[letter]; !ok {
		return Pitch{}, fmt.Errorf("pitch %q: invalid letter %q", s, s[0])
	}

	rest := s[1:]
	acc := NoAccidental
	switch {
	case len(rest) >= 2 && rest[:2] == "##":
		acc, rest = AccDoubleSharp, rest[2:]
	case len(rest) >= 2 && rest[:2] == "bb":
		acc, rest = AccDoubleFlat, rest[2:]
	case rest[0] == '#':
		acc, rest = AccSharp, rest[1:]
	case rest[0] == 'b':
		acc, rest = AccFlat, rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Pitch{}, fmt.Errorf("pitch %q: invalid octave %q", s, rest)
	}

	return Pitch{Letter: letter, Accidental: acc, Octave: octave}, nil
}
