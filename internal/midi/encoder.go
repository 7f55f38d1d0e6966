package midi

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Ensemble-v1/ensemble-v1/internal/music"
)

const (
	// TicksPerBeat is the SMF time resolution. All event times are beat
	// positions scaled by this and rounded to the nearest tick.
	TicksPerBeat = 960

	// Velocity is the fixed note-on velocity; the detector gives no dynamics.
	Velocity = 100

	// Channel carries every note of the single transcribed voice.
	Channel = 0

	// TrackName labels the single track in the output file.
	TrackName = "Transcribed Music"

	fallbackTempoBPM = 120
)

// Encode serializes notes and rests into a single-track Standard MIDI File.
//
// A monotonic time cursor starts at zero beats. Each note emits a note-on at
// the cursor, advances the cursor by the note's duration and emits the
// note-off at the new position. Rests advance the cursor silently. Symbols
// that are neither notes nor rests are ignored.
//
// The track opens with a track-name event, the tempo meta-event, a 4/4 meter
// and a C-major key signature, all at time zero. A note whose pitch carries
// an invalid letter encodes as middle C (the documented fallback in
// Pitch.MIDINumber) rather than failing the file.
func Encode(w io.Writer, symbols []music.Symbol, tempoBPM int) error {
	if tempoBPM <= 0 {
		tempoBPM = fallbackTempoBPM
	}

	clock := smf.MetricTicks(TicksPerBeat)
	s := smf.New()
	s.TimeFormat = clock

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(TrackName))
	tr.Add(0, smf.MetaTempo(float64(tempoBPM)))
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaKey(0, true, 0, false))

	var cursorBeats float64
	var lastTick uint32
	for _, sym := range symbols {
		switch {
		case sym.Kind.IsNote():
			key := uint8(sym.Pitch.MIDINumber())

			onTick := beatTick(cursorBeats)
			tr.Add(onTick-lastTick, midi.NoteOn(Channel, key, Velocity))
			lastTick = onTick

			cursorBeats += sym.Duration
			offTick := beatTick(cursorBeats)
			tr.Add(offTick-lastTick, midi.NoteOff(Channel, key))
			lastTick = offTick
		case sym.Kind.IsRest():
			cursorBeats += sym.Duration
		}
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("failed to assemble midi track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write midi stream: %w", err)
	}
	return nil
}

// EncodeBytes encodes the symbol sequence into an in-memory SMF byte slice.
func EncodeBytes(symbols []music.Symbol, tempoBPM int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, symbols, tempoBPM); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes the symbol sequence and writes it to path.
func WriteFile(path string, symbols []music.Symbol, tempoBPM int) error {
	data, err := EncodeBytes(symbols, tempoBPM)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write midi file: %w", err)
	}
	return nil
}

// beatTick converts a beat position to an absolute tick count.
func beatTick(beats float64) uint32 {
	return uint32(math.Round(beats * TicksPerBeat))
}
