package midi

import (
	"bytes"
	"testing"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Ensemble-v1/ensemble-v1/internal/music"
)

type noteEvent struct {
	delta uint32
	key   uint8
	vel   uint8
	on    bool
}

// decode parses the encoded bytes back and extracts the note events of the
// single track.
func decode(t *testing.T, data []byte) (*smf.SMF, []noteEvent) {
	t.Helper()
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reading encoded file back: %v", err)
	}
	if len(s.Tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(s.Tracks))
	}

	var events []noteEvent
	var ch, key, vel uint8
	for _, ev := range s.Tracks[0] {
		switch {
		case ev.Message.GetNoteOn(&ch, &key, &vel):
			events = append(events, noteEvent{delta: ev.Delta, key: key, vel: vel, on: true})
		case ev.Message.GetNoteOff(&ch, &key, &vel):
			events = append(events, noteEvent{delta: ev.Delta, key: key, on: false})
		}
	}
	return s, events
}

func playableSymbol(kind music.SymbolKind, pitch music.Pitch) music.Symbol {
	return music.Symbol{Kind: kind, Pitch: pitch, Duration: kind.DurationBeats()}
}

func TestEncodeNoteTiming(t *testing.T) {
	symbols := []music.Symbol{
		playableSymbol(music.QuarterNote, music.Pitch{Letter: 'E', Octave: 4}),
		playableSymbol(music.HalfNote, music.Pitch{Letter: 'G', Octave: 4}),
	}
	data, err := EncodeBytes(symbols, 120)
	if err != nil {
		t.Fatal(err)
	}

	_, events := decode(t, data)
	want := []noteEvent{
		{delta: 0, key: 64, vel: Velocity, on: true},
		{delta: 960, key: 64, on: false},
		{delta: 0, key: 67, vel: Velocity, on: true},
		{delta: 1920, key: 67, on: false},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d note events, want %d", len(events), len(want))
	}
	for i, w := range want {
		if events[i] != w {
			t.Errorf("event %d = %+v, want %+v", i, events[i], w)
		}
	}
}

func TestEncodeRestAdvancesCursor(t *testing.T) {
	symbols := []music.Symbol{
		playableSymbol(music.QuarterNote, music.Pitch{Letter: 'C', Octave: 4}),
		playableSymbol(music.QuarterRest, music.Pitch{}),
		playableSymbol(music.QuarterNote, music.Pitch{Letter: 'D', Octave: 4}),
	}
	data, err := EncodeBytes(symbols, 120)
	if err != nil {
		t.Fatal(err)
	}

	_, events := decode(t, data)
	if len(events) != 4 {
		t.Fatalf("got %d note events, want 4", len(events))
	}
	// The rest produces no event but pushes the second note-on a full beat
	// past the first note-off.
	if events[2].delta != 960 {
		t.Errorf("note-on after rest has delta %d, want 960", events[2].delta)
	}
	if events[2].key != 62 {
		t.Errorf("second note key = %d, want 62", events[2].key)
	}
}

func TestEncodeHeaderEvents(t *testing.T) {
	symbols := []music.Symbol{
		playableSymbol(music.QuarterNote, music.Pitch{Letter: 'A', Octave: 4}),
	}
	data, err := EncodeBytes(symbols, 90)
	if err != nil {
		t.Fatal(err)
	}

	s, _ := decode(t, data)
	var (
		name      string
		bpm       float64
		foundName bool
		foundBPM  bool
	)
	for _, ev := range s.Tracks[0] {
		if ev.Message.GetMetaTrackName(&name) {
			foundName = true
		}
		if ev.Message.GetMetaTempo(&bpm) {
			foundBPM = true
		}
	}
	if !foundName || name != TrackName {
		t.Errorf("track name = %q (found=%v), want %q", name, foundName, TrackName)
	}
	if !foundBPM || bpm != 90 {
		t.Errorf("tempo = %v (found=%v), want 90", bpm, foundBPM)
	}
}

func TestEncodeTempoFallback(t *testing.T) {
	data, err := EncodeBytes(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := decode(t, data)
	var bpm float64
	for _, ev := range s.Tracks[0] {
		if ev.Message.GetMetaTempo(&bpm) {
			break
		}
	}
	if bpm != 120 {
		t.Errorf("tempo = %v, want the 120 fallback", bpm)
	}
}

func TestEncodeInvalidPitchUsesMiddleC(t *testing.T) {
	symbols := []music.Symbol{
		playableSymbol(music.QuarterNote, music.Pitch{Letter: 'X', Octave: 4}),
	}
	data, err := EncodeBytes(symbols, 120)
	if err != nil {
		t.Fatal(err)
	}
	_, events := decode(t, data)
	if len(events) == 0 || events[0].key != 60 {
		t.Fatalf("invalid pitch should encode as key 60, got %+v", events)
	}
}

func TestEncodeSkipsNonPlayable(t *testing.T) {
	symbols := []music.Symbol{
		{Kind: music.TrebleClef},
		{Kind: music.BarLine},
		playableSymbol(music.QuarterNote, music.Pitch{Letter: 'C', Octave: 4}),
	}
	data, err := EncodeBytes(symbols, 120)
	if err != nil {
		t.Fatal(err)
	}
	_, events := decode(t, data)
	if len(events) != 2 {
		t.Fatalf("got %d note events, want 2", len(events))
	}
	if events[0].delta != 0 {
		t.Errorf("clef and bar line must not advance time, first delta = %d", events[0].delta)
	}
}
