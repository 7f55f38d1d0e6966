package analyze

import (
	"github.com/Ensemble-v1/ensemble-v1/internal/music"
	"github.com/Ensemble-v1/ensemble-v1/internal/score"
)

// Result is the response envelope exposed to the API layer. Status is
// "success" or "error"; Analysis is present only on success, Message only on
// error.
type Result struct {
	Status           string    `json:"status"`
	OriginalImageURL string    `json:"original_image_url,omitempty"`
	MIDIURL          string    `json:"midi_url,omitempty"`
	Analysis         *Analysis `json:"analysis,omitempty"`
	Message          string    `json:"message,omitempty"`
}

// Analysis is the transcription summary inside a successful Result.
type Analysis struct {
	BPM             int    `json:"bpm"`
	TimeSignature   string `json:"time_signature"`
	KeySignature    string `json:"key_signature"`
	Notes           []Note `json:"notes"`
	Measures        int    `json:"measures"`
	SymbolsDetected int    `json:"symbols_detected"`
}

// Note is one pitched note in the summary view.
type Note struct {
	Pitch    music.Pitch `json:"pitch"`
	Duration string      `json:"duration"`
	Box      music.Box   `json:"box"`
}

// summarize projects a transcription into the API analysis shape.
func summarize(t score.Transcription) *Analysis {
	notes := make([]Note, 0, len(t.Symbols))
	for _, s := range t.Notes() {
		notes = append(notes, Note{
			Pitch:    s.Pitch,
			Duration: s.Kind.DurationName(),
			Box:      s.Box,
		})
	}
	return &Analysis{
		BPM:             t.TempoBPM,
		TimeSignature:   t.TimeSignature,
		KeySignature:    t.KeySignature,
		Notes:           notes,
		Measures:        t.MeasureCount,
		SymbolsDetected: t.SymbolCount,
	}
}
