package score

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"github.com/Ensemble-v1/ensemble-v1/internal/music"
)

// Detection is one raw tuple from the object-detection model: a class id in
// [0, 46], a confidence score and an axis-aligned bounding box. The model has
// already filtered its output at confidence >= 0.25 and IoU <= 0.4, so no
// suppression happens here.
type Detection struct {
	ClassID    int       `json:"class_id"`
	Confidence float64   `json:"confidence"`
	Box        music.Box `json:"box"`
}

// Detector is the consumed contract of the external symbol-detection model.
// Implementations may return an empty slice; the pipeline tolerates it.
type Detector interface {
	Detect(img image.Image) ([]Detection, error)
}

// StubDetector returns a fixed detection list regardless of input. It stands
// in for the real model in tests and when no model endpoint is configured.
type StubDetector struct {
	Detections []Detection
}

// Detect returns the configured detections.
func (s *StubDetector) Detect(image.Image) ([]Detection, error) {
	return s.Detections, nil
}

// DefaultStub returns a stub producing one quarter note and one half note on
// the fallback staff, enough to exercise the whole pipeline end to end.
func DefaultStub() *StubDetector {
	return &StubDetector{
		Detections: []Detection{
			{ClassID: int(music.QuarterNote), Confidence: 0.85, Box: music.Box{X: 150, Y: 180, Width: 20, Height: 25}},
			{ClassID: int(music.HalfNote), Confidence: 0.90, Box: music.Box{X: 200, Y: 160, Width: 20, Height: 25}},
		},
	}
}

// FileDetector reads detector output from a JSON sidecar file: an array of
// {"class_id", "confidence", "box": [x, y, w, h]} objects. It lets the CLI
// run the reconstruction pipeline on output captured from a model elsewhere.
type FileDetector struct {
	Path string
}

// Detect loads and parses the sidecar file.
func (f *FileDetector) Detect(image.Image) ([]Detection, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read detections file: %w", err)
	}
	var dets []Detection
	if err := json.Unmarshal(data, &dets); err != nil {
		return nil, fmt.Errorf("failed to parse detections file %s: %w", f.Path, err)
	}
	return dets, nil
}
