package analyze

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/Ensemble-v1/ensemble-v1/internal/cache"
	"github.com/Ensemble-v1/ensemble-v1/internal/imaging"
	"github.com/Ensemble-v1/ensemble-v1/internal/midi"
	"github.com/Ensemble-v1/ensemble-v1/internal/score"
	"github.com/Ensemble-v1/ensemble-v1/internal/staff"
)

// Outcome bundles everything one analysis produces: the full transcription,
// its API summary and the encoded MIDI bytes. Outcomes are immutable once
// returned and safe to share between cache readers.
type Outcome struct {
	Transcription score.Transcription
	Analysis      *Analysis
	MIDI          []byte
}

// Analyzer runs the full reconstruction pipeline for single images. It holds
// no per-request state; one Analyzer serves concurrent requests.
type Analyzer struct {
	staffDetector *staff.Detector
	detector      score.Detector
	results       *cache.Cache[*Outcome]
	log           *slog.Logger
}

// New creates an analyzer around the given symbol detector. cacheCapacity
// bounds the content-hash result cache; log may be nil for slog.Default().
func New(detector score.Detector, cacheCapacity int, log *slog.Logger) (*Analyzer, error) {
	if log == nil {
		log = slog.Default()
	}
	results, err := cache.New[*Outcome](cacheCapacity)
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		staffDetector: staff.NewDetector(),
		detector:      detector,
		results:       results,
		log:           log,
	}, nil
}

// HashBytes returns the content hash used as cache key: hex MD5 of the raw
// image bytes. Content addressing means re-uploads of the same photo under
// different names still hit the cache.
func HashBytes(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// AnalyzeBytes analyzes one encoded image, going through the result cache.
// Concurrent calls with identical content share a single computation.
func (a *Analyzer) AnalyzeBytes(data []byte) (*Outcome, error) {
	hash := HashBytes(data)
	outcome, hit, err := a.results.Get(hash, func() (*Outcome, error) {
		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrImageDecode, err)
		}
		return a.AnalyzeImage(img)
	})
	if err != nil {
		return nil, err
	}
	if hit {
		a.log.Info("returning cached analysis", "hash", hash)
	}
	return outcome, nil
}

// AnalyzeFile reads, hashes and analyzes an image file.
func (a *Analyzer) AnalyzeFile(path string) (*Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImageDecode, err)
	}
	return a.AnalyzeBytes(data)
}

// AnalyzeImage runs the pipeline on a decoded image, bypassing the cache:
// staff detection, symbol detection, symbol building, accidental binding,
// measure segmentation, assembly and MIDI encoding.
func (a *Analyzer) AnalyzeImage(img image.Image) (*Outcome, error) {
	systems := a.staffDetector.Detect(img)
	if len(systems) == 0 {
		// Soft failure: a degraded transcription beats none at all.
		a.log.Warn("no staff lines detected, using fallback staff")
		systems = []staff.System{staff.Fallback()}
	} else {
		a.log.Info("staff detection complete", "systems", len(systems))
	}

	detections, err := a.detector.Detect(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDetection, err)
	}

	clef := score.InferClef(detections)
	symbols := score.BuildSymbols(detections, systems, clef)
	symbols = score.BindAccidentals(symbols)
	measures := score.SegmentMeasures(symbols)
	transcription := score.Assemble(symbols, measures)

	midiBytes, err := midi.EncodeBytes(transcription.Playable(), transcription.TempoBPM)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMIDIEncode, err)
	}

	a.log.Info("analysis complete",
		"clef", clef.String(),
		"symbols", transcription.SymbolCount,
		"measures", transcription.MeasureCount)

	return &Outcome{
		Transcription: transcription,
		Analysis:      summarize(transcription),
		MIDI:          midiBytes,
	}, nil
}
