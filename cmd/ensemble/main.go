// Command ensemble turns photographed sheet music into a structured
// transcription and a playable MIDI file, either as a one-shot CLI run or as
// an HTTP service.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ensemble-v1/ensemble-v1/internal/analyze"
	"github.com/Ensemble-v1/ensemble-v1/internal/config"
	"github.com/Ensemble-v1/ensemble-v1/internal/midi"
	"github.com/Ensemble-v1/ensemble-v1/internal/score"
	"github.com/Ensemble-v1/ensemble-v1/internal/server"
)

var (
	detectionsPath string
	midiOut        string
)

var rootCmd = &cobra.Command{
	Use:   "ensemble",
	Short: "Sheet music photo transcription",
	Long:  `Converts a photographed page of sheet music into a structured transcription and a playable MIDI file.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		initLogger(cfg.LogLevel)

		detector := buildDetector()
		analyzer, err := analyze.New(detector, cfg.CacheCapacity, slog.Default())
		if err != nil {
			return err
		}
		return server.New(cfg, analyzer, slog.Default()).Run()
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Analyze one image and print the transcription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		initLogger(cfg.LogLevel)

		analyzer, err := analyze.New(buildDetector(), cfg.CacheCapacity, slog.Default())
		if err != nil {
			return err
		}

		outcome, err := analyzer.AnalyzeFile(args[0])
		if err != nil {
			return err
		}

		out := midiOut
		if out == "" {
			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			out = base + ".mid"
		}
		if err := midi.WriteFile(out, outcome.Transcription.Playable(), outcome.Transcription.TempoBPM); err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outcome.Analysis); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", out)
		return nil
	},
}

// buildDetector picks the detector implementation: a JSON sidecar of model
// output when --detections is given, the fixed stub otherwise. The stub path
// mirrors running without a model and is loudly logged.
func buildDetector() score.Detector {
	if detectionsPath != "" {
		return &score.FileDetector{Path: detectionsPath}
	}
	slog.Warn("no detections file configured, using stub detection data")
	return score.DefaultStub()
}

// initLogger configures the shared slog logger so everything below main logs
// through one handler.
func initLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&detectionsPath, "detections", "",
		"JSON file with external detector output (class_id, confidence, box)")
	analyzeCmd.Flags().StringVarP(&midiOut, "out", "o", "", "output MIDI path (default: <image>.mid)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
