package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ensemble-v1/ensemble-v1/internal/analyze"
)

// uploadField is the multipart form field carrying the sheet image.
const uploadField = "sheet_music"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleAnalyze accepts a multipart image upload, runs the analysis pipeline
// and returns the transcription summary plus URLs for the stored image and
// the generated MIDI file.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	// Reject oversized bodies early; a little slack covers multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1<<20)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if err := validateUpload(header.Filename, header.Size, s.cfg.MaxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, errorMessage(err))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	imageURL, err := s.saveUpload(header.Filename, data)
	if err != nil {
		s.log.Error("failed to store upload", "err", err)
		s.respondError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}

	hash := analyze.HashBytes(data)
	s.log.Info("processing upload", "file", header.Filename, "hash", hash)

	outcome, err := s.analyzer.AnalyzeBytes(data)
	if err != nil {
		s.log.Error("analysis failed", "hash", hash, "err", err)
		s.respondError(w, statusForError(err), errorMessage(err))
		return
	}

	midiURL, err := s.saveMIDI(hash, outcome.MIDI)
	if err != nil {
		s.log.Error("failed to store midi", "hash", hash, "err", err)
		s.respondError(w, http.StatusInternalServerError, "failed to store midi output")
		return
	}

	s.respondJSON(w, http.StatusOK, analyze.Result{
		Status:           "success",
		OriginalImageURL: imageURL,
		MIDIURL:          midiURL,
		Analysis:         outcome.Analysis,
	})
}

// saveUpload writes the raw upload under a random name, keeping the original
// extension, and returns its serving URL.
func (s *Server) saveUpload(original string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	name := fmt.Sprintf("sheet_music_%s%s", uuid.NewString(), ext)
	if err := os.WriteFile(filepath.Join(s.cfg.UploadDir, name), data, 0o644); err != nil {
		return "", err
	}
	return "/static/uploads/" + name, nil
}

// saveMIDI writes the encoded file named by content hash and returns its
// serving URL. Identical uploads overwrite with identical bytes.
func (s *Server) saveMIDI(hash string, data []byte) (string, error) {
	name := fmt.Sprintf("transcription_%s.mid", hash)
	if err := os.WriteFile(filepath.Join(s.cfg.AudioDir, name), data, 0o644); err != nil {
		return "", err
	}
	return "/static/audio/" + name, nil
}

// statusForError maps classified pipeline failures onto HTTP statuses:
// client-side problems (bad upload, undecodable image) are 400, pipeline
// failures are 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, analyze.ErrImageDecode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage strips nothing: classified errors already carry a client-safe
// description.
func errorMessage(err error) string {
	return err.Error()
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, analyze.Result{
		Status:  "error",
		Message: message,
	})
}
