// Package server is the HTTP front of the transcription service.
//
// It exposes one operation, POST /api/analyze, accepting a multipart image
// upload in the "sheet_music" field. Uploads are validated against the
// accepted extensions and size cap before anything touches the pipeline,
// stored under randomized names, analyzed (through the content-hash cache)
// and answered with the JSON envelope:
//
//	{"status": "success", "analysis": {...}, "midi_url": ..., "original_image_url": ...}
//	{"status": "error", "message": ...}
//
// Generated MIDI files and the stored uploads are served back under
// /static/. CORS is handled by rs/cors around the whole router; every
// failure path maps to a classified error kind, so clients never see an
// unstructured panic or stack.
package server
