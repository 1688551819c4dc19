// Package transcribe provides speech-to-text backends for the pipeline.
//
// The pipeline depends only on the Transcriber interface; whisper.cpp is
// the production backend and Mock scripts results for tests.
package transcribe

import "github.com/soliblue/dictate/internal/config"

// Transcriber converts audio samples to text.
type Transcriber interface {
	// Transcribe converts mono 16kHz float32 audio samples to text.
	Transcribe(samples []float32) (string, error)
	// Close releases backend resources.
	Close() error
}

// New creates the production whisper-backed Transcriber from config.
func New(cfg *config.Config) (Transcriber, error) {
	return NewWhisperTranscriber(cfg.ModelPath, cfg.Language)
}
