// Package pipeline implements the incremental chunked-transcription
// pipeline: periodic overlapping chunk extraction while recording, a
// FIFO queue that finishes each stopped recording as a unit, and the
// controller that wires capture, focus and delivery together.
package pipeline

import (
	"sync"

	"github.com/soliblue/dictate/internal/audio"
	"github.com/soliblue/dictate/internal/transcribe"
	"github.com/soliblue/dictate/internal/transcript"
)

// Scheduler periodically extracts an overlapping window of new audio
// from the session's sample buffer, transcribes it, and merges the
// result into the accumulated live text.
//
// Each window re-includes the last overlap seconds of audio already
// transcribed, so words split at a chunk edge are re-decoded with
// context. Results are applied only while their session is still the
// active one; a new recording silently invalidates anything in flight.
type Scheduler struct {
	tr         transcribe.Transcriber
	chunkSec   float64
	overlapSec float64
	onLiveText func(string)

	mu          sync.Mutex
	buf         *audio.SampleBuffer
	session     uint64
	recording   bool
	busy        bool
	lastEnd     int // samples already covered by a prior chunk's end
	accumulated string
}

// NewScheduler creates a Scheduler. onLiveText may be nil.
func NewScheduler(tr transcribe.Transcriber, chunkSec, overlapSec float64, onLiveText func(string)) *Scheduler {
	return &Scheduler{
		tr:         tr,
		chunkSec:   chunkSec,
		overlapSec: overlapSec,
		onLiveText: onLiveText,
	}
}

// Begin starts chunking a new session against buf. Any in-flight chunk
// of a previous session becomes stale and will be discarded when it
// completes.
func (s *Scheduler) Begin(session uint64, buf *audio.SampleBuffer) {
	s.mu.Lock()
	s.session = session
	s.buf = buf
	s.recording = true
	s.lastEnd = 0
	s.accumulated = ""
	s.mu.Unlock()
}

// End stops chunking and returns the boundary the final-tail extraction
// should start from, plus the text accumulated so far. An in-flight
// chunk is not cancelled; its late result may still update the live
// text but no longer affects the job built from these return values.
func (s *Scheduler) End() (tailStart int, accumulated string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recording = false

	tailStart = s.lastEnd - s.overlapSamples()
	if tailStart < 0 {
		tailStart = 0
	}
	return tailStart, s.accumulated
}

// Accumulated returns the current merged live text.
func (s *Scheduler) Accumulated() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accumulated
}

// Tick runs one scheduling pass. It is a no-op unless recording is
// active, no chunk is in flight, and at least one full chunk of audio
// has been captured. The transcription itself runs asynchronously; Tick
// never blocks on the model.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	if !s.recording || s.busy || s.buf == nil {
		s.mu.Unlock()
		return
	}

	rate := s.buf.Rate()
	total := s.buf.Len()
	if float64(total) < s.chunkSec*rate {
		// Not enough audio for a chunk yet.
		s.mu.Unlock()
		return
	}

	start := s.lastEnd - s.overlapSamples()
	if start < 0 {
		start = 0
	}
	window := s.buf.Range(start, total)
	s.lastEnd = total
	s.busy = true
	session := s.session
	s.mu.Unlock()

	go s.runChunk(session, window, rate)
}

// runChunk transcribes one window and merges the result if the session
// is still current. Chunk errors are swallowed: partial transcription
// is best-effort progress and the next tick retries on fresh audio.
func (s *Scheduler) runChunk(session uint64, window []float32, rate float64) {
	text, err := s.tr.Transcribe(audio.Resample(window, rate))

	s.mu.Lock()
	s.busy = false
	if err != nil || text == "" || session != s.session {
		s.mu.Unlock()
		return
	}
	s.accumulated = transcript.Merge(s.accumulated, text)
	merged := s.accumulated
	cb := s.onLiveText
	s.mu.Unlock()

	if cb != nil {
		cb(merged)
	}
}

// overlapSamples converts the overlap duration to a sample count at the
// current buffer's rate. Caller must hold s.mu.
func (s *Scheduler) overlapSamples() int {
	if s.buf == nil {
		return 0
	}
	return int(s.overlapSec * s.buf.Rate())
}
