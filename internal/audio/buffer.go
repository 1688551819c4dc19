// Package audio provides microphone capture, the shared sample buffer,
// and sample-rate conversion for the dictation pipeline.
package audio

import "sync"

// SampleBuffer is a thread-safe growable store of captured audio samples.
// The capture callback appends to it from the real-time audio thread while
// the chunk scheduler reads snapshots from the control side, so every
// operation holds the lock only as long as a copy or append takes.
type SampleBuffer struct {
	mu      sync.Mutex
	samples []float32
	rate    float64
}

// NewSampleBuffer creates a buffer for samples captured at the given rate.
func NewSampleBuffer(rate float64) *SampleBuffer {
	return &SampleBuffer{rate: rate}
}

// Append adds captured samples. Safe to call from the audio callback.
func (b *SampleBuffer) Append(samples []float32) {
	b.mu.Lock()
	b.samples = append(b.samples, samples...)
	b.mu.Unlock()
}

// Snapshot returns a copy of all samples captured so far.
func (b *SampleBuffer) Snapshot() []float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]float32, len(b.samples))
	copy(out, b.samples)
	return out
}

// Range returns a copy of samples[from:to], clamping both bounds to the
// buffer. An empty or inverted range yields nil.
func (b *SampleBuffer) Range(from, to int) []float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if from < 0 {
		from = 0
	}
	if to > len(b.samples) {
		to = len(b.samples)
	}
	if from >= to {
		return nil
	}
	out := make([]float32, to-from)
	copy(out, b.samples[from:to])
	return out
}

// Len returns the number of samples captured so far without copying.
func (b *SampleBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.samples)
}

// Rate returns the sample rate the buffer was created with.
func (b *SampleBuffer) Rate() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rate
}

// Reset clears the buffer at session start, keeping capacity.
func (b *SampleBuffer) Reset() {
	b.mu.Lock()
	b.samples = b.samples[:0]
	b.mu.Unlock()
}
