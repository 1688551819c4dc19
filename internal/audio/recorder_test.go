package audio

import (
	"testing"
)

func TestNewRecorderAndClose(t *testing.T) {
	r, err := NewRecorder(16000, 1, func([]float32) {})
	if err != nil {
		t.Skipf("no audio backend available: %v", err)
	}
	defer func() {
		if err := r.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	}()

	if r.sampleRate != 16000 {
		t.Errorf("sampleRate = %d, want 16000", r.sampleRate)
	}
	if r.channels != 1 {
		t.Errorf("channels = %d, want 1", r.channels)
	}
	if r.IsRunning() {
		t.Error("IsRunning() should be false after creation")
	}
}

func TestNewRecorderNilCallback(t *testing.T) {
	if _, err := NewRecorder(16000, 1, nil); err == nil {
		t.Error("NewRecorder with nil callback should return error")
	}
}

func TestStopWithoutStart(t *testing.T) {
	r, err := NewRecorder(16000, 1, func([]float32) {})
	if err != nil {
		t.Skipf("no audio backend available: %v", err)
	}
	defer r.Close()

	r.Stop() // must not panic
	if r.IsRunning() {
		t.Error("IsRunning() should be false after Stop without Start")
	}
}

func TestBytesToFloat32(t *testing.T) {
	// 1.0 in little-endian float32 is 0x3F800000.
	data := []byte{0x00, 0x00, 0x80, 0x3F}
	samples := bytesToFloat32(data, 1)

	if len(samples) != 1 {
		t.Fatalf("bytesToFloat32() returned %d samples, want 1", len(samples))
	}
	if samples[0] != 1.0 {
		t.Errorf("bytesToFloat32() = %f, want 1.0", samples[0])
	}
}

func TestBytesToFloat32Truncated(t *testing.T) {
	// Second sample has only 2 of 4 bytes: it must be dropped, not read OOB.
	data := []byte{
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00,
	}
	samples := bytesToFloat32(data, 2)

	if len(samples) != 1 {
		t.Errorf("bytesToFloat32() returned %d samples, want 1", len(samples))
	}
}

func TestDownmixMono(t *testing.T) {
	// Stereo frames (L, R): (0.2, 0.4) and (1.0, 0.0).
	in := []float32{0.2, 0.4, 1.0, 0.0}
	out := downmixMono(in, 2)

	if len(out) != 2 {
		t.Fatalf("downmixMono() returned %d frames, want 2", len(out))
	}
	if diff := out[0] - 0.3; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("out[0] = %f, want 0.3", out[0])
	}
	if diff := out[1] - 0.5; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("out[1] = %f, want 0.5", out[1])
	}
}
