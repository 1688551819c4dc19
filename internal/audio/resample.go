package audio

import "math"

// WhisperRate is the sample rate whisper.cpp expects.
const WhisperRate = 16000

// Resample converts mono samples from fromRate to 16 kHz using linear
// interpolation. Input at 16 kHz is returned unchanged. This is a pure
// function: no side effects, no failure modes.
func Resample(samples []float32, fromRate float64) []float32 {
	if fromRate == WhisperRate {
		return samples
	}
	if len(samples) == 0 || fromRate <= 0 {
		return nil
	}

	ratio := WhisperRate / fromRate
	n := int(math.Floor(float64(len(samples)) * ratio))
	if n <= 0 {
		return nil
	}

	out := make([]float32, n)
	for i := 0; i < n; i++ {
		pos := float64(i) / ratio
		i0 := int(math.Floor(pos))
		i1 := i0 + 1
		if i1 >= len(samples) {
			i1 = len(samples) - 1
		}
		frac := float32(pos - float64(i0))
		out[i] = samples[i0]*(1-frac) + samples[i1]*frac
	}
	return out
}
