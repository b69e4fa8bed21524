package testutil

import "math"

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// InjectNaN returns a copy of signal with NaN written at the given positions.
// Out-of-range positions are ignored.
func InjectNaN(signal []float64, positions ...int) []float64 {
	out := make([]float64, len(signal))
	copy(out, signal)
	for _, p := range positions {
		if p >= 0 && p < len(out) {
			out[p] = math.NaN()
		}
	}
	return out
}
