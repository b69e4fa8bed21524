package analyze

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	ErrShortSignal       = errors.New("analyze: signal must hold at least two samples")
	ErrInvalidSampleRate = errors.New("analyze: sample rate must be positive")
	ErrWindowBounds      = errors.New("analyze: window exceeds signal bounds")
)

// PeakFrequency estimates the dominant frequency of a waveform in Hz.
//
// The signal is mean-removed, Hann-windowed, zero-padded to a power of two,
// and transformed; the strongest bin between DC and Nyquist wins and a
// parabolic fit through it and its neighbours refines the estimate to a
// fraction of a bin. A signal with no spectral peak above zero (flat,
// all-zero, or non-finite) reports 0.
func PeakFrequency(signal []float64, sampleRate float64) (float64, error) {
	if len(signal) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrShortSignal, len(signal))
	}
	if !(sampleRate > 0) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidSampleRate, sampleRate)
	}

	n := len(signal)
	fftSize := nextPowerOf2(n)

	mean := 0.0
	for _, v := range signal {
		mean += v
	}
	mean /= float64(n)

	// Hann window over the original length; the padding stays zero.
	in := make([]complex128, fftSize)
	scale := 2 * math.Pi / float64(n-1)
	for i, v := range signal {
		w := 0.5 * (1 - math.Cos(scale*float64(i)))
		in[i] = complex((v-mean)*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("analyze: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("analyze: fft: %w", err)
	}

	// One-sided magnitude spectrum, bins 0..Nyquist.
	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := 0; i < half; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	bestBin := 0
	bestVal := 0.0
	for i := 1; i < half; i++ {
		if mag[i] > bestVal {
			bestVal = mag[i]
			bestBin = i
		}
	}
	if bestBin == 0 {
		return 0, nil
	}

	return (float64(bestBin) + peakOffset(mag, bestBin)) * sampleRate / float64(fftSize), nil
}

// peakOffset fits a parabola through the peak bin and its two neighbours and
// returns the fractional bin offset of the vertex, clamped to [-0.5, 0.5]. A
// peak at the edge of the spectrum, or one whose neighbourhood is not concave,
// stays on its bin centre.
func peakOffset(mag []float64, bin int) float64 {
	if bin < 1 || bin >= len(mag)-1 {
		return 0
	}

	denom := mag[bin-1] - 2*mag[bin] + mag[bin+1]
	if !(denom < 0) {
		return 0
	}

	d := 0.5 * (mag[bin-1] - mag[bin+1]) / denom
	if d < -0.5 {
		return -0.5
	}
	if d > 0.5 {
		return 0.5
	}

	return d
}

// PeakFrequencyAt estimates the dominant frequency of the window
// signal[start : start+length], for probing one region of a sweep (a single
// segment, say) without copying it out first.
func PeakFrequencyAt(signal []float64, sampleRate float64, start, length int) (float64, error) {
	if start < 0 || length < 0 || start+length > len(signal) {
		return 0, fmt.Errorf("%w: [%d, %d) of %d samples",
			ErrWindowBounds, start, start+length, len(signal))
	}

	return PeakFrequency(signal[start:start+length], sampleRate)
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
