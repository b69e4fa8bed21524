package stim

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Chirp sub-kinds stored in channel records.
const (
	chirpKindLinear      = "Linear"
	chirpKindExponential = "Exponential"
)

// ChirpSegment sweeps a sine from a start to an end frequency over the
// segment's duration, starting at phase zero (a sine, not a cosine).
type ChirpSegment struct {
	params
	amplitude float64
	startFreq float64
	endFreq   float64
	kind      string
}

// NewChirpSegment builds a chirp segment from its records. An exponential
// chirp needs start and end frequencies that are nonzero and share a sign,
// since its phase follows the logarithm of their ratio; kinds other than
// linear and exponential are rejected.
func NewChirpSegment(stimRec StimulusRecord, chanRec ChannelRecord, segRec SegmentRecord) (*ChirpSegment, error) {
	p, err := newParams(stimRec, segRec)
	if err != nil {
		return nil, err
	}

	if err := p.validateDeltas(); err != nil {
		return nil, err
	}

	s := &ChirpSegment{
		params:    p,
		amplitude: chanRec.Chirp_Amplitude,
		startFreq: chanRec.Chirp_StartFreq,
		endFreq:   chanRec.Chirp_EndFreq,
		kind:      chanRec.Chirp_Kind,
	}

	switch s.kind {
	case chirpKindLinear:
	case chirpKindExponential:
		if !(s.startFreq*s.endFreq > 0) {
			return nil, fmt.Errorf("%w: exponential chirp frequencies must be nonzero and share a sign, got %v and %v",
				ErrInvalidSegment, s.startFreq, s.endFreq)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, s.kind)
	}

	return s, nil
}

// Class reports ClassChirpwave.
func (s *ChirpSegment) Class() SegmentClass { return ClassChirpwave }

// Amplitude returns the base (sweep 0) amplitude in storage units.
func (s *ChirpSegment) Amplitude() float64 { return s.amplitude }

// FrequencyRange returns the start and end frequencies in Hz.
func (s *ChirpSegment) FrequencyRange() (start, end float64) {
	return s.startFreq, s.endFreq
}

// CreateArray synthesizes the chirp for the given sweep.
//
// The instantaneous phase is integrated in closed form over the stepped
// duration T. A linear chirp ramps frequency at k = (f1-f0)/T:
//
//	phase(t) = 2*pi * (f0*t + k*t*t/2)
//
// An exponential chirp multiplies frequency by f1/f0 over T:
//
//	phase(t) = 2*pi * beta * f0 * ((f1/f0)^(t/T) - 1),  beta = T / ln(f1/f0)
//
// degenerating to a plain tone when f0 == f1. The sample is sin(phase), so
// every sweep starts at zero and rises with the sign of the amplitude.
func (s *ChirpSegment) CreateArray(sweep int) ([]float64, error) {
	if err := checkSweep(sweep); err != nil {
		return nil, err
	}

	duration, amp, err := s.step(s.amplitude, sweep)
	if err != nil {
		return nil, err
	}

	n := s.numPoints(duration)
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	t := linspace(0, duration, n)
	f0, f1 := s.startFreq, s.endFreq

	if s.kind == chirpKindLinear {
		k := (f1 - f0) / duration
		for i, ti := range t {
			out[i] = math.Sin(2 * math.Pi * (f0*ti + 0.5*k*ti*ti))
		}
	} else if f0 == f1 {
		// Exponential sweep over a zero ratio is a plain tone.
		for i, ti := range t {
			out[i] = math.Sin(2 * math.Pi * f0 * ti)
		}
	} else {
		beta := duration / math.Log(f1/f0)
		ratio := f1 / f0
		for i, ti := range t {
			out[i] = math.Sin(2 * math.Pi * beta * f0 * (math.Pow(ratio, ti/duration) - 1))
		}
	}

	vecmath.ScaleBlock(out, out, amp)

	return out, nil
}
