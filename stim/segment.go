package stim

import (
	"fmt"
	"math"
)

// amplitudeScale converts stored amplitudes to the output unit: volts to
// millivolts for voltage clamp, microamperes to picoamperes for current
// clamp. Both conversions happen to share the same factor.
const amplitudeScale = 1e3

// scaleAmplitude converts a stored amplitude to output units.
func scaleAmplitude(v float64) float64 {
	return v * amplitudeScale
}

// SegmentClass identifies the waveform shape of a stimulus segment.
type SegmentClass string

const (
	ClassConstant   SegmentClass = "Constant"
	ClassRamp       SegmentClass = "Ramp"
	ClassSquarewave SegmentClass = "Squarewave"
	ClassChirpwave  SegmentClass = "Chirpwave"
)

// VoltageSource selectors stored in segment records.
const (
	sourceConstant = "Constant"
	sourceHold     = "Hold"
)

// Segment reconstructs one stimulus segment's samples for any sweep of its
// series. Implementations are immutable after construction and safe for
// concurrent use.
type Segment interface {
	// Class reports the waveform shape.
	Class() SegmentClass

	// CreateArray synthesizes the segment's samples for the given zero-based
	// sweep index. The returned slice is freshly allocated on every call.
	CreateArray(sweep int) ([]float64, error)

	// Duration returns the base (sweep 0) duration in seconds.
	Duration() float64

	// SampleInterval returns the sampling interval in seconds.
	SampleInterval() float64

	// HasXDelta reports whether the duration steps across sweeps.
	HasXDelta() bool

	// HasYDelta reports whether the amplitude steps across sweeps.
	HasYDelta() bool
}

// params carries the fields every segment variant shares: base duration,
// sampling interval, and the two stepping specs.
type params struct {
	duration       float64
	sampleInterval float64
	xDelta         DeltaSpec
	yDelta         DeltaSpec
}

func newParams(stimRec StimulusRecord, segRec SegmentRecord) (params, error) {
	if !(stimRec.SampleInterval > 0) {
		return params{}, fmt.Errorf("%w: sample interval must be positive, got %v",
			ErrInvalidSegment, stimRec.SampleInterval)
	}

	p := params{
		duration:       segRec.Duration,
		sampleInterval: stimRec.SampleInterval,
		xDelta: DeltaSpec{
			Mode:      DeltaMode(segRec.DurationIncMode),
			Factor:    segRec.DeltaTFactor,
			Increment: segRec.DeltaTIncrement,
		},
		yDelta: DeltaSpec{
			Mode:      DeltaMode(segRec.VoltageIncMode),
			Factor:    segRec.DeltaVFactor,
			Increment: segRec.DeltaVIncrement,
		},
	}

	return p, nil
}

// validateDeltas rejects active stepping specs with an unknown mode. Variants
// that allow stepping call this during construction; Square skips it because
// it rejects active stepping outright first.
func (p params) validateDeltas() error {
	if err := p.xDelta.validate(); err != nil {
		return fmt.Errorf("duration stepping: %w", err)
	}

	if err := p.yDelta.validate(); err != nil {
		return fmt.Errorf("amplitude stepping: %w", err)
	}

	return nil
}

func (p params) Duration() float64       { return p.duration }
func (p params) SampleInterval() float64 { return p.sampleInterval }
func (p params) HasXDelta() bool         { return p.xDelta.HasDelta() }
func (p params) HasYDelta() bool         { return p.yDelta.HasDelta() }

// numPoints converts a duration to a sample count at the segment's interval.
func (p params) numPoints(duration float64) int {
	return SampleCount(duration, p.sampleInterval)
}

// step applies both delta specs for the given sweep and returns the stepped
// duration together with the stepped, unit-converted amplitude.
func (p params) step(amplitude float64, sweep int) (duration, scaledAmp float64, err error) {
	duration, err = p.xDelta.Apply(p.duration, sweep)
	if err != nil {
		return 0, 0, fmt.Errorf("duration stepping: %w", err)
	}

	amplitude, err = p.yDelta.Apply(amplitude, sweep)
	if err != nil {
		return 0, 0, fmt.Errorf("amplitude stepping: %w", err)
	}

	return duration, scaleAmplitude(amplitude), nil
}

// SampleCount converts a duration to a whole number of samples by truncating
// the quotient duration/sampleInterval toward zero. A quotient that is NaN,
// infinite, or negative yields 0, so a stepped duration that went negative or
// collapsed to NaN produces an empty segment rather than a panic.
func SampleCount(duration, sampleInterval float64) int {
	q := duration / sampleInterval
	if math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
		return 0
	}

	return int(math.Trunc(q))
}

// linspace fills a freshly allocated slice with n evenly spaced values from
// start to stop inclusive. It mirrors the usual endpoint conventions: n <= 0
// yields nil, n == 1 yields [start], and the final element is forced to stop
// so accumulated rounding never shifts the endpoint.
func linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop

	return out
}

func checkSweep(sweep int) error {
	if sweep < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeSweep, sweep)
	}
	return nil
}

// resolveAmplitude picks the base amplitude for constant and ramp segments
// from the record's voltage source selector: the segment's own voltage, or
// the channel's holding level.
func resolveAmplitude(chanRec ChannelRecord, segRec SegmentRecord) (float64, error) {
	switch segRec.VoltageSource {
	case sourceConstant:
		return segRec.Voltage, nil
	case sourceHold:
		return chanRec.Holding, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedSource, segRec.VoltageSource)
	}
}

// BuildSegment constructs the segment variant named by segRec.Class. All
// record validation happens here, so a returned Segment can synthesize any
// non-negative sweep without configuration errors (a LogInc stepping mode
// still yields NaN samples, as documented on [DeltaSpec.Apply]).
func BuildSegment(stimRec StimulusRecord, chanRec ChannelRecord, segRec SegmentRecord) (Segment, error) {
	switch SegmentClass(segRec.Class) {
	case ClassSquarewave:
		seg, err := NewSquareSegment(stimRec, chanRec, segRec)
		if err != nil {
			return nil, err
		}
		return seg, nil
	case ClassConstant:
		seg, err := NewConstantSegment(stimRec, chanRec, segRec)
		if err != nil {
			return nil, err
		}
		return seg, nil
	case ClassRamp:
		seg, err := NewRampSegment(stimRec, chanRec, segRec)
		if err != nil {
			return nil, err
		}
		return seg, nil
	case ClassChirpwave:
		seg, err := NewChirpSegment(stimRec, chanRec, segRec)
		if err != nil {
			return nil, err
		}
		return seg, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedClass, segRec.Class)
	}
}
