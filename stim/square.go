package stim

import "fmt"

// squareKindCommonFrequency is the only square sub-kind this package
// reconstructs: every channel of the series shares one cycle duration.
const squareKindCommonFrequency = "Common Frequency"

// SquareSegment alternates between a positive and a mirrored negative level
// with a fixed cycle duration.
type SquareSegment struct {
	params
	posAmp         float64
	negAmp         float64
	cycleDuration  float64
	durationFactor float64
	baseIncr       float64
	kind           string
}

// NewSquareSegment builds a square segment from its records. Only the plain
// common-frequency configuration is supported: a base increment, a duration
// factor, a non-common-frequency kind, per-sweep stepping, or a non-positive
// cycle duration are all rejected, in that order.
func NewSquareSegment(stimRec StimulusRecord, chanRec ChannelRecord, segRec SegmentRecord) (*SquareSegment, error) {
	p, err := newParams(stimRec, segRec)
	if err != nil {
		return nil, err
	}

	s := &SquareSegment{
		params:         p,
		posAmp:         chanRec.Square_PosAmpl,
		negAmp:         chanRec.Square_NegAmpl,
		cycleDuration:  chanRec.Square_Cycle,
		durationFactor: chanRec.Square_DurFactor,
		baseIncr:       chanRec.Square_BaseIncr,
		kind:           chanRec.Square_Kind,
	}

	switch {
	case s.baseIncr != 0:
		return nil, fmt.Errorf("%w: square base increment must be zero, got %v",
			ErrInvalidSegment, s.baseIncr)
	case s.durationFactor != 0:
		return nil, fmt.Errorf("%w: square duration factor must be zero, got %v",
			ErrInvalidSegment, s.durationFactor)
	case s.kind != squareKindCommonFrequency:
		return nil, fmt.Errorf("%w: square kind must be %q, got %q",
			ErrInvalidSegment, squareKindCommonFrequency, s.kind)
	case s.HasXDelta() || s.HasYDelta():
		return nil, fmt.Errorf("%w: square segments do not support per-sweep stepping",
			ErrInvalidSegment)
	case !(s.cycleDuration > 0):
		return nil, fmt.Errorf("%w: square cycle duration must be positive, got %v",
			ErrInvalidSegment, s.cycleDuration)
	}

	return s, nil
}

// Class reports ClassSquarewave.
func (s *SquareSegment) Class() SegmentClass { return ClassSquarewave }

// CycleDuration returns the cycle duration in seconds.
func (s *SquareSegment) CycleDuration() float64 { return s.cycleDuration }

// Amplitudes returns the stored positive and negative peak amplitudes in
// storage units. Synthesis mirrors the positive amplitude for the low half of
// each cycle; the stored negative amplitude is informational.
func (s *SquareSegment) Amplitudes() (pos, neg float64) {
	return s.posAmp, s.negAmp
}

// CreateArray synthesizes the square wave for the given sweep. Each cycle
// spends its first half at the positive amplitude and the rest at the mirrored
// negative level; the pattern repeats until the segment's length is filled, so
// a duration that is not a whole number of cycles ends mid-cycle. Stepping is
// rejected at construction, so the sweep index only gates on sign here.
func (s *SquareSegment) CreateArray(sweep int) ([]float64, error) {
	if err := checkSweep(sweep); err != nil {
		return nil, err
	}

	n := s.numPoints(s.duration)
	out := make([]float64, n)

	cyclePoints := SampleCount(s.cycleDuration, s.sampleInterval)
	if cyclePoints == 0 {
		// Cycle shorter than one sample: nothing to alternate.
		return out, nil
	}

	high := scaleAmplitude(s.posAmp)
	low := scaleAmplitude(-s.posAmp)
	half := cyclePoints / 2

	for i := range out {
		if i%cyclePoints < half {
			out[i] = high
		} else {
			out[i] = low
		}
	}

	return out, nil
}
