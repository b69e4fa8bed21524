package stim

// RampSegment rises (or falls) linearly from zero to its target amplitude.
type RampSegment struct {
	params
	amplitude float64
}

// NewRampSegment builds a ramp segment from its records. The target
// amplitude comes from the record's voltage source selector.
func NewRampSegment(stimRec StimulusRecord, chanRec ChannelRecord, segRec SegmentRecord) (*RampSegment, error) {
	p, err := newParams(stimRec, segRec)
	if err != nil {
		return nil, err
	}

	if err := p.validateDeltas(); err != nil {
		return nil, err
	}

	amplitude, err := resolveAmplitude(chanRec, segRec)
	if err != nil {
		return nil, err
	}

	return &RampSegment{params: p, amplitude: amplitude}, nil
}

// Class reports ClassRamp.
func (s *RampSegment) Class() SegmentClass { return ClassRamp }

// Amplitude returns the base (sweep 0) target amplitude in storage units.
func (s *RampSegment) Amplitude() float64 { return s.amplitude }

// CreateArray synthesizes the ramp for the given sweep. The first sample is
// always 0 and the last is the stepped, unit-converted amplitude; a one-point
// ramp therefore holds just the 0.
func (s *RampSegment) CreateArray(sweep int) ([]float64, error) {
	if err := checkSweep(sweep); err != nil {
		return nil, err
	}

	duration, amp, err := s.step(s.amplitude, sweep)
	if err != nil {
		return nil, err
	}

	n := s.numPoints(duration)
	if n == 0 {
		return []float64{}, nil
	}

	return linspace(0, amp, n), nil
}
