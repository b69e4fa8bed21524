package stim

// ConstantSegment holds a fixed level for its duration.
type ConstantSegment struct {
	params
	amplitude float64
}

// NewConstantSegment builds a constant segment from its records. The base
// amplitude comes from the record's voltage source selector.
func NewConstantSegment(stimRec StimulusRecord, chanRec ChannelRecord, segRec SegmentRecord) (*ConstantSegment, error) {
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

	return &ConstantSegment{params: p, amplitude: amplitude}, nil
}

// Class reports ClassConstant.
func (s *ConstantSegment) Class() SegmentClass { return ClassConstant }

// Amplitude returns the base (sweep 0) amplitude in storage units.
func (s *ConstantSegment) Amplitude() float64 { return s.amplitude }

// CreateArray synthesizes the constant level for the given sweep.
func (s *ConstantSegment) CreateArray(sweep int) ([]float64, error) {
	if err := checkSweep(sweep); err != nil {
		return nil, err
	}

	duration, amp, err := s.step(s.amplitude, sweep)
	if err != nil {
		return nil, err
	}

	out := make([]float64, s.numPoints(duration))
	for i := range out {
		out[i] = amp
	}

	return out, nil
}
