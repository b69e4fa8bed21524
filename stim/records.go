package stim

// The record structs mirror the instrument's stimulus template layout as the
// file parser exposes it. Field names follow the stored record fields rather
// than Go conventions so that they line up with the format documentation.

// StimulusRecord carries the per-stimulus acquisition settings a segment
// needs. SampleInterval is the time between samples in seconds and fixes the
// x-spacing of every segment in the stimulus.
type StimulusRecord struct {
	SampleInterval float64
}

// ChannelRecord carries the per-channel stimulus settings: the holding value
// a segment may reference as its amplitude, and the shape parameters of the
// square and chirp generators. Amplitudes are stored in V for voltage clamp
// and µA for current clamp.
//
//nolint:revive
type ChannelRecord struct {
	Holding float64

	Square_PosAmpl   float64 // peak amplitude of the positive half cycle
	Square_NegAmpl   float64 // stored negative amplitude; not used by synthesis
	Square_Cycle     float64 // duration of one full cycle in seconds
	Square_DurFactor float64 // positive-duration factor; only 0 is supported
	Square_BaseIncr  float64 // base increment; only 0 is supported
	Square_Kind      string  // square kind tag; only "Common Frequency" is supported

	Chirp_Amplitude float64 // half of the peak-to-peak amplitude
	Chirp_StartFreq float64 // instantaneous frequency at segment start, Hz
	Chirp_EndFreq   float64 // instantaneous frequency at segment end, Hz
	Chirp_Kind      string  // "Linear" or "Exponential"
}

// SegmentRecord describes one stimulus segment: its class tag, duration,
// amplitude source and the stepping rules for both axes. DeltaTFactor and
// DeltaTIncrement step the duration, DeltaVFactor and DeltaVIncrement the
// amplitude; a factor of 1 and an increment of 0 mean the axis does not step.
type SegmentRecord struct {
	Class string

	Duration      float64 // seconds
	Voltage       float64
	VoltageSource string

	DurationIncMode string
	DeltaTFactor    float64
	DeltaTIncrement float64

	VoltageIncMode  string
	DeltaVFactor    float64
	DeltaVIncrement float64
}
