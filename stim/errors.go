package stim

import "errors"

// Errors reported while building segments or synthesizing sweeps. Construction
// reports the first violated constraint, wrapped around one of these
// sentinels together with the offending value; once a segment is built,
// synthesis can only fail on a negative sweep index.
var (
	// ErrUnsupportedClass is returned by BuildSegment for class tags outside
	// the implemented set (for example "Sine" or "Continuous").
	ErrUnsupportedClass = errors.New("stim: unsupported segment class")

	// ErrUnsupportedSource is returned when a segment record's voltage source
	// is neither an explicit value nor the channel holding value.
	ErrUnsupportedSource = errors.New("stim: unsupported voltage source")

	// ErrUnsupportedKind is returned for chirp kinds other than "Linear" and
	// "Exponential".
	ErrUnsupportedKind = errors.New("stim: unsupported chirp kind")

	// ErrUnsupportedDeltaMode is returned when stepping is active but the
	// record's increment mode tag is not a known mode.
	ErrUnsupportedDeltaMode = errors.New("stim: unsupported increment mode")

	// ErrInvalidSegment is returned when a shape-specific parameter violates
	// the supported subset, such as a square segment with stepping enabled.
	ErrInvalidSegment = errors.New("stim: invalid segment parameters")

	// ErrNegativeSweep is returned by CreateArray for sweep indices below 0.
	ErrNegativeSweep = errors.New("stim: sweep index must be non-negative")
)
