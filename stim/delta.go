package stim

import (
	"fmt"
	"math"
)

// DeltaMode selects how a scalar steps from sweep to sweep. The constants
// are the mode tags the instrument stores in its segment records.
type DeltaMode string

const (
	// DeltaModeInc adds a fixed increment once per sweep.
	DeltaModeInc DeltaMode = "Inc"

	// DeltaModeLogInc is the legacy logarithmic increment. The format defines
	// two distinct logarithmic conventions (X*Factor and dX*Factor) that the
	// stored fields cannot tell apart, so this mode yields NaN; see
	// [DeltaSpec.Apply].
	DeltaModeLogInc DeltaMode = "LogInc"
)

// DeltaSpec describes the sweep-to-sweep stepping of one scalar, either a
// segment's duration ("x") or its amplitude ("y"). A spec is active when
// Factor differs from 1 or Increment differs from 0; an inactive spec leaves
// the value untouched and its Mode is never consulted, which matches how the
// instrument writes records with stepping disabled.
type DeltaSpec struct {
	Mode      DeltaMode
	Factor    float64
	Increment float64
}

// HasDelta reports whether the spec steps its value at all.
func (d DeltaSpec) HasDelta() bool {
	return d.Factor != 1.0 || d.Increment != 0.0
}

// Apply returns base stepped for the given sweep index. It is a pure
// function of its inputs: applying the same spec to the same base and sweep
// always yields the same value.
//
// For DeltaModeInc the result is base + Increment*sweep. For DeltaModeLogInc
// the result is always NaN: the two legacy logarithmic conventions cannot be
// distinguished from the stored fields, and guessing one would silently
// corrupt reconstructions, so the NaN is left to propagate into the output
// array as a visible marker instead. Any other mode on an active spec is an
// [ErrUnsupportedDeltaMode] error.
func (d DeltaSpec) Apply(base float64, sweep int) (float64, error) {
	if !d.HasDelta() {
		return base, nil
	}

	switch d.Mode {
	case DeltaModeInc:
		return base + d.Increment*float64(sweep), nil
	case DeltaModeLogInc:
		return math.NaN(), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDeltaMode, string(d.Mode))
	}
}

// validate rejects active specs with an unknown mode so that construction
// fails before any sweep is synthesized. Inactive specs accept any mode tag.
func (d DeltaSpec) validate() error {
	if !d.HasDelta() {
		return nil
	}

	switch d.Mode {
	case DeltaModeInc, DeltaModeLogInc:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDeltaMode, string(d.Mode))
	}
}
