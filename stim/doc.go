// Package stim reconstructs analog stimulus waveforms from the compact
// parametric descriptions stored by patch-clamp acquisition instruments.
//
// The instrument's file format does not store the stimulus as samples.
// Instead each sweep is described by a list of segments, and each segment by
// a handful of generator parameters: a class tag (constant hold, linear ramp,
// square wave, frequency chirp), a duration, an amplitude, and optional
// stepping rules that vary duration or amplitude deterministically from sweep
// to sweep. This package expands one segment description into a concrete
// sample slice for a requested sweep index.
//
// # Usage
//
// Build a segment from the three records the file parser provides, then
// synthesize one sweep at a time:
//
//	seg, err := stim.BuildSegment(stimRec, chanRec, segRec)
//	if err != nil {
//	    // unsupported class or parameters outside the implemented subset
//	}
//	samples, err := seg.CreateArray(0) // sweep 0
//
// Output units are mV for voltage-clamp and pA for current-clamp sources;
// the fixed 1e3 scale converts the record's V (or µA) amplitudes.
//
// Segments are immutable once built and never cache sweep results, so a
// single Segment may be queried concurrently for different sweep indices.
//
// # Supported subset
//
// The factory accepts the "Constant", "Ramp", "Squarewave" and "Chirpwave"
// classes; "Continuous" and "Sine" are not implemented. Square segments
// support only the "Common Frequency" kind without stepping. The legacy
// logarithmic increment mode cannot be reconstructed faithfully and yields
// NaN samples instead of failing; see [DeltaSpec.Apply].
package stim
