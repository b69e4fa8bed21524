package stim

import (
	"errors"
	"math"
	"testing"
)

func TestDeltaSpecHasDelta(t *testing.T) {
	tests := []struct {
		name string
		spec DeltaSpec
		want bool
	}{
		{"unit factor zero increment", DeltaSpec{Mode: DeltaModeInc, Factor: 1, Increment: 0}, false},
		{"non-unit factor", DeltaSpec{Mode: DeltaModeInc, Factor: 2, Increment: 0}, true},
		{"nonzero increment", DeltaSpec{Mode: DeltaModeInc, Factor: 1, Increment: 0.01}, true},
		{"zero factor counts as active", DeltaSpec{Mode: DeltaModeInc, Factor: 0, Increment: 0}, true},
		{"negative increment", DeltaSpec{Mode: DeltaModeInc, Factor: 1, Increment: -0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.HasDelta(); got != tt.want {
				t.Errorf("HasDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeltaSpecApplyInactive(t *testing.T) {
	// An inactive spec never consults its mode, so even a garbage mode tag
	// must pass values through untouched.
	spec := DeltaSpec{Mode: "Bogus", Factor: 1, Increment: 0}

	for sweep := 0; sweep < 5; sweep++ {
		got, err := spec.Apply(0.125, sweep)
		if err != nil {
			t.Fatalf("sweep %d: unexpected error %v", sweep, err)
		}
		if got != 0.125 {
			t.Errorf("sweep %d: Apply() = %v, want 0.125", sweep, got)
		}
	}
}

func TestDeltaSpecApplyIncrement(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		inc   float64
		sweep int
		want  float64
	}{
		{"sweep zero is base", 0.5, 0.125, 0, 0.5},
		{"single step", 0.5, 0.125, 1, 0.625},
		{"three steps", 0.5, 0.125, 3, 0.875},
		{"negative increment", 1, -0.25, 2, 0.5},
		{"zero base", 0, 0.25, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DeltaSpec{Mode: DeltaModeInc, Factor: 1, Increment: tt.inc}
			got, err := spec.Apply(tt.base, tt.sweep)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply(%v, %d) = %v, want %v", tt.base, tt.sweep, got, tt.want)
			}
		})
	}
}

func TestDeltaSpecApplyIsPure(t *testing.T) {
	// No hidden counters: repeated application with the same sweep index
	// yields the same value.
	spec := DeltaSpec{Mode: DeltaModeInc, Factor: 1, Increment: 0.25}

	first, err := spec.Apply(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	second, err := spec.Apply(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("repeated Apply differs: %v vs %v", first, second)
	}
}

func TestDeltaSpecApplyLogIncrement(t *testing.T) {
	spec := DeltaSpec{Mode: DeltaModeLogInc, Factor: 1, Increment: 0.01}

	for sweep := 0; sweep < 4; sweep++ {
		got, err := spec.Apply(0.5, sweep)
		if err != nil {
			t.Fatalf("sweep %d: unexpected error %v", sweep, err)
		}
		if !math.IsNaN(got) {
			t.Errorf("sweep %d: Apply() = %v, want NaN", sweep, got)
		}
	}
}

func TestDeltaSpecApplyUnknownMode(t *testing.T) {
	spec := DeltaSpec{Mode: "Dec", Factor: 1, Increment: 0.01}

	_, err := spec.Apply(0.5, 1)
	if !errors.Is(err, ErrUnsupportedDeltaMode) {
		t.Errorf("Apply() error = %v, want ErrUnsupportedDeltaMode", err)
	}
}
