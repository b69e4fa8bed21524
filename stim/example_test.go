package stim_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-stim/stim"
)

func ExampleBuildSegment() {
	stimRec := stim.StimulusRecord{SampleInterval: 0.001}
	segRec := stim.SegmentRecord{
		Class:         "Ramp",
		Duration:      0.01,
		Voltage:       0.05,
		VoltageSource: "Constant",
		DeltaTFactor:  1,
		DeltaVFactor:  1,
	}

	seg, err := stim.BuildSegment(stimRec, stim.ChannelRecord{}, segRec)
	if err != nil {
		panic(err)
	}

	samples, err := seg.CreateArray(0)
	if err != nil {
		panic(err)
	}

	fmt.Printf("class: %s\n", seg.Class())
	fmt.Printf("samples: %d\n", len(samples))
	fmt.Printf("first: %.1f mV\n", samples[0])
	fmt.Printf("last: %.1f mV\n", samples[len(samples)-1])

	// Output:
	// class: Ramp
	// samples: 10
	// first: 0.0 mV
	// last: 50.0 mV
}

func ExampleDeltaSpec_Apply() {
	// A 10 mV increment per sweep on a 20 mV base level.
	spec := stim.DeltaSpec{Mode: stim.DeltaModeInc, Factor: 1, Increment: 0.01}

	for sweep := 0; sweep < 4; sweep++ {
		v, err := spec.Apply(0.02, sweep)
		if err != nil {
			panic(err)
		}
		fmt.Printf("sweep %d: %.2f V\n", sweep, v)
	}

	// Output:
	// sweep 0: 0.02 V
	// sweep 1: 0.03 V
	// sweep 2: 0.04 V
	// sweep 3: 0.05 V
}

func ExampleConstantSegment_CreateArray() {
	stimRec := stim.StimulusRecord{SampleInterval: 0.001}
	segRec := stim.SegmentRecord{
		Class:           "Constant",
		Duration:        0.01,
		Voltage:         0.02,
		VoltageSource:   "Constant",
		DeltaTFactor:    1,
		DeltaVFactor:    1,
		VoltageIncMode:  "Inc",
		DeltaVIncrement: 0.01,
	}

	seg, err := stim.NewConstantSegment(stimRec, stim.ChannelRecord{}, segRec)
	if err != nil {
		panic(err)
	}

	for sweep := 0; sweep < 3; sweep++ {
		samples, err := seg.CreateArray(sweep)
		if err != nil {
			panic(err)
		}
		fmt.Printf("sweep %d: %d samples at %.0f mV\n", sweep, len(samples), samples[0])
	}

	// Output:
	// sweep 0: 10 samples at 20 mV
	// sweep 1: 10 samples at 30 mV
	// sweep 2: 10 samples at 40 mV
}

func ExampleSquareSegment_CreateArray() {
	stimRec := stim.StimulusRecord{SampleInterval: 0.001}
	chanRec := stim.ChannelRecord{
		Square_PosAmpl: 0.1,   // 100 mV peak
		Square_Cycle:   0.004, // 4 samples per cycle
		Square_Kind:    "Common Frequency",
	}
	segRec := stim.SegmentRecord{
		Class:        "Squarewave",
		Duration:     0.01,
		DeltaTFactor: 1,
		DeltaVFactor: 1,
	}

	seg, err := stim.NewSquareSegment(stimRec, chanRec, segRec)
	if err != nil {
		panic(err)
	}

	samples, err := seg.CreateArray(0)
	if err != nil {
		panic(err)
	}

	fmt.Println(samples[:8])

	// Output:
	// [100 100 -100 -100 100 100 -100 -100]
}

func ExampleChirpSegment_CreateArray() {
	stimRec := stim.StimulusRecord{SampleInterval: 0.001}
	chanRec := stim.ChannelRecord{
		Chirp_Amplitude: 0.05, // 50 mV
		Chirp_StartFreq: 10,
		Chirp_EndFreq:   100,
		Chirp_Kind:      "Linear",
	}
	segRec := stim.SegmentRecord{
		Class:        "Chirpwave",
		Duration:     0.5,
		DeltaTFactor: 1,
		DeltaVFactor: 1,
	}

	seg, err := stim.NewChirpSegment(stimRec, chanRec, segRec)
	if err != nil {
		panic(err)
	}

	samples, err := seg.CreateArray(0)
	if err != nil {
		panic(err)
	}

	peak := 0.0
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	fmt.Printf("samples: %d\n", len(samples))
	fmt.Printf("start: %.1f mV\n", samples[0])
	fmt.Printf("peak: %.1f mV\n", peak)

	// Output:
	// samples: 500
	// start: 0.0 mV
	// peak: 50.0 mV
}
