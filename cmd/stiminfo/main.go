// Command stiminfo renders a stimulus segment from generator parameters and
// prints per-sweep waveform statistics.
//
// Usage:
//
//	stiminfo [flags] <class>
//
// Classes: constant, ramp, square, chirp.
//
// Examples:
//
//	stiminfo -duration 0.1 -amplitude 0.05 ramp
//	stiminfo -sweeps 4 -dvinc 0.01 constant
//	stiminfo -cycle 0.01 square
//	stiminfo -duration 1 -fstart 5 -fend 500 chirp
//	stiminfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-stim/analyze"
	"github.com/cwbudde/algo-stim/stim"
)

type classEntry struct {
	name  string
	class string // tag stored in segment records
}

var registry = []classEntry{
	{"constant", "Constant"},
	{"ramp", "Ramp"},
	{"square", "Squarewave"},
	{"chirp", "Chirpwave"},
}

func main() {
	interval := flag.Float64("interval", 0.001, "sample interval in seconds")
	duration := flag.Float64("duration", 0.1, "segment duration in seconds")
	sweeps := flag.Int("sweeps", 1, "number of sweeps to render")
	amplitude := flag.Float64("amplitude", 0.05, "amplitude in V (µA for current clamp)")
	holding := flag.Float64("holding", 0, "channel holding level in V, used with -source hold")
	source := flag.String("source", "constant", "amplitude source for constant/ramp: constant or hold")
	dtinc := flag.Float64("dtinc", 0, "per-sweep duration increment in seconds")
	dvinc := flag.Float64("dvinc", 0, "per-sweep amplitude increment in V")
	cycle := flag.Float64("cycle", 0.01, "square cycle duration in seconds")
	fstart := flag.Float64("fstart", 10, "chirp start frequency in Hz")
	fend := flag.Float64("fend", 100, "chirp end frequency in Hz")
	kind := flag.String("kind", "Linear", "chirp kind: Linear or Exponential")
	list := flag.Bool("list", false, "list segment classes")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stiminfo [flags] <class>\n\n")
		fmt.Fprintf(os.Stderr, "Renders a stimulus segment and prints per-sweep statistics.\n")
		fmt.Fprintf(os.Stderr, "Classes: constant, ramp, square, chirp.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stiminfo -duration 0.1 ramp\n")
		fmt.Fprintf(os.Stderr, "  stiminfo -sweeps 4 -dvinc 0.01 constant\n")
		fmt.Fprintf(os.Stderr, "  stiminfo -cycle 0.01 square\n")
		fmt.Fprintf(os.Stderr, "  stiminfo -duration 1 -fstart 5 -fend 500 chirp\n")
	}
	flag.Parse()

	if *list {
		for _, e := range registry {
			fmt.Println(e.name)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	entry, ok := resolveClass(flag.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown class %q (use -list to see available)\n", flag.Arg(0))
		os.Exit(1)
	}

	if *sweeps < 1 {
		fmt.Fprintf(os.Stderr, "error: -sweeps must be at least 1\n")
		os.Exit(1)
	}

	voltageSource, ok := resolveSource(*source)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown source %q (want constant or hold)\n", *source)
		os.Exit(1)
	}

	stimRec := stim.StimulusRecord{SampleInterval: *interval}

	chanRec := stim.ChannelRecord{
		Holding:         *holding,
		Square_PosAmpl:  *amplitude,
		Square_Cycle:    *cycle,
		Square_Kind:     "Common Frequency",
		Chirp_Amplitude: *amplitude,
		Chirp_StartFreq: *fstart,
		Chirp_EndFreq:   *fend,
		Chirp_Kind:      *kind,
	}

	segRec := stim.SegmentRecord{
		Class:         entry.class,
		Duration:      *duration,
		Voltage:       *amplitude,
		VoltageSource: voltageSource,
		DeltaTFactor:  1,
		DeltaVFactor:  1,
	}
	if *dtinc != 0 {
		segRec.DurationIncMode = "Inc"
		segRec.DeltaTIncrement = *dtinc
	}
	if *dvinc != 0 {
		segRec.VoltageIncMode = "Inc"
		segRec.DeltaVIncrement = *dvinc
	}

	seg, err := stim.BuildSegment(stimRec, chanRec, segRec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := printSweeps(seg, *sweeps, 1 / *interval); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func resolveClass(name string) (classEntry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return classEntry{}, false
}

func resolveSource(name string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "constant":
		return "Constant", true
	case "hold":
		return "Hold", true
	default:
		return "", false
	}
}

func printSweeps(seg stim.Segment, sweeps int, sampleRate float64) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Sweep\tPoints\tMin [mV]\tMax [mV]\tDC [mV]\tRMS [mV]\tPeak [Hz]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t------\t--------\t--------\t-------\t--------\t---------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for sweep := 0; sweep < sweeps; sweep++ {
		samples, err := seg.CreateArray(sweep)
		if err != nil {
			return fmt.Errorf("sweep %d: %w", sweep, err)
		}

		s := analyze.Calculate(samples)

		freq := 0.0
		if len(samples) >= 2 {
			freq, err = analyze.PeakFrequency(samples, sampleRate)
			if err != nil {
				return fmt.Errorf("sweep %d: %w", sweep, err)
			}
		}

		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.1f\n",
			sweep, s.Length, s.Min, s.Max, s.DC, s.RMS, freq); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}
