// Package analyze inspects reconstructed stimulus waveforms: per-sweep
// amplitude statistics and a coarse dominant-frequency estimate. All entry
// points tolerate NaN samples, which stimulus reconstruction emits for
// unimplemented stepping modes.
package analyze

import "math"

// Stats holds amplitude statistics of one reconstructed waveform. NaN
// samples are counted in NaNCount and excluded from every other aggregate.
type Stats struct {
	Length        int
	NaNCount      int
	Min           float64
	MinPos        int
	Max           float64
	MaxPos        int
	Peak          float64 // max(|Max|, |Min|)
	PeakToPeak    float64 // Max - Min
	DC            float64 // mean
	RMS           float64
	Energy        float64 // sum of squares
	ZeroCrossings int
}

// Calculate computes all statistics in a single pass.
//
// An empty input yields the zero Stats. If no finite sample exists, Min, Max,
// Peak, and PeakToPeak are NaN, MinPos and MaxPos are -1, and the remaining
// aggregates are zero. A zero crossing is counted when two consecutive finite
// samples have opposite signs.
func Calculate(signal []float64) Stats {
	s := Stats{Length: len(signal)}
	if len(signal) == 0 {
		return s
	}

	var (
		sum      float64
		sumSq    float64
		finite   int
		haveExt  bool
		prev     float64
		havePrev bool
	)

	s.MinPos = -1
	s.MaxPos = -1

	for i, x := range signal {
		if math.IsNaN(x) {
			s.NaNCount++
			havePrev = false
			continue
		}

		finite++
		sum += x
		sumSq += x * x

		if !haveExt {
			s.Min, s.MinPos = x, i
			s.Max, s.MaxPos = x, i
			haveExt = true
		} else {
			if x < s.Min {
				s.Min, s.MinPos = x, i
			}
			if x > s.Max {
				s.Max, s.MaxPos = x, i
			}
		}

		if havePrev && prev*x < 0 {
			s.ZeroCrossings++
		}
		prev, havePrev = x, true
	}

	if !haveExt {
		s.Min = math.NaN()
		s.Max = math.NaN()
		s.Peak = math.NaN()
		s.PeakToPeak = math.NaN()
		return s
	}

	s.Peak = math.Max(math.Abs(s.Max), math.Abs(s.Min))
	s.PeakToPeak = s.Max - s.Min
	s.DC = sum / float64(finite)
	s.RMS = math.Sqrt(sumSq / float64(finite))
	s.Energy = sumSq

	return s
}
