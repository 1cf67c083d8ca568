// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package analysis derives channel-level diagnostics from a decoded
// recording: amplitude summary statistics, threshold peak detection with
// a rate estimate, and FFT spectral features.
package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary is the amplitude statistics of one channel.
type Summary struct {
	Mean       float64
	Std        float64 // Population standard deviation
	RMS        float64
	Min        float64
	Max        float64
	PeakToPeak float64
	SNRdB      float64 // Signal power over the quietest-decile noise floor
	Samples    int
	Duration   float64 // Seconds, 0 when the sample rate is unknown
}

// Summarize computes the amplitude summary of samples recorded at rate
// samples per second (rate may be 0 when unknown). An empty input yields
// a zero Summary.
func Summarize(samples []float64, rate float64) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}

	s := Summary{
		Mean:    stat.Mean(samples, nil),
		Std:     stat.PopStdDev(samples, nil),
		Min:     floats.Min(samples),
		Max:     floats.Max(samples),
		Samples: n,
	}
	s.PeakToPeak = s.Max - s.Min

	power := 0.0
	for _, v := range samples {
		power += v * v
	}
	power /= float64(n)
	s.RMS = math.Sqrt(power)

	s.SNRdB = 10 * math.Log10(power/(noiseFloor(samples)+1e-10))

	if rate > 0 {
		s.Duration = float64(n) / rate
	}
	return s
}

// noiseFloor estimates noise power as the mean square of the quietest 10%
// of the signal by absolute amplitude.
func noiseFloor(samples []float64) float64 {
	sorted := make([]float64, len(samples))
	for i, v := range samples {
		sorted[i] = math.Abs(v)
	}
	sort.Float64s(sorted)

	k := len(sorted) / 10
	if k < 1 {
		k = 1
	}

	floor := 0.0
	for _, v := range sorted[:k] {
		floor += v * v
	}
	return floor / float64(k)
}

// Rhythm is the peak-derived rhythm estimate of one channel.
type Rhythm struct {
	Peaks      []int   // Upward threshold-crossing indices
	BPM        float64 // Events per minute, 0 when the rate is unknown
	Regularity string  // "Regular" or "Irregular"
}

// DetectPeaks returns the indices where the signal crosses upward through
// mean + one standard deviation.
func DetectPeaks(samples []float64) []int {
	if len(samples) < 2 {
		return nil
	}

	threshold := stat.Mean(samples, nil) + stat.PopStdDev(samples, nil)

	var peaks []int
	for i := 0; i+1 < len(samples); i++ {
		if samples[i] < threshold && samples[i+1] > threshold {
			peaks = append(peaks, i)
		}
	}
	return peaks
}

// AnalyzeRhythm detects peaks and converts their count over the recording
// span into an events-per-minute rate. The rhythm is flagged irregular
// when the inter-peak gaps spread by more than 10 samples.
func AnalyzeRhythm(samples []float64, rate float64) Rhythm {
	r := Rhythm{Peaks: DetectPeaks(samples), Regularity: "Regular"}

	if rate > 0 && len(samples) > 0 {
		r.BPM = float64(len(r.Peaks)) * 60 * rate / float64(len(samples))
	}

	if len(r.Peaks) >= 2 {
		gaps := make([]float64, len(r.Peaks)-1)
		for i := 1; i < len(r.Peaks); i++ {
			gaps[i-1] = float64(r.Peaks[i] - r.Peaks[i-1])
		}
		if stat.PopStdDev(gaps, nil) > 10 {
			r.Regularity = "Irregular"
		}
	}
	return r
}
