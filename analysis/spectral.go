// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// Spectral holds the frequency-domain features of one channel.
type Spectral struct {
	Centroid         float64 // Magnitude-weighted mean frequency, Hz
	Bandwidth        float64 // Magnitude-weighted frequency spread around the centroid, Hz
	Rolloff          float64 // Frequency below which 85% of the magnitude lies, Hz
	ZeroCrossingRate float64 // Sign changes per sample
	DominantFreq     float64 // Strongest non-DC bin, Hz
	Energy           float64 // Mean squared amplitude
	HarmonicRatio    float64 // Energy share of the first 5 harmonics of the dominant bin
}

// Spectrum computes the positive-half magnitude spectrum of samples at
// rate samples per second. Returns per-bin frequencies and magnitudes.
func Spectrum(samples []float64, rate float64) (freqs, mags []float64) {
	n := len(samples)
	if n == 0 {
		return nil, nil
	}

	spectrum := fft.FFTReal(samples)

	half := n/2 + 1
	freqs = make([]float64, half)
	mags = make([]float64, half)
	for i := 0; i < half; i++ {
		freqs[i] = float64(i) * rate / float64(n)
		mags[i] = cmplx.Abs(spectrum[i])
	}
	return freqs, mags
}

// Analyze extracts spectral features from samples at rate samples per
// second. An empty input yields a zero Spectral.
func Analyze(samples []float64, rate float64) Spectral {
	n := len(samples)
	if n == 0 {
		return Spectral{}
	}

	freqs, mags := Spectrum(samples, rate)

	magSum := floats.Sum(mags)
	if magSum == 0 {
		magSum = 1e-10
	}

	var sp Spectral

	// Centroid and bandwidth over the magnitude distribution.
	for i, m := range mags {
		sp.Centroid += freqs[i] * m / magSum
	}
	for i, m := range mags {
		d := freqs[i] - sp.Centroid
		sp.Bandwidth += m / magSum * d * d
	}
	sp.Bandwidth = math.Sqrt(sp.Bandwidth)

	// 85% rolloff.
	threshold := 0.85 * magSum
	cumulative := 0.0
	sp.Rolloff = freqs[len(freqs)-1]
	for i, m := range mags {
		cumulative += m
		if cumulative >= threshold {
			sp.Rolloff = freqs[i]
			break
		}
	}

	sp.ZeroCrossingRate = zeroCrossingRate(samples)

	// Dominant frequency, skipping the DC bin.
	dominant := 1
	for i := 2; i < len(mags); i++ {
		if mags[i] > mags[dominant] {
			dominant = i
		}
	}
	if len(mags) > 1 {
		sp.DominantFreq = freqs[dominant]
	}

	for _, v := range samples {
		sp.Energy += v * v
	}
	sp.Energy /= float64(n)

	sp.HarmonicRatio = harmonicRatio(freqs, mags, sp.DominantFreq)

	return sp
}

func zeroCrossingRate(samples []float64) float64 {
	crossings := 0
	for i := 1; i < len(samples); i++ {
		if sign(samples[i]) != sign(samples[i-1]) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(samples))
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// harmonicRatio sums the spectral energy in small windows around the
// first 5 harmonics of the fundamental and reports it as a share of the
// total spectral energy.
func harmonicRatio(freqs, mags []float64, fundamental float64) float64 {
	total := 0.0
	for _, m := range mags {
		total += m * m
	}
	if fundamental <= 0 || total == 0 {
		return 0
	}

	harmonic := 0.0
	for h := 1; h <= 5; h++ {
		idx := nearestBin(freqs, fundamental*float64(h))
		lo, hi := idx-3, idx+4
		if lo < 0 {
			lo = 0
		}
		if hi > len(mags) {
			hi = len(mags)
		}
		for _, m := range mags[lo:hi] {
			harmonic += m * m
		}
	}

	ratio := harmonic / total
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

func nearestBin(freqs []float64, target float64) int {
	best := 0
	for i, f := range freqs {
		if math.Abs(f-target) < math.Abs(freqs[best]-target) {
			best = i
		}
	}
	return best
}
