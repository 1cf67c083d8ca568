// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package transform

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// polarEpsilon keeps the channel ratio finite when B crosses zero.
const polarEpsilon = 1e-6

// PolarStats summarizes the normalized radius series.
type PolarStats struct {
	MeanR       float64
	StdR        float64 // Population standard deviation
	Revolutions int
	P95         float64 // Raw 95th-percentile ratio used for clamping
}

// PolarResult is the polar periodicity projection: a normalized radius in
// [0,1] and an angle completing one revolution every P samples.
type PolarResult struct {
	R     []float64
	Theta []float64
	Stats PolarStats
}

// polarProject maps the ratio |A|/|B| of the first n samples onto polar
// coordinates. The raw ratio is clamped at its 95th percentile so extreme
// instantaneous ratios do not dominate the range, then normalized to
// [0,1]; theta wraps every periodicity samples.
func polarProject(a, b []float64, n, periodicity int) *PolarResult {
	if periodicity < 1 {
		periodicity = 1
	}

	raw := make([]float64, n)
	for i := 0; i < n; i++ {
		raw[i] = math.Abs(a[i]) / (math.Abs(b[i]) + polarEpsilon)
	}

	p95 := percentile95(raw)

	r := make([]float64, n)
	theta := make([]float64, n)
	for i, v := range raw {
		r[i] = math.Min(v, p95) / p95
		theta[i] = float64(i%periodicity) / float64(periodicity) * 360
	}

	return &PolarResult{
		R:     r,
		Theta: theta,
		Stats: PolarStats{
			MeanR:       stat.Mean(r, nil),
			StdR:        stat.PopStdDev(r, nil),
			Revolutions: n / periodicity,
			P95:         p95,
		},
	}
}

// percentile95 is the empirical 95th percentile: sort ascending, take the
// value at floor(0.95*n). Defaults to 1 when the window is empty or the
// percentile is zero, so normalization never divides by zero.
func percentile95(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 1
	}

	sorted := make([]float64, n)
	copy(sorted, x)
	sort.Float64s(sorted)

	idx := int(0.95 * float64(n))
	if idx >= n {
		idx = n - 1
	}
	p95 := sorted[idx]
	if p95 <= 0 {
		return 1
	}
	return p95
}
