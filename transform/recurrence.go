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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RecurrenceStats summarizes the two-channel trajectory window.
type RecurrenceStats struct {
	MeanA, StdA, MinA, MaxA float64
	MeanB, StdB, MinB, MaxB float64
	Correlation             float64 // Lag-0 Pearson correlation, 0 when either std is 0
	PathLength              float64 // Cumulative Euclidean arc length of the trajectory
}

// RecurrenceResult is the (A, B) trajectory point cloud with start/end
// markers. TimeIndex is a rendering color key only, not a statistic.
type RecurrenceResult struct {
	X, Y           []float64
	TimeIndex      []float64
	StartX, StartY float64
	EndX, EndY     float64
	Stats          RecurrenceStats
}

// recurrence plots channel A against channel B over the first n samples
// and derives per-axis statistics, the lag-0 correlation, and the path
// length as a proxy for trajectory complexity.
func recurrence(a, b []float64, n int) *RecurrenceResult {
	x := make([]float64, n)
	y := make([]float64, n)
	idx := make([]float64, n)
	copy(x, a[:n])
	copy(y, b[:n])
	for i := range idx {
		idx[i] = float64(i)
	}

	stats := RecurrenceStats{
		MeanA: stat.Mean(x, nil),
		StdA:  stat.PopStdDev(x, nil),
		MinA:  floats.Min(x),
		MaxA:  floats.Max(x),
		MeanB: stat.Mean(y, nil),
		StdB:  stat.PopStdDev(y, nil),
		MinB:  floats.Min(y),
		MaxB:  floats.Max(y),
	}

	if stats.StdA > 0 && stats.StdB > 0 {
		stats.Correlation = stat.Correlation(x, y, nil)
	}

	for i := 1; i < n; i++ {
		stats.PathLength += math.Hypot(x[i]-x[i-1], y[i]-y[i-1])
	}

	return &RecurrenceResult{
		X:         x,
		Y:         y,
		TimeIndex: idx,
		StartX:    x[0],
		StartY:    y[0],
		EndX:      x[n-1],
		EndY:      y[n-1],
		Stats:     stats,
	}
}
