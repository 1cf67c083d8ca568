// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package transform

import "gonum.org/v1/gonum/floats"

// XORResult carries the full-resolution binarized traces, their XOR, and
// the per-chunk mismatch energy in [0,1] with chunk start indices for
// alignment.
type XORResult struct {
	BinA        []float64
	BinB        []float64
	Xored       []float64
	Energy      []float64
	ChunkStarts []int
}

// xorEnergy binarizes both channels against their whole-signal range,
// XORs them sample-wise, and aggregates chunk mismatch energy. The
// trailing partial chunk is dropped.
func xorEnergy(a, b []float64, chunkSize int) *XORResult {
	if chunkSize < 1 {
		chunkSize = 1
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	binA := binarize(a[:n])
	binB := binarize(b[:n])

	xored := make([]float64, n)
	for i := range xored {
		if binA[i] != binB[i] {
			xored[i] = 1
		}
	}

	chunks := n / chunkSize
	energy := make([]float64, chunks)
	starts := make([]int, chunks)
	for k := 0; k < chunks; k++ {
		start := k * chunkSize
		starts[k] = start

		sum := 0.0
		for i := start; i < start+chunkSize; i++ {
			sum += xored[i]
		}
		energy[k] = sum / float64(chunkSize)
	}

	return &XORResult{BinA: binA, BinB: binB, Xored: xored, Energy: energy, ChunkStarts: starts}
}

// binarize normalizes x against its global min/max and thresholds at 0.5.
// Normalization is whole-signal, not per chunk, so chunk comparisons stay
// consistent across the recording. A flat signal binarizes to all zeros.
func binarize(x []float64) []float64 {
	min, max := floats.Min(x), floats.Max(x)
	span := max - min
	if span == 0 {
		span = 1
	}

	bin := make([]float64, len(x))
	for i, v := range x {
		if (v-min)/span >= 0.5 {
			bin[i] = 1
		}
	}
	return bin
}
