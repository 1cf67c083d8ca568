// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package transform implements the four inspection transforms over a
// decoded channel model: continuous windowed playback addressing, the
// binary-difference (XOR) energy transform, the polar periodicity
// projection, and the two-channel recurrence/trajectory analysis.
//
// Every transform is a pure function of an immutable model snapshot and a
// request; none holds state, so concurrent invocations need no locking.
package transform

// Mode selects one of the four transforms.
type Mode int

const (
	Continuous Mode = iota
	XOR
	Polar
	Recurrence
)

func (m Mode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case XOR:
		return "xor"
	case Polar:
		return "polar"
	case Recurrence:
		return "recurrence"
	default:
		return "unknown"
	}
}

// Request carries one transform invocation's parameters. A and B are
// channel indices into the model; which fields apply depends on Mode.
type Request struct {
	Mode Mode

	A, B int // Channel selection (A only for Continuous)

	Window int // Continuous: visible sample count
	Cursor int // Continuous: playback position, owned by the driver

	ChunkSize int // XOR: samples per energy chunk, >= 1

	Periodicity int // Polar: samples per full revolution, >= 1
	SampleCap   int // Polar/Recurrence: sample cap, <= 0 means use all

	Colormap string // Rendering hint only, not interpreted here
}

// Result is the mode-tagged transform output. Exactly one of the series
// pointers is set unless NoData is true, in which case the caller renders
// an empty placeholder state; absent input is policy, never an error.
type Result struct {
	Mode   Mode
	NoData bool

	Continuous *ContinuousResult
	XOR        *XORResult
	Polar      *PolarResult
	Recurrence *RecurrenceResult
}

func noData(mode Mode) Result {
	return Result{Mode: mode, NoData: true}
}

// Model is the transform engine's view of a decoded recording. It is
// satisfied by *signal.Model.
type Model interface {
	Len() int
	Samples(i int) []float64
}

// Apply dispatches a request against a model snapshot. Too-short or
// absent channel data yields the NoData variant.
func Apply(m Model, req Request) Result {
	switch req.Mode {
	case Continuous:
		if m.Len() == 0 {
			return noData(Continuous)
		}
		start, end := VisibleRange(req.Cursor, req.Window)
		return Result{Mode: Continuous, Continuous: &ContinuousResult{Start: start, End: end}}

	case XOR:
		a, b := m.Samples(req.A), m.Samples(req.B)
		if len(a) == 0 || len(b) == 0 {
			return noData(XOR)
		}
		return Result{Mode: XOR, XOR: xorEnergy(a, b, req.ChunkSize)}

	case Polar:
		a, b := m.Samples(req.A), m.Samples(req.B)
		n := capSamples(len(a), len(b), req.SampleCap)
		if n == 0 {
			return noData(Polar)
		}
		return Result{Mode: Polar, Polar: polarProject(a, b, n, req.Periodicity)}

	case Recurrence:
		a, b := m.Samples(req.A), m.Samples(req.B)
		n := capSamples(len(a), len(b), req.SampleCap)
		if n == 0 {
			return noData(Recurrence)
		}
		return Result{Mode: Recurrence, Recurrence: recurrence(a, b, n)}

	default:
		return noData(req.Mode)
	}
}

// capSamples resolves the effective sample count for a two-channel
// transform: the shorter channel, further capped when the request asks
// for fewer samples.
func capSamples(lenA, lenB, cap int) int {
	n := lenA
	if lenB < n {
		n = lenB
	}
	if cap > 0 && cap < n {
		n = cap
	}
	return n
}
