// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package signal holds the unified in-memory representation of a decoded
// recording: a time axis plus equal-length named channel arrays, produced
// by any decoder path and consumed by every transform.
package signal

// Channel is one named sample array.
type Channel struct {
	Name    string
	Samples []float64
}

// Model is the unified multi-channel time series. All channel arrays and
// the time axis have equal length; a Model is never mutated after build,
// it is replaced wholesale on a new upload.
type Model struct {
	Time       []float64 // Monotonic, one entry per sample
	Channels   []Channel // Equal-length sample arrays
	SampleRate float64   // Samples per second, 0 when unknown
}

// NewModel builds a Model from channel arrays and a sample rate. All
// channels are right-truncated to the shortest one; the time axis is
// i/rate when the rate is positive, else the raw sample index.
func NewModel(channels []Channel, rate float64) *Model {
	n := minLen(channels)

	m := &Model{
		Time:       make([]float64, n),
		Channels:   make([]Channel, len(channels)),
		SampleRate: rate,
	}
	for i := range m.Time {
		if rate > 0 {
			m.Time[i] = float64(i) / rate
		} else {
			m.Time[i] = float64(i)
		}
	}
	for i, ch := range channels {
		m.Channels[i] = Channel{Name: ch.Name, Samples: ch.Samples[:n]}
	}
	return m
}

// NewModelWithTime builds a Model from an explicit per-sample time axis,
// truncating the time axis and every channel to the shortest array.
func NewModelWithTime(time []float64, channels []Channel) *Model {
	n := minLen(channels)
	if len(time) < n {
		n = len(time)
	}

	m := &Model{
		Time:     time[:n],
		Channels: make([]Channel, len(channels)),
	}
	for i, ch := range channels {
		m.Channels[i] = Channel{Name: ch.Name, Samples: ch.Samples[:n]}
	}
	return m
}

// Len returns the common sample count.
func (m *Model) Len() int {
	return len(m.Time)
}

// Samples returns channel i's sample array, or nil when i is out of range.
func (m *Model) Samples(i int) []float64 {
	if i < 0 || i >= len(m.Channels) {
		return nil
	}
	return m.Channels[i].Samples
}

func minLen(channels []Channel) int {
	n := 0
	for i, ch := range channels {
		if i == 0 || len(ch.Samples) < n {
			n = len(ch.Samples)
		}
	}
	return n
}
