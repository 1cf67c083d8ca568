// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package wfdb decodes WFDB-style paired recordings: a textual header
// describing the channel layout and calibration, and a companion binary
// file of channel-interleaved little-endian 16-bit samples.
package wfdb

const (
	// DefaultGain is assumed when a channel line carries no parsable gain.
	DefaultGain = 200
	// DefaultSampleRate is assumed when the header line carries no rate.
	DefaultSampleRate = 360
)

// ChannelMeta describes one channel's calibration and naming.
type ChannelMeta struct {
	Name     string  // Display name of the channel (e.g. MLII, V5)
	Gain     float64 // ADC units per physical unit, never zero
	Baseline int64   // ADC value corresponding to zero physical units
}

// Header is the decoded recording description. It is immutable once parsed.
type Header struct {
	SampleRate      float64       // Samples per second per channel
	ChannelCount    uint32        // Number of interleaved channels per frame
	DeclaredSamples uint32        // Sample count declared by the header, 0 if unknown
	Channels        []ChannelMeta // One entry per decoded channel line, may be shorter than ChannelCount
}

// Meta returns the metadata for channel ch, falling back to default
// calibration when the header declared more channels than it described.
func (h *Header) Meta(ch int) ChannelMeta {
	if ch >= 0 && ch < len(h.Channels) {
		return h.Channels[ch]
	}
	return ChannelMeta{Name: defaultChannelName(ch), Gain: DefaultGain}
}
