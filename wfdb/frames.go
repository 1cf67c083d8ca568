// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package wfdb

import (
	"encoding/binary"
	"fmt"
	"math"
)

// DecodeFrames reconstructs per-channel sample arrays from channel-
// interleaved little-endian int16 frames, applying each channel's linear
// calibration: physical = (raw - baseline) / gain.
//
// The effective sample count is min(declared, floor(len(data)/frameWidth))
// when the header declares a positive count, else floor(len(data)/frameWidth).
// A trailing partial frame is dropped, never padded.
func DecodeFrames(data []byte, hdr *Header) ([][]float64, error) {
	if hdr.ChannelCount == 0 {
		return nil, fmt.Errorf("%w: header declares zero channels", ErrInvalidChannelCount)
	}

	channelCount := int(hdr.ChannelCount)
	frameWidth := channelCount * 2

	samples := len(data) / frameWidth
	if hdr.DeclaredSamples > 0 && int(hdr.DeclaredSamples) < samples {
		samples = int(hdr.DeclaredSamples)
	}
	if samples == 0 {
		return nil, fmt.Errorf("%w: need %d bytes per frame, have %d",
			ErrEmptyRecording, frameWidth, len(data))
	}

	channels := make([][]float64, channelCount)
	for ch := range channels {
		channels[ch] = make([]float64, samples)
	}

	for ch := 0; ch < channelCount; ch++ {
		meta := hdr.Meta(ch)
		gain := meta.Gain
		if gain == 0 {
			gain = DefaultGain
		}
		baseline := float64(meta.Baseline)

		for i := 0; i < samples; i++ {
			off := i*frameWidth + ch*2
			raw := int16(binary.LittleEndian.Uint16(data[off:]))
			channels[ch][i] = (float64(raw) - baseline) / gain
		}
	}

	return channels, nil
}

// EncodeFrames is the inverse of DecodeFrames: it quantizes per-channel
// physical values back to interleaved int16 little-endian frames using the
// header's calibration. Channels are truncated to the shortest array.
func EncodeFrames(channels [][]float64, hdr *Header) ([]byte, error) {
	if hdr.ChannelCount == 0 {
		return nil, fmt.Errorf("%w: header declares zero channels", ErrInvalidChannelCount)
	}
	if len(channels) != int(hdr.ChannelCount) {
		return nil, fmt.Errorf("wfdb: expected %d channels, got %d", hdr.ChannelCount, len(channels))
	}

	samples := 0
	for i, ch := range channels {
		if i == 0 || len(ch) < samples {
			samples = len(ch)
		}
	}

	frameWidth := int(hdr.ChannelCount) * 2
	data := make([]byte, samples*frameWidth)

	for ch := range channels {
		meta := hdr.Meta(ch)
		gain := meta.Gain
		if gain == 0 {
			gain = DefaultGain
		}

		for i := 0; i < samples; i++ {
			raw := math.Round(channels[ch][i]*gain) + float64(meta.Baseline)
			raw = math.Max(math.MinInt16, math.Min(math.MaxInt16, raw))
			off := i*frameWidth + ch*2
			binary.LittleEndian.PutUint16(data[off:], uint16(int16(raw)))
		}
	}

	return data, nil
}
