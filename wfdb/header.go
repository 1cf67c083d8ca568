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
	"fmt"
	"strconv"
	"strings"
)

// DecodeHeader parses a WFDB-style header text.
//
// The first surviving line is `<recordName> <channelCount> <sampleRate>
// [<sampleCount>]`; each following line describes one channel as
// `<fileSpec> <format> <gainSpec> ... <channelName>` where the gain spec
// matches `NUMBER[(BASELINE)][/UNIT]`. Missing or non-numeric fields fall
// back to defaults individually; fewer channel lines than declared yields
// fewer decoded channels, not an error.
func DecodeHeader(text string) (*Header, error) {
	lines := headerLines(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no record line found", ErrMalformedHeader)
	}

	tokens := strings.Fields(lines[0])
	hdr := &Header{
		ChannelCount: uint32(parseUint(tokens, 1, 1)),
		SampleRate:   parseFloatToken(tokens, 2, DefaultSampleRate),
	}
	hdr.DeclaredSamples = uint32(parseUint(tokens, 3, 0))

	// Tolerate truncated headers: decode as many channel lines as exist.
	channelLines := lines[1:]
	if len(channelLines) > int(hdr.ChannelCount) {
		channelLines = channelLines[:hdr.ChannelCount]
	}

	hdr.Channels = make([]ChannelMeta, 0, len(channelLines))
	for i, line := range channelLines {
		hdr.Channels = append(hdr.Channels, decodeChannelLine(line, i))
	}

	return hdr, nil
}

// headerLines returns the non-empty, non-comment lines of the header text.
func headerLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// decodeChannelLine extracts the gain spec and channel name from one
// channel description line. i is the zero-based channel index.
func decodeChannelLine(line string, i int) ChannelMeta {
	tokens := strings.Fields(line)

	meta := ChannelMeta{Name: defaultChannelName(i), Gain: DefaultGain}
	if len(tokens) >= 3 {
		meta.Gain, meta.Baseline = parseGainSpec(tokens[2])
	}
	if len(tokens) >= 4 {
		meta.Name = tokens[len(tokens)-1]
	}
	return meta
}

// parseGainSpec decodes `NUMBER[(BASELINE)][/UNIT]`, e.g. "200(0)/mV",
// "200/mV" or a bare "200". An unparsable or zero gain falls back to
// DefaultGain so calibration can never divide by zero.
func parseGainSpec(spec string) (gain float64, baseline int64) {
	spec, _, _ = strings.Cut(spec, "/")

	if lp := strings.IndexByte(spec, '('); lp >= 0 {
		if rp := strings.IndexByte(spec, ')'); rp > lp {
			baseline, _ = strconv.ParseInt(spec[lp+1:rp], 10, 64)
			spec = spec[:lp] + spec[rp+1:]
		}
	}

	gain, err := strconv.ParseFloat(strings.TrimSpace(spec), 64)
	if err != nil || gain <= 0 {
		return DefaultGain, baseline
	}
	return gain, baseline
}

func defaultChannelName(i int) string {
	return fmt.Sprintf("Lead%d", i+1)
}

func parseFloatToken(tokens []string, i int, fallback float64) float64 {
	if i >= len(tokens) {
		return fallback
	}
	f, err := strconv.ParseFloat(tokens[i], 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}

func parseUint(tokens []string, i int, fallback uint64) uint64 {
	if i >= len(tokens) {
		return fallback
	}
	u, err := strconv.ParseUint(tokens[i], 10, 32)
	if err != nil {
		return fallback
	}
	return u
}
