// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package wfdb_test

import (
	"testing"

	"github.com/openvitals/wave/wfdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHeader(t *testing.T) {
	hdr, err := wfdb.DecodeHeader("rec 2 360 1000\n" +
		"rec.dat 16 200(0)/mV 0 0 MLII\n" +
		"rec.dat 16 200/mV 0 0 V5\n")
	require.NoError(t, err)

	assert.Equal(t, uint32(2), hdr.ChannelCount)
	assert.Equal(t, 360.0, hdr.SampleRate)
	assert.Equal(t, uint32(1000), hdr.DeclaredSamples)
	require.Len(t, hdr.Channels, 2)

	assert.Equal(t, "MLII", hdr.Channels[0].Name)
	assert.Equal(t, 200.0, hdr.Channels[0].Gain)
	assert.Equal(t, int64(0), hdr.Channels[0].Baseline)

	assert.Equal(t, "V5", hdr.Channels[1].Name)
	assert.Equal(t, 200.0, hdr.Channels[1].Gain)
}

func TestDecodeHeaderEmpty(t *testing.T) {
	for _, text := range []string{"", "   \n\t\n", "# only a comment\n"} {
		_, err := wfdb.DecodeHeader(text)
		require.ErrorIs(t, err, wfdb.ErrMalformedHeader)
	}
}

func TestDecodeHeaderFieldDefaults(t *testing.T) {
	// Record name alone: channel count, rate, and sample count all default.
	hdr, err := wfdb.DecodeHeader("rec\n")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), hdr.ChannelCount)
	assert.Equal(t, 360.0, hdr.SampleRate)
	assert.Equal(t, uint32(0), hdr.DeclaredSamples)

	// Non-numeric fields default independently.
	hdr, err = wfdb.DecodeHeader("rec two 500\n")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), hdr.ChannelCount)
	assert.Equal(t, 500.0, hdr.SampleRate)
}

func TestDecodeHeaderFewerChannelLines(t *testing.T) {
	// Three declared, one described: decode one channel, no error.
	hdr, err := wfdb.DecodeHeader("rec 3 250\nrec.dat 16 100(12)/uV 0 0 EEG\n")
	require.NoError(t, err)

	assert.Equal(t, uint32(3), hdr.ChannelCount)
	require.Len(t, hdr.Channels, 1)
	assert.Equal(t, "EEG", hdr.Channels[0].Name)
	assert.Equal(t, 100.0, hdr.Channels[0].Gain)
	assert.Equal(t, int64(12), hdr.Channels[0].Baseline)

	// Undescribed channels fall back to defaults.
	meta := hdr.Meta(2)
	assert.Equal(t, "Lead3", meta.Name)
	assert.Equal(t, float64(wfdb.DefaultGain), meta.Gain)
}

func TestDecodeHeaderGainSpecs(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		gain     float64
		baseline int64
	}{
		{"baseline and unit", "200(0)/mV", 200, 0},
		{"nonzero baseline", "100(1024)/mV", 100, 1024},
		{"unit only", "200/mV", 200, 0},
		{"bare number", "212.5", 212.5, 0},
		{"unparsable", "?/mV", wfdb.DefaultGain, 0},
		{"zero gain", "0/mV", wfdb.DefaultGain, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hdr, err := wfdb.DecodeHeader("rec 1 360\nrec.dat 16 " + tt.spec + " 0 0 MLII\n")
			require.NoError(t, err)
			require.Len(t, hdr.Channels, 1)
			assert.Equal(t, tt.gain, hdr.Channels[0].Gain)
			assert.Equal(t, tt.baseline, hdr.Channels[0].Baseline)
		})
	}
}

func TestDecodeHeaderNameDefault(t *testing.T) {
	// A channel line with no token past the gain spec has no name.
	hdr, err := wfdb.DecodeHeader("rec 1 360\nrec.dat 16 200/mV\n")
	require.NoError(t, err)
	require.Len(t, hdr.Channels, 1)
	assert.Equal(t, "Lead1", hdr.Channels[0].Name)
}

func TestDecodeHeaderSkipsComments(t *testing.T) {
	hdr, err := wfdb.DecodeHeader("# generated\n\nrec 1 128 64\nrec.dat 16 200/mV 0 0 ECG\n")
	require.NoError(t, err)
	assert.Equal(t, 128.0, hdr.SampleRate)
	assert.Equal(t, uint32(64), hdr.DeclaredSamples)
	assert.Equal(t, "ECG", hdr.Channels[0].Name)
}
