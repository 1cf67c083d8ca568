// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package analysis_test

import (
	"math"
	"testing"

	"github.com/openvitals/wave/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s := analysis.Summarize([]float64{1, 2, 3, 4}, 2)

	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(1.25), s.Std, 1e-12)
	assert.InDelta(t, math.Sqrt(7.5), s.RMS, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.Equal(t, 3.0, s.PeakToPeak)
	assert.Equal(t, 4, s.Samples)
	assert.Equal(t, 2.0, s.Duration)
}

func TestSummarizeUnknownRate(t *testing.T) {
	s := analysis.Summarize([]float64{1, -1}, 0)
	assert.Zero(t, s.Duration)
	assert.InDelta(t, 1.0, s.RMS, 1e-12)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, analysis.Summary{}, analysis.Summarize(nil, 100))
}

func TestSummarizeSNR(t *testing.T) {
	// A loud signal with a quiet floor scores a high SNR; near-constant
	// amplitude scores near 0 dB.
	loud := make([]float64, 100)
	for i := range loud {
		if i < 10 {
			loud[i] = 0.001
		} else {
			loud[i] = 10
		}
	}
	flat := make([]float64, 100)
	for i := range flat {
		flat[i] = 1
	}

	assert.Greater(t, analysis.Summarize(loud, 0).SNRdB, 40.0)
	assert.InDelta(t, 0, analysis.Summarize(flat, 0).SNRdB, 0.1)
}

func TestDetectPeaks(t *testing.T) {
	// A flat baseline with two clear spikes. The threshold is mean+std;
	// each upward crossing is recorded at the sample before it.
	samples := make([]float64, 40)
	samples[10] = 10
	samples[30] = 10

	peaks := analysis.DetectPeaks(samples)
	assert.Equal(t, []int{9, 29}, peaks)
}

func TestDetectPeaksShortInput(t *testing.T) {
	assert.Nil(t, analysis.DetectPeaks(nil))
	assert.Nil(t, analysis.DetectPeaks([]float64{1}))
}

func TestAnalyzeRhythm(t *testing.T) {
	// 4 evenly spaced beats over 4 seconds at 100 Hz.
	samples := make([]float64, 400)
	for _, i := range []int{50, 150, 250, 350} {
		samples[i] = 10
	}

	r := analysis.AnalyzeRhythm(samples, 100)
	require.Len(t, r.Peaks, 4)
	assert.InDelta(t, 60.0, r.BPM, 1e-9)
	assert.Equal(t, "Regular", r.Regularity)
}

func TestAnalyzeRhythmIrregular(t *testing.T) {
	samples := make([]float64, 400)
	for _, i := range []int{20, 150, 200, 390} {
		samples[i] = 10
	}

	r := analysis.AnalyzeRhythm(samples, 100)
	assert.Equal(t, "Irregular", r.Regularity)
}
