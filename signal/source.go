// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package signal

import (
	"fmt"

	"github.com/openvitals/wave/delim"
	"github.com/openvitals/wave/wfdb"
)

// Source is one decodable upload format. Each variant decodes itself into
// the single unified Model exactly once at ingestion; transforms never see
// format-specific types.
type Source interface {
	Model() (*Model, error)
}

// CSVSource is a delimited-text upload: the first column is the time axis,
// the remaining columns are channels.
type CSVSource struct {
	Text string
}

// Model decodes the delimited text. The grammar is headerless, so
// channels are named by position. Decoding never fails; an empty input
// yields an empty Model that transforms render as a no-data state.
func (s CSVSource) Model() (*Model, error) {
	columns := delim.Decode(s.Text)
	if len(columns) == 0 {
		return NewModelWithTime(nil, nil), nil
	}

	channels := make([]Channel, 0, len(columns)-1)
	for i, col := range columns[1:] {
		channels = append(channels, Channel{
			Name:    fmt.Sprintf("Ch%d", i+1),
			Samples: col,
		})
	}
	return NewModelWithTime(columns[0], channels), nil
}

// WFDBSource is a segmented binary recording: a text header, the raw
// frame bytes, and an optional auxiliary vector-signal text whose columns
// are appended as derived channels.
type WFDBSource struct {
	HeaderText string
	Frames     []byte
	AuxText    string
}

// Model decodes the header, calibrates the frames, and appends any
// auxiliary vector columns. All channels are truncated to the shortest
// array per the Model's equal-length invariant.
func (s WFDBSource) Model() (*Model, error) {
	hdr, err := wfdb.DecodeHeader(s.HeaderText)
	if err != nil {
		return nil, fmt.Errorf("decoding header: %w", err)
	}

	arrays, err := wfdb.DecodeFrames(s.Frames, hdr)
	if err != nil {
		return nil, fmt.Errorf("decoding frames: %w", err)
	}

	channels := make([]Channel, 0, len(arrays))
	for ch, samples := range arrays {
		channels = append(channels, Channel{
			Name:    hdr.Meta(ch).Name,
			Samples: samples,
		})
	}

	if s.AuxText != "" {
		for i, col := range delim.Decode(s.AuxText) {
			channels = append(channels, Channel{
				Name:    fmt.Sprintf("Aux%d", i+1),
				Samples: col,
			})
		}
	}

	return NewModel(channels, hdr.SampleRate), nil
}
