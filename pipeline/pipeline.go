// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package pipeline is the ingestion front door: it dispatches a raw
// upload's decoded source into the unified channel model exactly once and
// runs transform requests against it.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/openvitals/wave/signal"
	"github.com/openvitals/wave/transform"
)

// Pipeline ingests recordings and applies transforms. Each invocation is
// a straight-line synchronous computation over an immutable model
// snapshot; a Pipeline holds no per-recording state.
type Pipeline struct {
	log *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the structured logger. The default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}

// New creates a Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ingest decodes one upload into the unified channel model. Decode errors
// are returned synchronously and never retried; malformed input does not
// become valid by retrying.
func (p *Pipeline) Ingest(src signal.Source) (*signal.Model, error) {
	m, err := src.Model()
	if err != nil {
		p.log.Error("decode failed", zap.Error(err))
		return nil, err
	}

	p.log.Info("decoded recording",
		zap.Int("channels", len(m.Channels)),
		zap.Int("samples", m.Len()),
		zap.Float64("sample_rate", m.SampleRate))
	return m, nil
}

// Run applies one transform request against a model snapshot.
func (p *Pipeline) Run(m *signal.Model, req transform.Request) transform.Result {
	res := transform.Apply(m, req)
	if res.NoData {
		p.log.Debug("transform produced no data", zap.Stringer("mode", req.Mode))
	} else {
		p.log.Debug("transform applied", zap.Stringer("mode", req.Mode))
	}
	return res
}
