// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package wfdb

import "errors"

var (
	// ErrMalformedHeader is returned when the header text has no usable
	// first line to take a channel count and sample rate from.
	ErrMalformedHeader = errors.New("wfdb: malformed header")

	// ErrInvalidChannelCount is returned when the header declares zero
	// channels, making the frame width undefined.
	ErrInvalidChannelCount = errors.New("wfdb: invalid channel count")

	// ErrEmptyRecording is returned when the binary data is too short to
	// hold even a single full frame.
	ErrEmptyRecording = errors.New("wfdb: empty recording")
)
