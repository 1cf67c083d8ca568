// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package transform

// ContinuousResult is the half-open visible sample range [Start, End).
type ContinuousResult struct {
	Start int
	End   int
}

// VisibleRange maps a playback cursor and window size to the visible
// half-open range [start, end). Start is clamped to 0; end is not clamped
// to the recording length, renderers clip. The function is pure and
// idempotent so a playback timer may call it every tick without locking.
func VisibleRange(cursor, window int) (start, end int) {
	if cursor < 0 {
		cursor = 0
	}
	return cursor, cursor + window
}

// AdvanceCursor computes the next playback cursor for the external
// driver: advance by step*speed samples, wrapping to 0 once the window
// would pass the end of the recording.
func AdvanceCursor(cursor, step int, speed float64, n, window int) int {
	next := cursor + int(float64(step)*speed)
	if next > n-window {
		return 0
	}
	return next
}
