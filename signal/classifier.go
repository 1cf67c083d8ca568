// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package signal

import "context"

// Classification is the verdict returned by an inference collaborator.
// The label's semantics are not interpreted here beyond display.
type Classification struct {
	Label      string  // Predicted label, e.g. "Normal Sinus Rhythm"
	Confidence float64 // Confidence in [0,1], or a raw model score
}

// Classifier is the remote inference collaborator. It receives the
// decoded channel set and returns a label with a confidence; the
// implementation lives outside this core.
type Classifier interface {
	Classify(ctx context.Context, m *Model) (Classification, error)
}
