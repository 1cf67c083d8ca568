// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2025 The OpenVitals Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package delim parses delimited numeric text into per-column sample
// arrays. Rows are newline-separated, fields are split on whitespace or
// commas, and ragged rows are tolerated: the uploaded sources this format
// supports are of variable length by nature.
package delim

import (
	"strconv"
	"strings"
	"unicode"
)

// Decode parses text into one float64 array per column.
//
// The column count is fixed by the first non-empty row. Later rows with
// extra fields have them ignored; short rows simply contribute fewer
// values to their trailing columns. Non-numeric fields decode as 0.
// Decode never fails; an input with no usable rows yields nil.
func Decode(text string) [][]float64 {
	var columns [][]float64

	for _, row := range strings.Split(text, "\n") {
		fields := splitFields(row)
		if len(fields) == 0 {
			continue
		}

		if columns == nil {
			columns = make([][]float64, len(fields))
		}

		for c := 0; c < len(columns) && c < len(fields); c++ {
			v, err := strconv.ParseFloat(fields[c], 64)
			if err != nil {
				v = 0
			}
			columns[c] = append(columns[c], v)
		}
	}

	return columns
}

func splitFields(row string) []string {
	return strings.FieldsFunc(row, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
