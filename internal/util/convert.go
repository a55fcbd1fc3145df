// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "strconv"

// IntToString converts an int to string.
func IntToString(i int) string {
	return strconv.Itoa(i)
}

// FloatToString converts a float64 to string with the fewest digits needed
// to represent the value exactly. Used for literal interpolation of user
// input back into chat text (6.5 -> "6.5", 40 -> "40").
func FloatToString(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FloatToStringPrec converts a float64 to string with fixed decimal precision.
func FloatToStringPrec(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}
