// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aritext

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dtn-ari/ari/lib/arierr"
)

// FloatEncode renders value per form ('f', 'g', 'e', or 'a'). NaN and
// +/-Inf are rendered as the literal tokens "NaN", "+Infinity", and
// "-Infinity" regardless of form. Shortest round-trip precision is
// used (strconv's precision -1) so [FloatDecode] recovers the exact
// bit pattern for every finite value.
func FloatEncode(value float64, form byte) (string, error) {
	if math.IsNaN(value) {
		return "NaN", nil
	}
	if math.IsInf(value, 0) {
		if value < 0 {
			return "-Infinity", nil
		}
		return "+Infinity", nil
	}

	switch form {
	case 'f', 'g', 'e':
		return strconv.FormatFloat(value, form, -1, 64), nil
	case 'a':
		return strconv.FormatFloat(value, 'x', -1, 64), nil
	default:
		return "", fmt.Errorf("float encode: format %q: %w", form, arierr.Unsupported)
	}
}

// FloatDecode parses s as produced by [FloatEncode] (or any
// strconv.ParseFloat-compatible decimal/hex-float/special-value
// text).
func FloatDecode(s string) (float64, error) {
	switch s {
	case "NaN":
		return math.NaN(), nil
	case "+Infinity", "Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("float decode %q: %w", s, arierr.Malformed)
	}
	return v, nil
}
