// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package arierr defines the error kinds shared by every ARI codec.
//
// Each kind is a package-level sentinel error. Call sites wrap it with
// fmt.Errorf("...: %w", arierr.Malformed) so callers can test the kind
// with errors.Is while still seeing a message that names the offending
// input. Sub-codec errors propagate immediately: a MALFORMED error
// three AC elements deep surfaces as MALFORMED to the top-level caller,
// with no partial text retained.
package arierr

import "errors"

var (
	// NullArg indicates a required input was nil or absent.
	NullArg = errors.New("required argument is nil")

	// Malformed indicates a syntactic violation in a sub-codec: bad
	// hex, an odd-length base16 string, a missing "Z" timezone
	// suffix, an unexpected character, and similar lexical errors.
	Malformed = errors.New("malformed input")

	// Surplus indicates trailing bytes remained after a complete
	// token was decoded.
	Surplus = errors.New("surplus trailing data")

	// Overflow indicates an out-of-range numeric value, such as more
	// than nine digits of subsecond precision.
	Overflow = errors.New("value out of range")

	// Unsupported indicates an unknown format letter or an ARI type
	// that the operation does not know how to encode.
	Unsupported = errors.New("unsupported value")
)
