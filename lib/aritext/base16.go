// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aritext

import (
	"fmt"

	"github.com/dtn-ari/ari/lib/arierr"
)

const hexDigitsLower = "0123456789abcdef"

// Base16Encode hex-encodes in using the given case.
func Base16Encode(in []byte, uppercase bool) string {
	digits := hexDigitsLower
	if uppercase {
		digits = hexDigitsUpper
	}
	out := make([]byte, len(in)*2)
	for i, b := range in {
		out[i*2] = digits[b>>4]
		out[i*2+1] = digits[b&0xF]
	}
	return string(out)
}

// Base16Decode is the inverse of [Base16Encode]. The input length
// must be even and every byte must be a hex digit (case-insensitive);
// otherwise an error wrapping [arierr.Malformed] is returned.
func Base16Decode(in string) ([]byte, error) {
	if len(in)%2 != 0 {
		return nil, fmt.Errorf("base16 decode %q: odd length %d: %w", in, len(in), arierr.Malformed)
	}
	out := make([]byte, len(in)/2)
	for i := 0; i < len(out); i++ {
		hi, ok1 := hexDigitVal(in[i*2])
		lo, ok2 := hexDigitVal(in[i*2+1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("base16 decode %q: invalid hex digit at position %d: %w", in, i*2, arierr.Malformed)
		}
		out[i] = byte(hi<<4 | lo)
	}
	return out, nil
}
