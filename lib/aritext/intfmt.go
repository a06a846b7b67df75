// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aritext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtn-ari/ari/lib/arierr"
)

// UintEncode renders value in the given base: 2 as "0b<digits>" with
// no redundant leading zeros, 10 as plain decimal, 16 as
// "0x<UPPERCASE>". Any other base returns an error wrapping
// [arierr.Unsupported].
func UintEncode(value uint64, base int) (string, error) {
	switch base {
	case 2:
		return "0b" + strconv.FormatUint(value, 2), nil
	case 10:
		return strconv.FormatUint(value, 10), nil
	case 16:
		return "0x" + strings.ToUpper(strconv.FormatUint(value, 16)), nil
	default:
		return "", fmt.Errorf("uint encode: base %d: %w", base, arierr.Unsupported)
	}
}

// UintDecode parses s, auto-detecting the base: a "0b" prefix selects
// binary (only '0'/'1' digits allowed after it); otherwise the value
// is parsed with C strtoull base-0 rules, i.e. a "0x"/"0X" prefix
// selects hex, a leading "0" selects octal, and anything else is
// decimal. Any unconsumed trailing byte is a [arierr.Malformed] error.
func UintDecode(s string) (uint64, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'b' || s[1] == 'B') {
		rest := s[2:]
		if rest == "" {
			return 0, fmt.Errorf("uint decode %q: no binary digits: %w", s, arierr.Malformed)
		}
		var v uint64
		for i := 0; i < len(rest); i++ {
			switch rest[i] {
			case '0':
				v <<= 1
			case '1':
				v = v<<1 | 1
			default:
				return 0, fmt.Errorf("uint decode %q: invalid binary digit %q: %w", s, rest[i], arierr.Malformed)
			}
		}
		return v, nil
	}

	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("uint decode %q: %w", s, arierr.Malformed)
	}
	return v, nil
}

// IntEncode renders a signed value as "-" followed by the unsigned
// encoding of its absolute value (for negative inputs), or the plain
// unsigned encoding otherwise.
func IntEncode(value int64, base int) (string, error) {
	if value < 0 {
		abs, err := UintEncode(uint64(-value), base)
		if err != nil {
			return "", err
		}
		return "-" + abs, nil
	}
	return UintEncode(uint64(value), base)
}

// IntDecode is the inverse of [IntEncode]: an optional leading '-'
// followed by an unsigned token decoded with [UintDecode].
func IntDecode(s string) (int64, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	v, err := UintDecode(s)
	if err != nil {
		return 0, err
	}
	if neg {
		return -int64(v), nil
	}
	return int64(v), nil
}
