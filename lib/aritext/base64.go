// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aritext

import (
	"fmt"

	"github.com/dtn-ari/ari/lib/arierr"
)

const (
	base64Alphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// Base64Encode encodes in using the standard (useURL=false) or URL
// (useURL=true) RFC 4648 alphabet, always padding to a multiple of 4
// with '='.
func Base64Encode(in []byte, useURL bool) string {
	alphabet := base64Alphabet
	if useURL {
		alphabet = base64URLAlphabet
	}

	out := make([]byte, 0, ((len(in)+2)/3)*4)
	for i := 0; i < len(in); i += 3 {
		var b0, b1, b2 byte
		n := len(in) - i
		b0 = in[i]
		if n > 1 {
			b1 = in[i+1]
		}
		if n > 2 {
			b2 = in[i+2]
		}

		out = append(out, alphabet[b0>>2])
		out = append(out, alphabet[((b0<<4)|(b1>>4))&0x3F])
		if n > 1 {
			out = append(out, alphabet[((b1<<2)|(b2>>6))&0x3F])
		} else {
			out = append(out, '=')
		}
		if n > 2 {
			out = append(out, alphabet[b2&0x3F])
		} else {
			out = append(out, '=')
		}
	}
	return string(out)
}

// Base64Decode decodes in, accepting either the standard or URL
// alphabet within the same call (the decoder does not require the
// caller to know which one was used to encode). Runs of '=' mark
// end-of-data; per RFC 4648 §3.3, any non-'=' bytes remaining after a
// padding run produce an error wrapping [arierr.Surplus]. Invalid
// alphabet characters produce [arierr.Malformed].
func Base64Decode(in string) ([]byte, error) {
	out := make([]byte, 0, (len(in)/4)*3+2)

	var buf [4]int
	nbuf := 0
	i := 0
	for i < len(in) {
		if in[i] == '=' {
			break
		}
		v, ok := base64DigitVal(in[i])
		if !ok {
			return nil, fmt.Errorf("base64 decode %q: invalid character %q at position %d: %w", in, in[i], i, arierr.Malformed)
		}
		buf[nbuf] = v
		nbuf++
		i++
		if nbuf == 4 {
			out = append(out, byte(buf[0]<<2|buf[1]>>4))
			out = append(out, byte(buf[1]<<4|buf[2]>>2))
			out = append(out, byte(buf[2]<<6|buf[3]))
			nbuf = 0
		}
	}

	switch nbuf {
	case 0:
		// nothing pending
	case 1:
		return nil, fmt.Errorf("base64 decode %q: truncated final group: %w", in, arierr.Malformed)
	case 2:
		out = append(out, byte(buf[0]<<2|buf[1]>>4))
	case 3:
		out = append(out, byte(buf[0]<<2|buf[1]>>4))
		out = append(out, byte(buf[1]<<4|buf[2]>>2))
	}

	for i < len(in) && in[i] == '=' {
		i++
	}
	if i < len(in) {
		return nil, fmt.Errorf("base64 decode %q: trailing data after padding: %w", in, arierr.Surplus)
	}
	return out, nil
}

func base64DigitVal(b byte) (int, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return int(b - 'A'), true
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 26, true
	case b >= '0' && b <= '9':
		return int(b-'0') + 52, true
	case b == '+' || b == '-':
		return 62, true
	case b == '/' || b == '_':
		return 63, true
	default:
		return 0, false
	}
}
