// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aritext

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dtn-ari/ari/lib/arierr"
)

// SlashEscape escapes t for inclusion inside a quoted ARI text or
// byte-string token. quote is the surrounding quote character ('"'
// for text strings, '\'' for byte strings); it and the backslash
// itself are escaped with a leading backslash. The control characters
// \b \f \n \r \t get their short escapes. Printable ASCII (<= U+00FF
// and printable) passes through verbatim. Other code points in the
// BMP (excluding the UTF-16 surrogate range) become \uXXXX; code
// points at or above U+10000 become a \uXXXX\uXXXX surrogate pair.
func SlashEscape(t string, quote rune) string {
	var out strings.Builder
	out.Grow(len(t))
	for _, r := range t {
		switch {
		case r == quote || r == '\\':
			out.WriteByte('\\')
			out.WriteRune(r)
		case r == '\b':
			out.WriteString(`\b`)
		case r == '\f':
			out.WriteString(`\f`)
		case r == '\n':
			out.WriteString(`\n`)
		case r == '\r':
			out.WriteString(`\r`)
		case r == '\t':
			out.WriteString(`\t`)
		case r <= 0xFF && isPrintASCII(r):
			out.WriteRune(r)
		case r <= 0xD7FF || (r >= 0xE000 && r <= 0xFFFF):
			fmt.Fprintf(&out, `\u%04X`, r)
		default:
			uprime := r - 0x10000
			high := 0xD800 + (uprime >> 10)
			low := 0xDC00 + (uprime & 0x3FF)
			fmt.Fprintf(&out, `\u%04X\u%04X`, high, low)
		}
	}
	return out.String()
}

// isPrintASCII mirrors C's isprint() for single-byte code points:
// space (0x20) through tilde (0x7E) are printable; everything above
// 0x7F is treated as printable extended-ASCII here since the caller
// has already routed control characters to their named escapes above.
func isPrintASCII(r rune) bool {
	if r < 0x20 {
		return false
	}
	if r == 0x7F {
		return false
	}
	return true
}

// SlashUnescape is the inverse of [SlashEscape]. It recognizes \b \f
// \n \r \t, \uXXXX with an optional trailing \uXXXX low surrogate,
// and treats any other \X as the literal character X. A dangling
// backslash at end of input, a high surrogate not followed by a
// valid \uXXXX low surrogate, or invalid hex digits produce an error
// wrapping [arierr.Malformed].
func SlashUnescape(in string) (string, error) {
	var out strings.Builder
	out.Grow(len(in))

	runes := []rune(in)
	i := 0
	for i < len(runes) {
		r := runes[i]
		if r != '\\' {
			out.WriteRune(r)
			i++
			continue
		}
		i++
		if i >= len(runes) {
			return "", fmt.Errorf("slash unescape %q: dangling backslash: %w", in, arierr.Malformed)
		}
		switch runes[i] {
		case 'b':
			out.WriteByte(0x08)
			i++
		case 'f':
			out.WriteByte(0x0C)
			i++
		case 'n':
			out.WriteByte(0x0A)
			i++
		case 'r':
			out.WriteByte(0x0D)
			i++
		case 't':
			out.WriteByte(0x09)
			i++
		case 'u':
			i++
			val, n, err := takeHex4(runes, i)
			if err != nil {
				return "", fmt.Errorf("slash unescape %q: %w", in, err)
			}
			i += n

			var cp rune
			if val >= 0xD800 && val <= 0xDFFF {
				if i+2 > len(runes) || runes[i] != '\\' || runes[i+1] != 'u' {
					return "", fmt.Errorf("slash unescape %q: high surrogate without trailing \\u escape: %w", in, arierr.Malformed)
				}
				i += 2
				low, n2, err := takeHex4(runes, i)
				if err != nil {
					return "", fmt.Errorf("slash unescape %q: %w", in, err)
				}
				i += n2
				if low < 0xDC00 || low > 0xDFFF {
					return "", fmt.Errorf("slash unescape %q: high surrogate not followed by a low surrogate: %w", in, arierr.Malformed)
				}
				cp = (rune(val-0xD800) << 10) | rune(low-0xDC00)
				cp += 0x10000
			} else {
				cp = rune(val)
			}
			out.WriteRune(cp)
		default:
			out.WriteRune(runes[i])
			i++
		}
	}
	return out.String(), nil
}

func takeHex4(runes []rune, i int) (val int, consumed int, err error) {
	if i+4 > len(runes) {
		return 0, 0, arierr.Malformed
	}
	v := 0
	for j := 0; j < 4; j++ {
		d, ok := hexDigitVal(byte(runes[i+j]))
		if !ok || runes[i+j] > utf8.RuneSelf {
			return 0, 0, arierr.Malformed
		}
		v = v<<4 | d
	}
	return v, 4, nil
}
