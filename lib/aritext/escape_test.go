// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aritext_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dtn-ari/ari/lib/arierr"
	"github.com/dtn-ari/ari/lib/aritext"
)

func TestSlashRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		quote rune
	}{
		{"empty", "", '"'},
		{"plain", "hello world", '"'},
		{"quote-and-backslash", `say "hi" \ bye`, '"'},
		{"bstr-quote", `it's a 'test'`, '\''},
		{"control-chars", "a\bb\fc\nd\re\tf", '"'},
		{"bmp-non-ascii", "café 中文", '"'},
		{"surrogate-pair-min", string(rune(0x10000)), '"'},
		{"surrogate-pair-max", string(rune(0x10FFFF)), '"'},
		{"mixed-astral", "a" + string(rune(0x1F600)) + "b", '"'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			escaped := aritext.SlashEscape(tt.s, tt.quote)
			got, err := aritext.SlashUnescape(escaped)
			if err != nil {
				t.Fatalf("SlashUnescape(%q): %v", escaped, err)
			}
			if got != tt.s {
				t.Errorf("round trip: got %q, want %q", got, tt.s)
			}
		})
	}
}

func TestSlashEscapeSurrogatePairFormula(t *testing.T) {
	got := aritext.SlashEscape(string(rune(0x10000)), '"')
	want := fmt.Sprintf(`\u%04X\u%04X`, 0xD800, 0xDC00)
	if got != want {
		t.Errorf("SlashEscape(U+10000) = %q, want %q", got, want)
	}

	got = aritext.SlashEscape(string(rune(0x10FFFF)), '"')
	want = fmt.Sprintf(`\u%04X\u%04X`, 0xDBFF, 0xDFFF)
	if got != want {
		t.Errorf("SlashEscape(U+10FFFF) = %q, want %q", got, want)
	}
}

func TestSlashUnescapeNamedEscapes(t *testing.T) {
	got, err := aritext.SlashUnescape(`\b\f\n\r\t`)
	if err != nil {
		t.Fatalf("SlashUnescape: %v", err)
	}
	want := "\b\f\n\r\t"
	if got != want {
		t.Errorf("SlashUnescape = %q, want %q", got, want)
	}
}

func TestSlashUnescapeDanglingBackslash(t *testing.T) {
	if _, err := aritext.SlashUnescape(`abc\`); !errors.Is(err, arierr.Malformed) {
		t.Errorf("SlashUnescape: got %v, want Malformed", err)
	}
}

func TestSlashUnescapeHighSurrogateWithoutLow(t *testing.T) {
	if _, err := aritext.SlashUnescape(`\uD800`); !errors.Is(err, arierr.Malformed) {
		t.Errorf("SlashUnescape: got %v, want Malformed", err)
	}
	if _, err := aritext.SlashUnescape(`\uD800A`); !errors.Is(err, arierr.Malformed) {
		t.Errorf("SlashUnescape: got %v, want Malformed", err)
	}
}

func TestSlashUnescapeInvalidHexDigits(t *testing.T) {
	if _, err := aritext.SlashUnescape(`\uZZZZ`); !errors.Is(err, arierr.Malformed) {
		t.Errorf("SlashUnescape: got %v, want Malformed", err)
	}
	if _, err := aritext.SlashUnescape(`\u12`); !errors.Is(err, arierr.Malformed) {
		t.Errorf("SlashUnescape: got %v, want Malformed", err)
	}
}

func TestSlashUnescapeUnknownEscapeIsLiteral(t *testing.T) {
	got, err := aritext.SlashUnescape(`\x`)
	if err != nil {
		t.Fatalf("SlashUnescape: %v", err)
	}
	if got != "x" {
		t.Errorf("SlashUnescape(\\x) = %q, want %q", got, "x")
	}
}
