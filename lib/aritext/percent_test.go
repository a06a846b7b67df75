// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aritext_test

import (
	"errors"
	"testing"

	"github.com/dtn-ari/ari/lib/arierr"
	"github.com/dtn-ari/ari/lib/aritext"
)

func TestPercentRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		safe string
	}{
		{"empty", []byte{}, ""},
		{"unreserved-only", []byte("Hello_World-9.9~x"), ""},
		{"needs-escaping", []byte("a b/c?d=e&f"), ""},
		{"all-bytes", allBytes(), ""},
		{"safe-extends-unreserved", []byte("a/b/c"), "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := aritext.PercentEncode(tt.in, tt.safe)
			decoded, err := aritext.PercentDecode(encoded)
			if err != nil {
				t.Fatalf("PercentDecode(%q): %v", encoded, err)
			}
			if string(decoded) != string(tt.in) {
				t.Errorf("round trip: got %q, want %q", decoded, tt.in)
			}
		})
	}
}

func TestPercentEncodeUppercaseHex(t *testing.T) {
	got := aritext.PercentEncode([]byte{0xAB}, "")
	if got != "%AB" {
		t.Errorf("PercentEncode = %q, want %%AB", got)
	}
}

func TestPercentDecodeCaseInsensitive(t *testing.T) {
	got, err := aritext.PercentDecode("%ab%AB")
	if err != nil {
		t.Fatalf("PercentDecode: %v", err)
	}
	want := []byte{0xAB, 0xAB}
	if string(got) != string(want) {
		t.Errorf("PercentDecode = %v, want %v", got, want)
	}
}

func TestPercentDecodeTruncated(t *testing.T) {
	tests := []string{"%", "%4", "abc%"}
	for _, in := range tests {
		if _, err := aritext.PercentDecode(in); !errors.Is(err, arierr.Malformed) {
			t.Errorf("PercentDecode(%q): got %v, want Malformed", in, err)
		}
	}
}

func TestPercentDecodeInvalidHexDigit(t *testing.T) {
	if _, err := aritext.PercentDecode("%GG"); !errors.Is(err, arierr.Malformed) {
		t.Errorf("PercentDecode(%%GG): got %v, want Malformed", err)
	}
}

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", false},
		{"a", true},
		{"_a", true},
		{"a1.b-c_d", true},
		{"1abc", false},
		{"a b", false},
		{"a/b", false},
	}
	for _, tt := range tests {
		if got := aritext.IsIdentity(tt.s); got != tt.want {
			t.Errorf("IsIdentity(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func allBytes() []byte {
	out := make([]byte, 256)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}
