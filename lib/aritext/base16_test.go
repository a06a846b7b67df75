// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aritext_test

import (
	"errors"
	"testing"

	"github.com/dtn-ari/ari/lib/arierr"
	"github.com/dtn-ari/ari/lib/aritext"
)

func TestBase16RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", []byte{}},
		{"single-byte", []byte{0x00}},
		{"all-bytes", allBytes()},
		{"mixed", []byte("hello, ari")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, uppercase := range []bool{true, false} {
				encoded := aritext.Base16Encode(tt.in, uppercase)
				decoded, err := aritext.Base16Decode(encoded)
				if err != nil {
					t.Fatalf("Base16Decode(%q): %v", encoded, err)
				}
				if string(decoded) != string(tt.in) {
					t.Errorf("round trip (uppercase=%v): got %q, want %q", uppercase, decoded, tt.in)
				}
			}
		})
	}
}

func TestBase16EncodeCase(t *testing.T) {
	if got := aritext.Base16Encode([]byte{0xAB}, true); got != "AB" {
		t.Errorf("Base16Encode(uppercase) = %q, want %q", got, "AB")
	}
	if got := aritext.Base16Encode([]byte{0xAB}, false); got != "ab" {
		t.Errorf("Base16Encode(lowercase) = %q, want %q", got, "ab")
	}
}

func TestBase16DecodeCaseInsensitive(t *testing.T) {
	got, err := aritext.Base16Decode("aB")
	if err != nil {
		t.Fatalf("Base16Decode: %v", err)
	}
	if len(got) != 1 || got[0] != 0xAB {
		t.Errorf("Base16Decode(aB) = %v, want [0xAB]", got)
	}
}

func TestBase16DecodeOddLength(t *testing.T) {
	if _, err := aritext.Base16Decode("abc"); !errors.Is(err, arierr.Malformed) {
		t.Errorf("Base16Decode(abc): got %v, want Malformed", err)
	}
}

func TestBase16DecodeInvalidDigit(t *testing.T) {
	if _, err := aritext.Base16Decode("zz"); !errors.Is(err, arierr.Malformed) {
		t.Errorf("Base16Decode(zz): got %v, want Malformed", err)
	}
}
