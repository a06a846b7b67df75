// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aritext_test

import (
	"errors"
	"math"
	"testing"

	"github.com/dtn-ari/ari/lib/arierr"
	"github.com/dtn-ari/ari/lib/aritext"
)

func TestUintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 9, 255, 65535, math.MaxUint64}
	for _, v := range values {
		for _, base := range []int{2, 10, 16} {
			encoded, err := aritext.UintEncode(v, base)
			if err != nil {
				t.Fatalf("UintEncode(%d, %d): %v", v, base, err)
			}
			decoded, err := aritext.UintDecode(encoded)
			if err != nil {
				t.Fatalf("UintDecode(%q): %v", encoded, err)
			}
			if decoded != v {
				t.Errorf("round trip %d base %d: got %d, want %d", v, base, decoded, v)
			}
		}
	}
}

func TestIntRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		for _, base := range []int{2, 10, 16} {
			encoded, err := aritext.IntEncode(v, base)
			if err != nil {
				t.Fatalf("IntEncode(%d, %d): %v", v, base, err)
			}
			decoded, err := aritext.IntDecode(encoded)
			if err != nil {
				t.Fatalf("IntDecode(%q): %v", encoded, err)
			}
			if decoded != v {
				t.Errorf("round trip %d base %d: got %d, want %d", v, base, decoded, v)
			}
		}
	}
}

func TestUintEncodeForms(t *testing.T) {
	tests := []struct {
		v    uint64
		base int
		want string
	}{
		{5, 2, "0b101"},
		{5, 10, "5"},
		{255, 16, "0xFF"},
	}
	for _, tt := range tests {
		got, err := aritext.UintEncode(tt.v, tt.base)
		if err != nil {
			t.Fatalf("UintEncode: %v", err)
		}
		if got != tt.want {
			t.Errorf("UintEncode(%d, %d) = %q, want %q", tt.v, tt.base, got, tt.want)
		}
	}
}

func TestUintEncodeUnsupportedBase(t *testing.T) {
	if _, err := aritext.UintEncode(1, 8); !errors.Is(err, arierr.Unsupported) {
		t.Errorf("UintEncode base 8: got %v, want Unsupported", err)
	}
}

func TestUintDecodeBinaryPrefix(t *testing.T) {
	got, err := aritext.UintDecode("0b1010")
	if err != nil {
		t.Fatalf("UintDecode: %v", err)
	}
	if got != 10 {
		t.Errorf("UintDecode(0b1010) = %d, want 10", got)
	}
}

func TestUintDecodeBinaryPrefixUppercase(t *testing.T) {
	got, err := aritext.UintDecode("0B11")
	if err != nil {
		t.Fatalf("UintDecode: %v", err)
	}
	if got != 3 {
		t.Errorf("UintDecode(0B11) = %d, want 3", got)
	}
}

func TestUintDecodeBinaryPrefixNoDigits(t *testing.T) {
	if _, err := aritext.UintDecode("0b"); !errors.Is(err, arierr.Malformed) {
		t.Errorf("UintDecode(0b): got %v, want Malformed", err)
	}
}

func TestUintDecodeBinaryInvalidDigit(t *testing.T) {
	if _, err := aritext.UintDecode("0b12"); !errors.Is(err, arierr.Malformed) {
		t.Errorf("UintDecode(0b12): got %v, want Malformed", err)
	}
}

func TestUintDecodeHexPrefix(t *testing.T) {
	got, err := aritext.UintDecode("0xFF")
	if err != nil {
		t.Fatalf("UintDecode: %v", err)
	}
	if got != 255 {
		t.Errorf("UintDecode(0xFF) = %d, want 255", got)
	}
}

// TestUintDecodeOctalCompat exercises the C strtoull base-0
// compatibility rule spec.md §9 calls out by name: a leading "0" with
// no "x"/"b" selects octal, not decimal.
func TestUintDecodeOctalCompat(t *testing.T) {
	got, err := aritext.UintDecode("010")
	if err != nil {
		t.Fatalf("UintDecode: %v", err)
	}
	if got != 8 {
		t.Errorf("UintDecode(010) = %d, want 8 (octal)", got)
	}
}

func TestUintDecodeSingleZero(t *testing.T) {
	got, err := aritext.UintDecode("0")
	if err != nil {
		t.Fatalf("UintDecode: %v", err)
	}
	if got != 0 {
		t.Errorf("UintDecode(0) = %d, want 0", got)
	}
}

func TestUintDecodeTrailingGarbage(t *testing.T) {
	if _, err := aritext.UintDecode("123abc"); !errors.Is(err, arierr.Malformed) {
		t.Errorf("UintDecode(123abc): got %v, want Malformed", err)
	}
}

func TestIntEncodeNegative(t *testing.T) {
	got, err := aritext.IntEncode(-42, 10)
	if err != nil {
		t.Fatalf("IntEncode: %v", err)
	}
	if got != "-42" {
		t.Errorf("IntEncode(-42) = %q, want -42", got)
	}
}

func TestIntDecodeNegative(t *testing.T) {
	got, err := aritext.IntDecode("-0x2A")
	if err != nil {
		t.Fatalf("IntDecode: %v", err)
	}
	if got != -42 {
		t.Errorf("IntDecode(-0x2A) = %d, want -42", got)
	}
}
