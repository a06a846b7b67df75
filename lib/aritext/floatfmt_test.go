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

func TestFloatRoundTrip(t *testing.T) {
	values := []float64{0, math.Copysign(0, -1), 1, -1, 1.5, math.Pi, 1e300, 1e-300, math.MaxFloat64, math.SmallestNonzeroFloat64}
	for _, v := range values {
		for _, form := range []byte{'f', 'g', 'e', 'a'} {
			encoded, err := aritext.FloatEncode(v, form)
			if err != nil {
				t.Fatalf("FloatEncode(%v, %q): %v", v, form, err)
			}
			decoded, err := aritext.FloatDecode(encoded)
			if err != nil {
				t.Fatalf("FloatDecode(%q): %v", encoded, err)
			}
			if decoded != v {
				t.Errorf("round trip %v form %q: got %v (%q), want %v", v, form, decoded, encoded, v)
			}
		}
	}
}

func TestFloatEncodeSpecialValues(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		got, err := aritext.FloatEncode(tt.v, 'g')
		if err != nil {
			t.Fatalf("FloatEncode: %v", err)
		}
		if got != tt.want {
			t.Errorf("FloatEncode = %q, want %q", got, tt.want)
		}
	}
}

func TestFloatDecodeSpecialValues(t *testing.T) {
	nan, err := aritext.FloatDecode("NaN")
	if err != nil {
		t.Fatalf("FloatDecode(NaN): %v", err)
	}
	if !math.IsNaN(nan) {
		t.Errorf("FloatDecode(NaN) = %v, want NaN", nan)
	}

	posInf, err := aritext.FloatDecode("+Infinity")
	if err != nil || !math.IsInf(posInf, 1) {
		t.Errorf("FloatDecode(+Infinity) = %v, %v, want +Inf", posInf, err)
	}

	bareInf, err := aritext.FloatDecode("Infinity")
	if err != nil || !math.IsInf(bareInf, 1) {
		t.Errorf("FloatDecode(Infinity) = %v, %v, want +Inf", bareInf, err)
	}

	negInf, err := aritext.FloatDecode("-Infinity")
	if err != nil || !math.IsInf(negInf, -1) {
		t.Errorf("FloatDecode(-Infinity) = %v, %v, want -Inf", negInf, err)
	}
}

func TestFloatEncodeUnsupportedForm(t *testing.T) {
	if _, err := aritext.FloatEncode(1.0, 'z'); !errors.Is(err, arierr.Unsupported) {
		t.Errorf("FloatEncode form z: got %v, want Unsupported", err)
	}
}

func TestFloatDecodeMalformed(t *testing.T) {
	if _, err := aritext.FloatDecode("not-a-number"); !errors.Is(err, arierr.Malformed) {
		t.Errorf("FloatDecode(not-a-number): got %v, want Malformed", err)
	}
}
