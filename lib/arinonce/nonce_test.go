// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package arinonce_test

import (
	"testing"

	"github.com/dtn-ari/ari/lib/ari"
	"github.com/dtn-ari/ari/lib/arinonce"
)

func TestNewIsBstr(t *testing.T) {
	n := arinonce.New()
	lit, ok := n.Literal()
	if !ok {
		t.Fatal("New: expected a literal")
	}
	if lit.PrimType() != ari.PrimBstr {
		t.Errorf("PrimType = %v, want PrimBstr", lit.PrimType())
	}
	if len(lit.BytesValue()) != 16 {
		t.Errorf("len(BytesValue()) = %d, want 16", len(lit.BytesValue()))
	}
}

func TestNewIsFresh(t *testing.T) {
	a, b := arinonce.New(), arinonce.New()
	if ari.Equal(a, b) {
		t.Error("two calls to New produced equal nonces")
	}
}
