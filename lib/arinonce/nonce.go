// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package arinonce generates fresh nonce values for the EXECSET and
// RPTSET ARI containers. The wire format only requires a nonce to be
// an ARI that the receiving agent can use for deduplication; this
// package fixes a concrete choice (a random UUID carried as a BSTR
// literal) so callers building EXECSET/RPTSET values by hand don't
// have to invent their own nonce scheme.
package arinonce

import (
	"github.com/google/uuid"

	"github.com/dtn-ari/ari/lib/ari"
)

// New returns a fresh nonce as a BSTR literal wrapping 16 random
// bytes (a version 4 UUID).
func New() ari.ARI {
	id := uuid.New()
	return ari.FromLiteral(ari.BstrLiteral(id[:]))
}
