// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package aricbor is the CBOR companion codec for [ari.ARI] trees.
// It is a complementary collaborator to lib/ariencode in the sense
// of spec §6: both must accept the same logical values and agree
// with the text encoder's notion of equality, but neither depends on
// the other. Encoding uses Core Deterministic Encoding (RFC 8949
// §4.2) via github.com/fxamacker/cbor/v2, exactly as lib/codec
// configures it in the collaborator platform this package was
// adapted from, so the same ARI tree always produces the same bytes.
//
// ARI, Literal, and Reference keep their fields unexported to
// preserve the value model's immutability guarantees, so they cannot
// carry cbor struct tags directly. This package instead defines a
// private wire representation and converts to and from it with
// [ari.ARI]'s public accessors.
package aricbor
