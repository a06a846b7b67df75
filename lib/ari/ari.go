// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ari

// ARI is the AMM Resource Identifier: either a typed literal value
// or a reference to a managed object. The zero value is the literal
// UNDEFINED.
type ARI struct {
	isRef bool
	lit   Literal
	ref   Reference
}

// FromLiteral wraps l as an ARI.
func FromLiteral(l Literal) ARI { return ARI{isRef: false, lit: l} }

// FromReference wraps r as an ARI.
func FromReference(r Reference) ARI { return ARI{isRef: true, ref: r} }

// IsReference reports whether a holds a reference rather than a
// literal.
func (a ARI) IsReference() bool { return a.isRef }

// Literal returns a's literal payload, and true if a is a literal.
func (a ARI) Literal() (Literal, bool) { return a.lit, !a.isRef }

// Reference returns a's reference payload, and true if a is a
// reference.
func (a ARI) Reference() (Reference, bool) { return a.ref, a.isRef }
