// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ari

import "github.com/dtn-ari/ari/lib/aritext"

// PrimType identifies which alternative of a [Literal]'s value is
// populated.
type PrimType int8

const (
	PrimUndefined PrimType = iota
	PrimNull
	PrimBool
	PrimUint64
	PrimInt64
	PrimFloat64
	PrimTstr
	PrimBstr
	PrimTimespec
	// PrimOther marks a literal whose value lives entirely in its
	// container handle (AC, AM, TBL, EXECSET, RPTSET); HasAriType is
	// always true for these.
	PrimOther
)

// Literal carries a primitive value and, optionally, an explicit ARI
// type tag. Container-tagged literals (AC/AM/TBL/EXECSET/RPTSET) hold
// their payload in container rather than in the scalar fields.
type Literal struct {
	primType   PrimType
	boolVal    bool
	u64Val     uint64
	i64Val     int64
	f64Val     float64
	bytesVal   []byte
	timeVal    aritext.Timespec
	hasAriType bool
	ariType    TypeCode
	container  any
}

// Undefined returns the UNDEFINED literal, which matches only itself
// (see [Equal]).
func Undefined() Literal { return Literal{primType: PrimUndefined} }

// NullLiteral returns the NULL literal.
func NullLiteral() Literal { return Literal{primType: PrimNull} }

// BoolLiteral returns a BOOL literal carrying v.
func BoolLiteral(v bool) Literal { return Literal{primType: PrimBool, boolVal: v} }

// Uint64Literal returns a UINT64 literal carrying v.
func Uint64Literal(v uint64) Literal { return Literal{primType: PrimUint64, u64Val: v} }

// Int64Literal returns an INT64 literal carrying v.
func Int64Literal(v int64) Literal { return Literal{primType: PrimInt64, i64Val: v} }

// Float64Literal returns a FLOAT64 literal carrying v.
func Float64Literal(v float64) Literal { return Literal{primType: PrimFloat64, f64Val: v} }

// TstrLiteral returns a TSTR literal carrying s.
func TstrLiteral(s string) Literal { return Literal{primType: PrimTstr, bytesVal: []byte(s)} }

// BstrLiteral returns a BSTR literal carrying b. BstrLiteral takes
// ownership of b.
func BstrLiteral(b []byte) Literal { return Literal{primType: PrimBstr, bytesVal: b} }

// TimespecLiteral returns a TIMESPEC literal carrying ts. It is the
// value alternative required by the TP and TD ARI types.
func TimespecLiteral(ts aritext.Timespec) Literal { return Literal{primType: PrimTimespec, timeVal: ts} }

// WithType returns a copy of l tagged with the given explicit ARI
// type.
func (l Literal) WithType(code TypeCode) Literal {
	l.hasAriType = true
	l.ariType = code
	return l
}

// ACLiteral returns an AC-tagged literal wrapping ac.
func ACLiteral(ac *AC) Literal {
	return Literal{primType: PrimOther, hasAriType: true, ariType: TypeAC, container: ac}
}

// AMLiteral returns an AM-tagged literal wrapping am.
func AMLiteral(am *AM) Literal {
	return Literal{primType: PrimOther, hasAriType: true, ariType: TypeAM, container: am}
}

// TBLLiteral returns a TBL-tagged literal wrapping t.
func TBLLiteral(t *TBL) Literal {
	return Literal{primType: PrimOther, hasAriType: true, ariType: TypeTBL, container: t}
}

// EXECSETLiteral returns an EXECSET-tagged literal wrapping e.
func EXECSETLiteral(e *EXECSET) Literal {
	return Literal{primType: PrimOther, hasAriType: true, ariType: TypeExecset, container: e}
}

// RPTSETLiteral returns an RPTSET-tagged literal wrapping r.
func RPTSETLiteral(r *RPTSET) Literal {
	return Literal{primType: PrimOther, hasAriType: true, ariType: TypeRptset, container: r}
}

// PrimType reports which scalar alternative l holds.
func (l Literal) PrimType() PrimType { return l.primType }

// HasAriType reports whether l carries an explicit type tag.
func (l Literal) HasAriType() bool { return l.hasAriType }

// AriType returns l's explicit type tag. Only meaningful when
// HasAriType is true.
func (l Literal) AriType() TypeCode { return l.ariType }

// BoolValue returns l's BOOL payload.
func (l Literal) BoolValue() bool { return l.boolVal }

// Uint64Value returns l's UINT64 payload.
func (l Literal) Uint64Value() uint64 { return l.u64Val }

// Int64Value returns l's INT64 payload.
func (l Literal) Int64Value() int64 { return l.i64Val }

// Float64Value returns l's FLOAT64 payload.
func (l Literal) Float64Value() float64 { return l.f64Val }

// BytesValue returns l's TSTR or BSTR payload.
func (l Literal) BytesValue() []byte { return l.bytesVal }

// TimeValue returns l's TIMESPEC payload.
func (l Literal) TimeValue() aritext.Timespec { return l.timeVal }

// AC returns l's AC container and true if l is AC-tagged.
func (l Literal) AC() (*AC, bool) {
	c, ok := l.container.(*AC)
	return c, ok
}

// AM returns l's AM container and true if l is AM-tagged.
func (l Literal) AM() (*AM, bool) {
	c, ok := l.container.(*AM)
	return c, ok
}

// TBL returns l's TBL container and true if l is TBL-tagged.
func (l Literal) TBL() (*TBL, bool) {
	c, ok := l.container.(*TBL)
	return c, ok
}

// EXECSET returns l's EXECSET container and true if l is
// EXECSET-tagged.
func (l Literal) EXECSET() (*EXECSET, bool) {
	c, ok := l.container.(*EXECSET)
	return c, ok
}

// RPTSET returns l's RPTSET container and true if l is
// RPTSET-tagged.
func (l Literal) RPTSET() (*RPTSET, bool) {
	c, ok := l.container.(*RPTSET)
	return c, ok
}
