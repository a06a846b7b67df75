// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ari

import (
	"bytes"
	"math"
)

// Equal reports whether a and b are structurally equal. UNDEFINED
// equals only another UNDEFINED; NaN equals any other NaN under the
// float rule regardless of bit pattern.
func Equal(a, b ARI) bool {
	if a.isRef != b.isRef {
		return false
	}
	if a.isRef {
		return a.ref.ObjPath.Equal(b.ref.ObjPath) && equalParams(a.ref.Params, b.ref.Params)
	}
	return equalLiteral(a.lit, b.lit)
}

func equalParams(a, b Params) bool {
	if a.state != b.state {
		return false
	}
	switch a.state {
	case ParamsAC:
		return equalAC(a.ac, b.ac)
	case ParamsAM:
		return equalAM(a.am, b.am)
	default:
		return true
	}
}

func equalAC(a, b *AC) bool {
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if !Equal(a.items[i], b.items[i]) {
			return false
		}
	}
	return true
}

func equalAM(a, b *AM) bool {
	if len(a.pairs) != len(b.pairs) {
		return false
	}
	for _, p := range a.pairs {
		v, ok := b.Get(p.Key)
		if !ok || !Equal(p.Value, v) {
			return false
		}
	}
	return true
}

func equalTBL(a, b *TBL) bool {
	if a.ncols != b.ncols || len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if !Equal(a.items[i], b.items[i]) {
			return false
		}
	}
	return true
}

func equalExecset(a, b *EXECSET) bool {
	if !Equal(a.Nonce, b.Nonce) || len(a.Targets) != len(b.Targets) {
		return false
	}
	for i := range a.Targets {
		if !Equal(a.Targets[i], b.Targets[i]) {
			return false
		}
	}
	return true
}

func equalReport(a, b Report) bool {
	if !Equal(a.RelTime, b.RelTime) || !Equal(a.Source, b.Source) || len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if !Equal(a.Items[i], b.Items[i]) {
			return false
		}
	}
	return true
}

func equalRptset(a, b *RPTSET) bool {
	if !Equal(a.Nonce, b.Nonce) || !Equal(a.RefTime, b.RefTime) || len(a.Reports) != len(b.Reports) {
		return false
	}
	for i := range a.Reports {
		if !equalReport(a.Reports[i], b.Reports[i]) {
			return false
		}
	}
	return true
}

func equalLiteral(a, b Literal) bool {
	if a.hasAriType != b.hasAriType {
		return false
	}
	if a.hasAriType {
		if a.ariType != b.ariType {
			return false
		}
		switch a.ariType {
		case TypeAC:
			ac1, _ := a.AC()
			ac2, _ := b.AC()
			if !equalAC(ac1, ac2) {
				return false
			}
		case TypeAM:
			am1, _ := a.AM()
			am2, _ := b.AM()
			if !equalAM(am1, am2) {
				return false
			}
		case TypeTBL:
			t1, _ := a.TBL()
			t2, _ := b.TBL()
			if !equalTBL(t1, t2) {
				return false
			}
		case TypeExecset:
			e1, _ := a.EXECSET()
			e2, _ := b.EXECSET()
			if !equalExecset(e1, e2) {
				return false
			}
		case TypeRptset:
			r1, _ := a.RPTSET()
			r2, _ := b.RPTSET()
			if !equalRptset(r1, r2) {
				return false
			}
		}
	}

	if a.primType != b.primType {
		return false
	}
	switch a.primType {
	case PrimBool:
		return a.boolVal == b.boolVal
	case PrimUint64:
		return a.u64Val == b.u64Val
	case PrimInt64:
		return a.i64Val == b.i64Val
	case PrimFloat64:
		aNaN, bNaN := math.IsNaN(a.f64Val), math.IsNaN(b.f64Val)
		if aNaN != bNaN {
			return false
		}
		if aNaN {
			return true
		}
		return a.f64Val == b.f64Val
	case PrimTstr, PrimBstr:
		return bytes.Equal(a.bytesVal, b.bytesVal)
	case PrimTimespec:
		return a.timeVal == b.timeVal
	default:
		// PrimUndefined, PrimNull, PrimOther carry no further payload.
		return true
	}
}
