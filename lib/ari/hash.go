// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ari

import "math"

const (
	hashSeed  uint64 = 14695981039346656037
	hashPrime uint64 = 1099511628211
)

// canonicalNaNBits normalizes every NaN float64 to one hash
// contribution, matching the float equality rule: all NaNs are equal
// to each other, so they must hash identically (see Invariant 2).
var canonicalNaNBits = math.Float64bits(math.NaN())

func hashCombine(acc, v uint64) uint64 {
	return (acc ^ v) * hashPrime
}

func hashBytes(seed uint64, b []byte) uint64 {
	acc := seed
	for _, c := range b {
		acc = hashCombine(acc, uint64(c))
	}
	return acc
}

func hashBool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a value consistent with [Equal]: equal ARIs hash
// equal. Unlike [Visit], which walks every container positionally,
// Hash recurses by hand so it can fold an AM's pairs commutatively —
// [equalAM] compares AM values as unordered key sets via b.Get(key),
// so two AMs built from the same pairs in different insertion orders
// must hash equal too, which a sequential, order-sensitive fold (the
// right choice for AC/TBL/EXECSET/RPTSET, where order *is*
// significant to Equal) would not give.
func Hash(a ARI) uint64 {
	return hashARI(a)
}

func hashARI(a ARI) uint64 {
	if a.isRef {
		acc := hashCombine(hashSeed, a.ref.ObjPath.hash())
		return hashCombine(acc, hashParams(a.ref.Params))
	}
	return hashLiteral(a.lit)
}

func hashParams(p Params) uint64 {
	switch p.state {
	case ParamsAC:
		return hashCombine(hashSeed, hashAC(p.ac))
	case ParamsAM:
		return hashCombine(hashSeed, hashAM(p.am))
	default:
		return hashSeed
	}
}

func hashLiteral(l Literal) uint64 {
	acc := hashLiteralShallow(l)
	if !l.hasAriType {
		return acc
	}
	switch l.ariType {
	case TypeAC:
		if c, ok := l.AC(); ok {
			acc = hashCombine(acc, hashAC(c))
		}
	case TypeAM:
		if m, ok := l.AM(); ok {
			acc = hashCombine(acc, hashAM(m))
		}
	case TypeTBL:
		if t, ok := l.TBL(); ok {
			acc = hashCombine(acc, hashTBL(t))
		}
	case TypeExecset:
		if e, ok := l.EXECSET(); ok {
			acc = hashCombine(acc, hashExecset(e))
		}
	case TypeRptset:
		if r, ok := l.RPTSET(); ok {
			acc = hashCombine(acc, hashRptset(r))
		}
	}
	return acc
}

func hashLiteralShallow(l Literal) uint64 {
	acc := hashSeed
	acc = hashCombine(acc, hashBool(l.hasAriType))
	if l.hasAriType {
		acc = hashCombine(acc, uint64(l.ariType))
	}
	acc = hashCombine(acc, uint64(l.primType))
	switch l.primType {
	case PrimBool:
		acc = hashCombine(acc, hashBool(l.boolVal))
	case PrimUint64:
		acc = hashCombine(acc, l.u64Val)
	case PrimInt64:
		acc = hashCombine(acc, uint64(l.i64Val))
	case PrimFloat64:
		if math.IsNaN(l.f64Val) {
			acc = hashCombine(acc, canonicalNaNBits)
		} else {
			acc = hashCombine(acc, math.Float64bits(l.f64Val))
		}
	case PrimTstr, PrimBstr:
		acc = hashCombine(acc, hashBytes(hashSeed, l.bytesVal))
	case PrimTimespec:
		acc = hashCombine(acc, uint64(l.timeVal.Seconds))
		acc = hashCombine(acc, uint64(l.timeVal.Nanos))
	}
	return acc
}

func hashAC(c *AC) uint64 {
	acc := hashSeed
	for _, item := range c.items {
		acc = hashCombine(acc, hashARI(item))
	}
	return acc
}

// hashAM sums each pair's hash rather than folding them in sequence,
// so the contribution is commutative: reordering pairs cannot change
// the result, matching AM's unordered-key-set equality rule.
func hashAM(m *AM) uint64 {
	var acc uint64
	for _, p := range m.pairs {
		acc += hashCombine(hashARI(p.Key), hashARI(p.Value))
	}
	return hashCombine(hashSeed, acc)
}

func hashTBL(t *TBL) uint64 {
	acc := hashCombine(hashSeed, uint64(t.ncols))
	for _, item := range t.items {
		acc = hashCombine(acc, hashARI(item))
	}
	return acc
}

func hashExecset(e *EXECSET) uint64 {
	acc := hashCombine(hashSeed, hashARI(e.Nonce))
	for _, target := range e.Targets {
		acc = hashCombine(acc, hashARI(target))
	}
	return acc
}

func hashReport(r Report) uint64 {
	acc := hashCombine(hashSeed, hashARI(r.RelTime))
	acc = hashCombine(acc, hashARI(r.Source))
	for _, item := range r.Items {
		acc = hashCombine(acc, hashARI(item))
	}
	return acc
}

func hashRptset(rs *RPTSET) uint64 {
	acc := hashCombine(hashSeed, hashARI(rs.Nonce))
	acc = hashCombine(acc, hashARI(rs.RefTime))
	for _, report := range rs.Reports {
		acc = hashCombine(acc, hashReport(report))
	}
	return acc
}
