// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ari

// ObjPath names a managed object: a namespace segment, a type
// segment, and an object segment. When HasAriType is set, AriType is
// authoritative for type comparisons and TypeID is informational
// only (typically the form the type was originally decoded in).
type ObjPath struct {
	NsID       Idseg
	TypeID     Idseg
	ObjID      Idseg
	HasAriType bool
	AriType    TypeCode
}

// Equal reports whether p and o name the same object path. When both
// sides carry a resolved AriType, that takes precedence over TypeID;
// otherwise TypeID is compared directly.
func (p ObjPath) Equal(o ObjPath) bool {
	var typeEqual bool
	switch {
	case p.HasAriType && o.HasAriType:
		typeEqual = p.AriType == o.AriType
	default:
		typeEqual = p.TypeID.Equal(o.TypeID)
	}
	return p.NsID.Equal(o.NsID) && typeEqual && p.ObjID.Equal(o.ObjID)
}

func (p ObjPath) hash() uint64 {
	acc := hashSeed
	acc = hashCombine(acc, p.NsID.hash())
	if p.HasAriType {
		acc = hashCombine(acc, uint64(p.AriType))
	} else {
		acc = hashCombine(acc, p.TypeID.hash())
	}
	acc = hashCombine(acc, p.ObjID.hash())
	return acc
}
