// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ari

import "strings"

// TypeCode identifies one of the IANA-registered ARI literal or
// managed-object types. The concrete integer values are an internal
// implementation detail — no wire format depends on them directly
// except when an encoder is explicitly configured with
// ariencode.ShowInt, in which case the chosen values are what gets
// written.
type TypeCode int32

// Literal type codes, assigned in the order spec.md §3 lists them.
const (
	TypeNull TypeCode = iota
	TypeBool
	TypeByte
	TypeInt
	TypeUint
	TypeVast
	TypeUvast
	TypeReal32
	TypeReal64
	TypeTextstr
	TypeBytestr
	TypeTP
	TypeTD
	TypeLabel
	TypeCBOR
	TypeAritype
	TypeAC
	TypeAM
	TypeTBL
	TypeExecset
	TypeRptset
)

// Managed-object type codes occupy the negative range so they never
// collide with a literal type code.
const (
	TypeObject TypeCode = -1 - iota
	TypeIdent
	TypeConst
	TypeCtrl
)

// TypeLiteral is the generic "any literal" pseudo-type. It is never
// produced by an encoder and exists only as a registry entry, mirroring
// the reference implementation's ARI_TYPE_LITERAL sentinel.
const TypeLiteral TypeCode = 1<<31 - 1

var typeNames = map[TypeCode]string{
	TypeLiteral: "LITERAL",
	TypeNull:    "NULL",
	TypeBool:    "BOOL",
	TypeByte:    "BYTE",
	TypeInt:     "INT",
	TypeUint:    "UINT",
	TypeVast:    "VAST",
	TypeUvast:   "UVAST",
	TypeReal32:  "REAL32",
	TypeReal64:  "REAL64",
	TypeTextstr: "TEXTSTR",
	TypeBytestr: "BYTESTR",
	TypeTP:      "TP",
	TypeTD:      "TD",
	TypeLabel:   "LABEL",
	TypeCBOR:    "CBOR",
	TypeAritype: "ARITYPE",
	TypeAC:      "AC",
	TypeAM:      "AM",
	TypeTBL:     "TBL",
	TypeExecset: "EXECSET",
	TypeRptset:  "RPTSET",
	TypeObject:  "OBJECT",
	TypeIdent:   "IDENT",
	TypeConst:   "CONST",
	TypeCtrl:    "CTRL",
}

var namesToType = buildReverseRegistry()

func buildReverseRegistry() map[string]TypeCode {
	reverse := make(map[string]TypeCode, len(typeNames))
	for code, name := range typeNames {
		reverse[strings.ToUpper(name)] = code
	}
	return reverse
}

// TypeToName returns the canonical uppercase name for code, and true
// if code is registered.
func TypeToName(code TypeCode) (string, bool) {
	name, ok := typeNames[code]
	return name, ok
}

// TypeFromName looks up a type code by name, case-insensitively.
func TypeFromName(name string) (TypeCode, bool) {
	code, ok := namesToType[strings.ToUpper(name)]
	return code, ok
}
