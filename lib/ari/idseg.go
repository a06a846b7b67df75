// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ari

import "strconv"

// IdsegForm selects which alternative an [Idseg] carries.
type IdsegForm int8

const (
	IdsegNull IdsegForm = iota
	IdsegText
	IdsegInt
)

// Idseg is an identity segment: the null form, a text name, or a
// signed integer, used for the namespace/type/object positions of an
// [ObjPath].
type Idseg struct {
	form IdsegForm
	text string
	ival int64
}

// NullIdseg returns the null-form segment.
func NullIdseg() Idseg { return Idseg{form: IdsegNull} }

// TextIdseg returns a text-form segment carrying s verbatim.
func TextIdseg(s string) Idseg { return Idseg{form: IdsegText, text: s} }

// IntIdseg returns an integer-form segment carrying v.
func IntIdseg(v int64) Idseg { return Idseg{form: IdsegInt, ival: v} }

// Form reports which alternative s holds.
func (s Idseg) Form() IdsegForm { return s.form }

// Text returns the text payload and true if s is text-form.
func (s Idseg) Text() (string, bool) { return s.text, s.form == IdsegText }

// Int returns the integer payload and true if s is int-form.
func (s Idseg) Int() (int64, bool) { return s.ival, s.form == IdsegInt }

// Equal reports whether s and o carry the same form and, for
// text/int forms, the same payload.
func (s Idseg) Equal(o Idseg) bool {
	if s.form != o.form {
		return false
	}
	switch s.form {
	case IdsegText:
		return s.text == o.text
	case IdsegInt:
		return s.ival == o.ival
	default:
		return true
	}
}

// String renders s as a path segment without percent-encoding: empty
// for null form, the text verbatim, or the decimal integer. The text
// encoder in lib/ariencode percent-encodes text segments; callers that
// need that form should go through it instead.
func (s Idseg) String() string {
	switch s.form {
	case IdsegText:
		return s.text
	case IdsegInt:
		return strconv.FormatInt(s.ival, 10)
	default:
		return ""
	}
}

func (s Idseg) hash() uint64 {
	acc := hashSeed
	acc = hashCombine(acc, uint64(s.form))
	switch s.form {
	case IdsegText:
		acc = hashCombine(acc, hashBytes(acc, []byte(s.text)))
	case IdsegInt:
		acc = hashCombine(acc, uint64(s.ival))
	}
	return acc
}
