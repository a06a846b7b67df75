// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ari

// Copy returns a deep copy of a: every byte slice is cloned and
// every container is rebuilt bottom-up, so the result shares no
// mutable storage with a. Built on [Translate] with the identity
// mapping, following container contents structurally.
func Copy(a ARI) ARI {
	out, err := Translate(&a, Translator{
		MapLit: func(in *Literal, userData any) (Literal, error) {
			out := *in
			if in.bytesVal != nil {
				out.bytesVal = append([]byte(nil), in.bytesVal...)
			}
			return out, nil
		},
	}, nil)
	if err != nil {
		// The identity mapping above never fails; NewTBL re-validates
		// a column count that was already valid in the source tree.
		panic("ari: Copy: " + err.Error())
	}
	return out
}
