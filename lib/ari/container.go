// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ari

import (
	"fmt"

	"github.com/dtn-ari/ari/lib/arierr"
)

// AC is an ordered sequence of ARIs. Insertion order is preserved
// and is significant to both equality and encoding.
type AC struct {
	items []ARI
}

// NewAC takes ownership of items and returns the AC wrapping them.
func NewAC(items []ARI) *AC {
	return &AC{items: items}
}

// Items returns the sequence in order. Callers must not mutate the
// returned slice.
func (c *AC) Items() []ARI { return c.items }

// Len returns the element count.
func (c *AC) Len() int { return len(c.items) }

// AMPair is one key/value entry of an [AM].
type AMPair struct {
	Key   ARI
	Value ARI
}

// AM is a mapping from ARI to ARI. Keys are unique under [Equal]; a
// later pair with an equal key overwrites an earlier one in place,
// preserving that key's original position. Native Go maps cannot be
// used here because ARI values are not comparable in the language
// sense (they can embed slices), so membership is resolved with
// [Equal] directly.
type AM struct {
	pairs []AMPair
}

// NewAM takes ownership of pairs, deduplicating by key with
// last-write-wins semantics, and returns the resulting AM.
func NewAM(pairs []AMPair) *AM {
	dedup := make([]AMPair, 0, len(pairs))
	for _, p := range pairs {
		replaced := false
		for i := range dedup {
			if Equal(dedup[i].Key, p.Key) {
				dedup[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			dedup = append(dedup, p)
		}
	}
	return &AM{pairs: dedup}
}

// Pairs returns the entries in deterministic iteration order.
func (m *AM) Pairs() []AMPair { return m.pairs }

// Len returns the entry count.
func (m *AM) Len() int { return len(m.pairs) }

// Get returns the value paired with a key equal to key, and whether
// one was found.
func (m *AM) Get(key ARI) (ARI, bool) {
	for _, p := range m.pairs {
		if Equal(p.Key, key) {
			return p.Value, true
		}
	}
	return ARI{}, false
}

// TBL is a flat row-major sequence of length ncols*rows, viewed as a
// table of that many columns.
type TBL struct {
	ncols int
	items []ARI
}

// NewTBL validates that len(items) is a multiple of ncols and
// returns the resulting TBL.
func NewTBL(ncols int, items []ARI) (*TBL, error) {
	if ncols < 0 {
		return nil, fmt.Errorf("tbl: negative column count %d: %w", ncols, arierr.Malformed)
	}
	if ncols > 0 && len(items)%ncols != 0 {
		return nil, fmt.Errorf("tbl: %d items not a multiple of %d columns: %w", len(items), ncols, arierr.Malformed)
	}
	return &TBL{ncols: ncols, items: items}, nil
}

// NCols returns the configured column count.
func (t *TBL) NCols() int { return t.ncols }

// Items returns the flat row-major cell sequence.
func (t *TBL) Items() []ARI { return t.items }

// Rows returns the number of complete rows.
func (t *TBL) Rows() int {
	if t.ncols == 0 {
		return 0
	}
	return len(t.items) / t.ncols
}

// Report is one telemetry report within an [RPTSET]: a relative
// timestamp, the source object that produced it, and its payload
// items.
type Report struct {
	RelTime ARI
	Source  ARI
	Items   []ARI
}

// RPTSET is a set of telemetry reports sharing a nonce and a
// reference time.
type RPTSET struct {
	Nonce   ARI
	RefTime ARI
	Reports []Report
}

// EXECSET is a set of execution targets sharing a nonce.
type EXECSET struct {
	Nonce   ARI
	Targets []ARI
}
