// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ari implements the AMM Resource Identifier value model: the
// tagged-variant ARI tree (literal vs. reference), its containers (AC,
// AM, TBL, EXECSET, RPTSET, Report), identity segments, object paths,
// and actual parameters, together with the structural operations built
// on top of it — a pre-order [Visit] / [Translate] walker, [Equal],
// [Hash], and [Copy].
//
// An ARI is immutable once constructed: containers are built
// bottom-up by the New* constructors, which take ownership of their
// child slices, and no exported method mutates a tree in place.
// Concurrent readers of the same tree need no synchronization.
//
// This package has no dependency on the text or binary codecs; they
// are built on top of it in lib/ariencode and lib/aricbor
// respectively.
package ari
