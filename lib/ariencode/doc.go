// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ariencode implements the canonical text encoder for ARI
// values: the state-machine serializer that turns an [ari.ARI] tree
// into its URI-scheme text form, per Section 4.1 of draft
// ietf-dtn-ari-00. It is the sole consumer of lib/aritext's lexical
// and time primitives and lib/ari's type registry; it has no
// encoder-side dependency on any particular transport or storage.
//
// The complementary text parser is out of scope: this package only
// produces text, it does not consume it.
package ariencode
