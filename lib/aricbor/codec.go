// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aricbor

import "github.com/dtn-ari/ari/lib/ari"

// Marshal encodes a as Core Deterministic CBOR.
func Marshal(a ari.ARI) ([]byte, error) {
	return marshal(ariToWire(a))
}

// Unmarshal decodes a CBOR-encoded ARI produced by [Marshal].
func Unmarshal(data []byte) (ari.ARI, error) {
	var w wireARI
	if err := unmarshal(data, &w); err != nil {
		return ari.ARI{}, err
	}
	return ariFromWire(w)
}
