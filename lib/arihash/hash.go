// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package arihash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/dtn-ari/ari/lib/ari"
	"github.com/dtn-ari/ari/lib/ariencode"
)

// domainPrefix separates this package's digest space from any other
// SHA-256 digest a caller might compute over similar-looking text, so
// a cached ari text digest can never collide with an unrelated
// content hash computed the same way.
const domainPrefix = "ari.text\x00"

// Digest encodes a with default encoder options and returns the
// SHA-256 digest of the domain-prefixed canonical text. Callers that
// content-address ARI-tagged values (e.g. deduplicating cached
// CONST/EDD production results) use this as the cache key.
func Digest(a ari.ARI) ([32]byte, error) {
	text, err := ariencode.Encode(a, ariencode.DefaultOptions())
	if err != nil {
		return [32]byte{}, fmt.Errorf("arihash: encoding for digest: %w", err)
	}
	return sha256.Sum256([]byte(domainPrefix + text)), nil
}

// FormatDigest returns the canonical lowercase hex representation of
// a digest produced by [Digest].
func FormatDigest(d [32]byte) string {
	return hex.EncodeToString(d[:])
}

// ParseDigest parses a hex string produced by [FormatDigest].
func ParseDigest(s string) ([32]byte, error) {
	var d [32]byte
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("arihash: parsing digest: %w", err)
	}
	if len(decoded) != len(d) {
		return d, fmt.Errorf("arihash: digest is %d bytes, want %d", len(decoded), len(d))
	}
	copy(d[:], decoded)
	return d, nil
}
