// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package arihash content-addresses ARI values by hashing their
// canonical text encoding with SHA-256 under a fixed domain prefix.
// Unlike [ari.Hash] (an in-memory structural hash used for AM key
// lookup), digests here are stable across process restarts and are
// what lib/aristore uses as cache keys.
package arihash
