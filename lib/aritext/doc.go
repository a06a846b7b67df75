// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package aritext provides the lexical primitives that the ARI text
// codec is built from: percent encoding, slash-style string escaping,
// base16 and base64/base64url, unsigned/signed integer radix
// formatting, IEEE-754 float formatting, and the three DTN time
// encodings (decimal-fraction seconds, ISO 8601 UTC timestamps, and
// ISO 8601 durations).
//
// None of these functions know about the ARI value model; they operate
// on plain []byte, string, uint64/int64, float64, and [Timespec]
// values. The encoder in lib/ariencode composes them to produce the
// canonical ARI text form; the value model in lib/ari uses only this
// package's [Timespec] type, as the payload of TIMESPEC literals.
package aritext
