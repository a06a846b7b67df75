// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// ari-encode reads a YAML description of an ARI value tree from a file
// or stdin and prints its canonical text encoding. It is a thin
// command-line wrapper around lib/ariencode, useful for hand-authoring
// ARI literals without writing Go, and for scripting text-form
// fixtures for other DTN management tooling.
package main
