// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ari

import "context"

// ValueProducer is implemented by an external EDD or constant
// descriptor that computes an ARI value on demand. It is a nominal
// collaborator interface: this module implements the value model and
// its codecs, not an AMM object store, so no concrete ValueProducer
// lives here — a management agent's descriptor registry implements
// it and calls [ProduceTyped] to get a value tagged with the
// descriptor's declared type.
type ValueProducer interface {
	Produce(ctx context.Context) (ARI, error)
}

// ProduceTyped runs producer and tags the resulting literal with
// declared, the type a descriptor promises its value will carry.
// References pass through untouched — a descriptor's declared type
// only constrains the literal case, per the value-production
// collaborator contract.
func ProduceTyped(ctx context.Context, producer ValueProducer, declared TypeCode) (ARI, error) {
	value, err := producer.Produce(ctx)
	if err != nil {
		return ARI{}, err
	}
	lit, ok := value.Literal()
	if !ok {
		return value, nil
	}
	return FromLiteral(lit.WithType(declared)), nil
}
