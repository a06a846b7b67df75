// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package aristore_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dtn-ari/ari/lib/ari"
	"github.com/dtn-ari/ari/lib/arihash"
	"github.com/dtn-ari/ari/lib/aristore"
)

func TestPutGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	digest := mustDigest(t, ari.FromLiteral(ari.Int64Literal(-42)))
	if err := store.Put(ctx, digest, "ari:/INT/-42"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	text, ok, err := store.Get(ctx, digest)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get: expected a hit")
	}
	if text != "ari:/INT/-42" {
		t.Errorf("Get: text = %q, want %q", text, "ari:/INT/-42")
	}
}

func TestGetMiss(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	digest := mustDigest(t, ari.FromLiteral(ari.NullLiteral()))
	_, ok, err := store.Get(ctx, digest)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get: expected a miss for an unstored digest")
	}
}

func TestPutIsIdempotent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	digest := mustDigest(t, ari.FromLiteral(ari.NullLiteral()))
	if err := store.Put(ctx, digest, "ari:null"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, digest, "ari:null"); err != nil {
		t.Fatalf("Put (repeat): %v", err)
	}

	text, ok, err := store.Get(ctx, digest)
	if err != nil || !ok {
		t.Fatalf("Get: %v, ok=%v", err, ok)
	}
	if text != "ari:null" {
		t.Errorf("text = %q, want %q", text, "ari:null")
	}
}

func TestConcurrentGets(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	digest := mustDigest(t, ari.FromLiteral(ari.Int64Literal(1)))
	if err := store.Put(ctx, digest, "ari:/AC/(1,2,3)"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	const goroutineCount = 8
	var waitGroup sync.WaitGroup
	errs := make(chan error, goroutineCount)
	for range goroutineCount {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			text, ok, err := store.Get(ctx, digest)
			if err != nil {
				errs <- err
				return
			}
			if !ok || text != "ari:/AC/(1,2,3)" {
				t.Errorf("concurrent Get: ok=%v text=%q, want a hit with %q", ok, text, "ari:/AC/(1,2,3)")
			}
		}()
	}
	waitGroup.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("concurrent Get failed: %v", err)
		}
	}
}

func mustDigest(t *testing.T, a ari.ARI) [32]byte {
	t.Helper()
	d, err := arihash.Digest(a)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	return d
}

// openTestStore creates a store backed by a temporary database file.
// The store is closed automatically when the test completes.
func openTestStore(t *testing.T) *aristore.Store {
	t.Helper()

	store, err := aristore.Open(aristore.Config{
		Path:     filepath.Join(t.TempDir(), "test.db"),
		PoolSize: 4,
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return store
}
