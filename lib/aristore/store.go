// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package aristore is a content-addressed cache of ARI canonical text,
// keyed by the SHA-256 digest lib/arihash computes. It exists so a
// process that resolves the same reference or literal repeatedly —
// a management agent replaying a report set, a CLI re-encoding the
// same control many times — can skip re-running the text encoder and
// instead look up already-canonicalized text by digest.
package aristore

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/dtn-ari/ari/lib/arihash"
)

// Config holds the parameters for opening a Store.
type Config struct {
	// Path is the filesystem path to the SQLite database file. Use
	// ":memory:" for an in-memory store; PoolSize must then be 1,
	// since each in-memory connection is an independent database.
	Path string

	// PoolSize is the number of pooled connections. Defaults to
	// max(runtime.NumCPU(), 4) when zero or negative.
	PoolSize int

	// Logger receives open and close messages. Defaults to
	// a discarding logger.
	Logger *slog.Logger
}

// Store is a content-addressed cache mapping an ARI digest to its
// canonical text encoding. Store is safe for concurrent use.
type Store struct {
	pool   *sqlitex.Pool
	logger *slog.Logger
	path   string
}

const schema = `
CREATE TABLE IF NOT EXISTS ari_text (
	digest TEXT PRIMARY KEY,
	text   TEXT NOT NULL,
	hits   INTEGER NOT NULL DEFAULT 0
);
`

// Open creates or opens a Store at the configured path, creating the
// schema if necessary. The caller must call Close when done.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("aristore: Path is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
		if poolSize < 4 {
			poolSize = 4
		}
	}

	pool, err := sqlitex.NewPool(cfg.Path, sqlitex.PoolOptions{
		PoolSize: poolSize,
		PrepareConn: func(conn *sqlite.Conn) error {
			return prepareConnection(conn)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("aristore: opening %s: %w", cfg.Path, err)
	}

	logger.Info("ari store opened", "path", cfg.Path, "pool_size", poolSize)

	return &Store{pool: pool, logger: logger, path: cfg.Path}, nil
}

func prepareConnection(conn *sqlite.Conn) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=OFF",
	}
	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("aristore: %s: %w", pragma, err)
		}
	}
	if err := sqlitex.ExecuteTransient(conn, strings.TrimSpace(schema), nil); err != nil {
		return fmt.Errorf("aristore: applying schema: %w", err)
	}
	return nil
}

// Put stores canonical text under digest. If the digest is already
// present, Put is a no-op: ARI text is immutable under a given digest,
// so the existing row is already correct.
func (s *Store) Put(ctx context.Context, digest [32]byte, text string) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("aristore: put: take: %w", err)
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn,
		`INSERT INTO ari_text (digest, text) VALUES (?, ?) ON CONFLICT(digest) DO NOTHING`,
		&sqlitex.ExecOptions{Args: []any{arihash.FormatDigest(digest), text}},
	)
	if err != nil {
		return fmt.Errorf("aristore: put: %w", err)
	}
	return nil
}

// Get returns the canonical text stored under digest, and whether it
// was found. A hit increments the row's usage counter.
func (s *Store) Get(ctx context.Context, digest [32]byte) (string, bool, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return "", false, fmt.Errorf("aristore: get: take: %w", err)
	}
	defer s.pool.Put(conn)

	key := arihash.FormatDigest(digest)
	var text string
	found := false
	err = sqlitex.Execute(conn,
		`SELECT text FROM ari_text WHERE digest = ?`,
		&sqlitex.ExecOptions{
			Args: []any{key},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				text = stmt.ColumnText(0)
				found = true
				return nil
			},
		},
	)
	if err != nil {
		return "", false, fmt.Errorf("aristore: get: %w", err)
	}
	if !found {
		return "", false, nil
	}

	err = sqlitex.Execute(conn,
		`UPDATE ari_text SET hits = hits + 1 WHERE digest = ?`,
		&sqlitex.ExecOptions{Args: []any{key}},
	)
	if err != nil {
		return "", false, fmt.Errorf("aristore: get: recording hit: %w", err)
	}

	return text, true, nil
}

// Close closes all pooled connections. Blocks until borrowed
// connections are returned.
func (s *Store) Close() error {
	if err := s.pool.Close(); err != nil {
		s.logger.Error("ari store close error", "path", s.path, "error", err)
		return fmt.Errorf("aristore: closing %s: %w", s.path, err)
	}
	s.logger.Info("ari store closed", "path", s.path)
	return nil
}
