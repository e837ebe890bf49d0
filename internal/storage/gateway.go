// Package storage provides the persistence gateway: durable read/write of
// whole-collection JSON snapshots to a size-bounded key-value store.
//
// The gateway classifies write failures into quota-exceeded (the snapshot is
// bigger than the configured byte budget - image data URIs are the usual
// culprit) and everything else. Callers keep the in-memory state as the
// source of truth; a failed save degrades durability, never correctness.
package storage

import (
	"encoding/json/v2"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/wardrobeapp/wardrobe-server/internal/errors"
	"github.com/wardrobeapp/wardrobe-server/internal/logger"
)

// Gateway wraps a Badger database holding one JSON snapshot per record key.
type Gateway struct {
	db     *badger.DB
	logger *logger.Logger
	quota  int64
}

// Open opens (or creates) the database at path.
// quotaBytes bounds the serialized size of a single snapshot.
func Open(path string, quotaBytes int64, log *logger.Logger) (*Gateway, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if log != nil {
		log.Info("wardrobe database opened", "path", path, "quota_bytes", quotaBytes)
	}

	return &Gateway{
		db:     db,
		logger: log,
		quota:  quotaBytes,
	}, nil
}

// Close gracefully closes the database.
func (g *Gateway) Close() error {
	if g.logger != nil {
		g.logger.Info("closing wardrobe database")
	}
	return g.db.Close()
}

// Load reads the snapshot at key into dest.
//
// Returns errors.ErrNotFound when the key has never been written and a
// storage error when the stored bytes cannot be decoded. Date fields
// round-trip through their RFC 3339 wire form losslessly. Callers are
// expected to fall back to an empty collection on any error; each record
// loads independently, so one corrupt snapshot never poisons the others.
func (g *Gateway) Load(key string, dest any) error {
	err := g.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrNotFound
		}
		if err != nil {
			return errors.Wrapf(err, errors.CodeStorage, "read %q", key)
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, dest); err != nil {
				return errors.Wrapf(err, errors.CodeStorage, "decode %q", key)
			}
			return nil
		})
	})
	if err != nil && !errors.Is(err, errors.ErrNotFound) && g.logger != nil {
		g.logger.WithError(err).Warn("failed to load snapshot, falling back to empty", "key", key)
	}
	return err
}

// Save serializes value to JSON and writes it at key in a single attempt.
//
// Returns errors.ErrQuotaExceeded when the snapshot is larger than the byte
// budget, a wrapped storage error otherwise. No retries: the caller persists
// the whole collection again on its next mutation anyway.
func (g *Gateway) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, errors.CodeStorage, "encode %q", key)
	}

	if int64(len(data)) > g.quota {
		return errors.QuotaExceededf(
			"snapshot %q is %d bytes, quota is %d - remove items or use smaller images",
			key, len(data), g.quota,
		)
	}

	err = g.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		if errors.Is(err, badger.ErrTxnTooBig) {
			return errors.Wrapf(err, errors.CodeQuotaExceeded, "write %q", key)
		}
		return errors.Wrapf(err, errors.CodeStorage, "write %q", key)
	}
	return nil
}
