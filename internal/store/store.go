// Package store persists withdrawal requests, per-user nonces and
// in-flight redemptions in an embedded BadgerDB so that state survives a
// restart. Rows are JSON; keys carry a short type prefix.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"
)

const (
	requestPrefix    = "wr:"
	noncePrefix      = "nonce:"
	redemptionPrefix = "rd:"
)

// Store is a BadgerDB-backed state store.
type Store struct {
	db *badger.DB
}

// Open opens or creates the store at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
}

func (s *Store) delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (s *Store) scan(prefix string, each func(key string, raw []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())
			if err := item.Value(func(raw []byte) error {
				return each(key, raw)
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
