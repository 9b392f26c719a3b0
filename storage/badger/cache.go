package badger

import (
	"context"
	"encoding/binary"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/K-N-K-P-Chandu/My-Portfolio/core"
	"github.com/K-N-K-P-Chandu/My-Portfolio/storage"
)

// vectorPrefix namespaces embedding vector keys within the database.
const vectorPrefix byte = 0x01

// Cache is a BadgerDB-backed storage.EmbeddingCache.
type Cache struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.EmbeddingCache = (*Cache)(nil)

// NewCache creates an embedding cache on top of an open backend.
//
// Returns storage.EmbeddingCache interface to enforce abstraction.
func NewCache(backend *Backend) (storage.EmbeddingCache, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	return &Cache{
		backend: backend,
		logger:  slog.Default().With("component", "embedding-cache"),
	}, nil
}

// NewMemoryCache creates an in-memory cache together with its backend.
// Intended for tests; the caller must close both.
func NewMemoryCache() (storage.EmbeddingCache, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}
	cache, err := NewCache(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	return cache, backend, nil
}

func vectorKey(id core.ID) []byte {
	buf := make([]byte, 9)
	buf[0] = vectorPrefix
	binary.BigEndian.PutUint64(buf[1:], uint64(id))
	return buf
}

// Get returns the cached vector for key, reporting presence.
func (c *Cache) Get(ctx context.Context, key core.ID) ([]float32, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if c.backend.IsClosed() {
		return nil, false, storage.ErrStorageClosed
	}

	var vector []float32
	err := c.backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(vectorKey(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			vector, err = storage.UnmarshalVector(val)
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return vector, true, nil
}

// Put stores the vector under key, overwriting any previous value.
func (c *Cache) Put(ctx context.Context, key core.ID, vector []float32) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	data := storage.MarshalVector(vector)
	return c.backend.db.Update(func(txn *badger.Txn) error {
		return txn.Set(vectorKey(key), data)
	})
}

// Close is a no-op; the backend is owned and closed by the caller that
// opened it.
func (c *Cache) Close() error {
	return nil
}
