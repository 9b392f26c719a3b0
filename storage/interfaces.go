package storage

import (
	"context"

	"github.com/K-N-K-P-Chandu/My-Portfolio/core"
)

// EmbeddingCache persists text embeddings across process runs so that
// repeated index builds skip model calls for unchanged chunk texts.
// Keys are content-derived IDs of (model, text) pairs; the index itself
// is never persisted and is rebuilt on every process start.
// Implementations must be thread-safe and support concurrent access.
type EmbeddingCache interface {
	// Get returns the cached vector for key.
	// The second return value reports whether the key was present.
	// A missing key is not an error.
	Get(ctx context.Context, key core.ID) ([]float32, bool, error)

	// Put stores the vector under key, overwriting any previous value.
	Put(ctx context.Context, key core.ID, vector []float32) error

	// Close closes the cache and releases resources.
	Close() error
}

// CacheKey derives the cache key for a (model, text) pair. Including the
// model name invalidates cached vectors when the embedding model changes.
func CacheKey(model, text string) core.ID {
	return core.IDFromContent(model + "\x00" + text)
}
