package cached

import (
	"context"
	"errors"
	"log/slog"

	"github.com/K-N-K-P-Chandu/My-Portfolio/ai"
	"github.com/K-N-K-P-Chandu/My-Portfolio/storage"
)

// Embedder decorates another ai.Embedder with a persistent vector cache.
// Cache failures are logged and bypassed; they never fail an embedding.
type Embedder struct {
	inner  ai.Embedder
	cache  storage.EmbeddingCache
	model  string
	logger *slog.Logger
}

var _ ai.Embedder = (*Embedder)(nil)

// Errors returned by New.
var (
	ErrEmbedderRequired = errors.New("embedder required")
	ErrCacheRequired    = errors.New("embedding cache required")
)

// Option configures an Embedder.
type Option func(*Embedder)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Embedder) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// New creates a caching embedder. The model name is mixed into cache keys
// so that switching models invalidates previously cached vectors.
//
// Returns ai.Embedder interface to enforce abstraction.
func New(inner ai.Embedder, cache storage.EmbeddingCache, model string, opts ...Option) (ai.Embedder, error) {
	if inner == nil {
		return nil, ErrEmbedderRequired
	}
	if cache == nil {
		return nil, ErrCacheRequired
	}

	e := &Embedder{
		inner:  inner,
		cache:  cache,
		model:  model,
		logger: slog.Default().With("component", "cached-embedder"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// EmbedText returns the cached vector for text if present, otherwise
// delegates to the inner embedder and stores the result.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	key := storage.CacheKey(e.model, text)

	vector, found, err := e.cache.Get(ctx, key)
	if err != nil {
		e.logger.Warn("embedding cache read failed", "err", err)
	} else if found {
		return vector, nil
	}

	vector, err = e.inner.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := e.cache.Put(ctx, key, vector); err != nil {
		e.logger.Warn("embedding cache write failed", "err", err)
	}
	return vector, nil
}

// EmbedTexts resolves each text from the cache where possible and batches
// the remaining misses through the inner embedder.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	missing := make([]int, 0, len(texts))

	for i, text := range texts {
		vector, found, err := e.cache.Get(ctx, storage.CacheKey(e.model, text))
		if err != nil {
			e.logger.Warn("embedding cache read failed", "err", err)
		}
		if err == nil && found {
			vectors[i] = vector
			continue
		}
		missing = append(missing, i)
	}

	if len(missing) == 0 {
		return vectors, nil
	}

	e.logger.Debug("embedding cache misses", "misses", len(missing), "total", len(texts))

	missingTexts := make([]string, len(missing))
	for i, idx := range missing {
		missingTexts[i] = texts[idx]
	}

	embedded, err := e.inner.EmbedTexts(ctx, missingTexts)
	if err != nil {
		return nil, err
	}
	if len(embedded) != len(missing) {
		return nil, errors.New("embedding result mismatch")
	}

	for i, idx := range missing {
		vectors[idx] = embedded[i]
		if err := e.cache.Put(ctx, storage.CacheKey(e.model, texts[idx]), embedded[i]); err != nil {
			e.logger.Warn("embedding cache write failed", "err", err)
		}
	}
	return vectors, nil
}
