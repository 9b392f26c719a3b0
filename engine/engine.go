package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/K-N-K-P-Chandu/My-Portfolio/ai"
	"github.com/K-N-K-P-Chandu/My-Portfolio/core"
	"github.com/K-N-K-P-Chandu/My-Portfolio/resume"
)

// embedBatchSize is the number of chunk texts sent per embedding call
// during index build.
const embedBatchSize = 16

// state tracks the engine's initialization lifecycle.
type state int

const (
	stateUninitialized state = iota
	stateInitializing
	stateReady
)

// initAttempt is a single in-flight initialization. Concurrent callers
// attach to the same attempt instead of restarting work; err is valid
// once done is closed.
type initAttempt struct {
	done chan struct{}
	err  error
}

// Engine answers free-text questions about a profile by ranking
// pre-authored chunks with a hybrid of embedding similarity and fuzzy
// keyword matching.
//
// The engine owns its index. It is built at most once per Engine: a call
// to Initialize while another initialization is in flight awaits that
// attempt, a call after success is a no-op, and a failed attempt leaves
// the engine uninitialized so a later call can retry cleanly. The index
// is never partially visible; queries see either "not ready" (and await
// readiness) or the fully built index. Once ready, the chunk slice is
// read-only, so queries need no coordination with each other.
type Engine struct {
	embedder ai.Embedder
	profile  *resume.Profile
	params   Params
	poolSize int
	monitor  QueryMonitor
	logger   *slog.Logger

	mu      sync.Mutex
	state   state
	attempt *initAttempt
	chunks  []core.Chunk
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithParams overrides the scoring and composition tuning.
func WithParams(params Params) Option {
	return func(e *Engine) error {
		if err := params.Validate(); err != nil {
			return err
		}
		e.params = params
		return nil
	}
}

// WithMonitor sets the monitor used by Query. QueryWithMonitor overrides
// it per call.
func WithMonitor(monitor QueryMonitor) Option {
	return func(e *Engine) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		e.monitor = monitor
		return nil
	}
}

// WithPoolSize sets the worker pool size used to embed chunk batches
// concurrently during index build. Default is 1 (sequential).
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		e.poolSize = size
		return nil
	}
}

// New creates an engine over the given embedder and profile.
// The index is not built yet; call Initialize, or let the first Query
// trigger it.
func New(embedder ai.Embedder, profile *resume.Profile, opts ...Option) (*Engine, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if profile == nil {
		return nil, ErrProfileRequired
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		embedder: embedder,
		profile:  profile,
		params:   DefaultParams(),
		poolSize: 1,
		monitor:  &noopMonitor{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Initialize builds the chunk index: it derives chunks from the profile,
// embeds every chunk text and attaches the vectors. At-most-once: racing
// callers share a single attempt. On failure the engine stays
// uninitialized and the error is propagated; calling Initialize again
// retries from scratch.
func (e *Engine) Initialize(ctx context.Context) error {
	e.mu.Lock()
	switch e.state {
	case stateReady:
		e.mu.Unlock()
		return nil
	case stateInitializing:
		attempt := e.attempt
		e.mu.Unlock()
		select {
		case <-attempt.done:
			return attempt.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	attempt := &initAttempt{done: make(chan struct{})}
	e.state = stateInitializing
	e.attempt = attempt
	e.mu.Unlock()

	chunks, err := e.buildIndex(ctx)

	e.mu.Lock()
	if err != nil {
		e.state = stateUninitialized
		e.logger.Error("index build failed", "err", err)
	} else {
		e.chunks = chunks
		e.state = stateReady
		e.logger.Info("index ready", "chunks", len(chunks))
	}
	e.attempt = nil
	e.mu.Unlock()

	attempt.err = err
	close(attempt.done)
	return err
}

// Ready reports whether the index has been fully built.
func (e *Engine) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == stateReady
}

// Query answers a free-text question. If the engine is not ready yet it
// transparently awaits (or triggers) initialization first.
//
// A low-confidence match is not an error: the result carries a fallback
// message with IsFallback set. An error is returned only for embedding
// failures; the caller should present those generically and not retry.
func (e *Engine) Query(ctx context.Context, text string) (*core.QueryResult, error) {
	return e.QueryWithMonitor(ctx, text, nil)
}

// QueryWithMonitor answers a free-text question, reporting each stage of
// the query process to the monitor. A nil monitor falls back to the one
// configured at construction.
func (e *Engine) QueryWithMonitor(ctx context.Context, text string, monitor QueryMonitor) (*core.QueryResult, error) {
	if monitor == nil {
		monitor = e.monitor
	}

	if err := e.Initialize(ctx); err != nil {
		return nil, err
	}

	monitor.Start(text)

	queryVector, err := e.embedder.EmbedText(ctx, text)
	if err != nil {
		e.logger.Error("error generating embedding for query", "err", err)
		return nil, err
	}
	monitor.AfterQueryEmbedding(len(queryVector))

	scored := e.scoreChunks(queryVector, text)
	monitor.AfterScoring(scored)

	if len(scored) > 0 {
		best := scored[0]
		e.logger.Debug("best match",
			"label", best.Chunk.Label,
			"total", best.Total,
			"cosine", best.Cosine,
			"bonus", best.KeywordBonus)
	}

	result := e.compose(scored, monitor)
	monitor.Finish(result)
	return result, nil
}

// buildIndex derives chunks from the profile and embeds them. The chunk
// slice is returned only once every chunk has its embedding attached.
func (e *Engine) buildIndex(ctx context.Context) ([]core.Chunk, error) {
	chunks := BuildChunks(e.profile)
	if len(chunks) == 0 {
		return nil, ErrNoChunks
	}
	for i := range chunks {
		if err := core.ValidateChunk(&chunks[i]); err != nil {
			return nil, err
		}
	}

	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Text
	}

	e.logger.Info("building index", "chunks", len(texts), "pool", e.poolSize)

	var vectors [][]float32
	var err error
	if e.poolSize > 1 {
		vectors, err = e.embedConcurrently(ctx, texts)
	} else {
		vectors, err = e.embedder.EmbedTexts(ctx, texts)
	}
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedding result mismatch: expected %d, received %d",
			len(chunks), len(vectors))
	}

	dimension := len(vectors[0])
	for i, vector := range vectors {
		if len(vector) == 0 || len(vector) != dimension {
			return nil, fmt.Errorf("%w: chunk %d has dimension %d, expected %d",
				ErrDimensionMismatch, i, len(vector), dimension)
		}
		chunks[i].Embedding = vector
	}
	return chunks, nil
}

// embedConcurrently splits the texts into batches and embeds them on an
// ants worker pool. Results land in their original positions; the first
// error aborts the build.
func (e *Engine) embedConcurrently(ctx context.Context, texts []string) ([][]float32, error) {
	pool, err := ants.NewPool(e.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	vectors := make([][]float32, len(texts))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	recordErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for start := 0; start < len(texts); start += embedBatchSize {
		end := min(start+embedBatchSize, len(texts))
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			batch, err := e.embedder.EmbedTexts(ctx, texts[start:end])
			if err != nil {
				recordErr(err)
				return
			}
			if len(batch) != end-start {
				recordErr(fmt.Errorf("embedding result mismatch: expected %d, received %d",
					end-start, len(batch)))
				return
			}
			for i, vector := range batch {
				vectors[start+i] = vector
			}
		})
		if submitErr != nil {
			wg.Done()
			recordErr(submitErr)
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return vectors, nil
}
