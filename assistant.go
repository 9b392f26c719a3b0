// Copyright 2025 Naga Krishna Poorna Chandu Kovelamudi
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package portfolio

import (
	"context"
	"log/slog"

	"github.com/K-N-K-P-Chandu/My-Portfolio/ai"
	"github.com/K-N-K-P-Chandu/My-Portfolio/ai/cached"
	"github.com/K-N-K-P-Chandu/My-Portfolio/ai/openai"
	"github.com/K-N-K-P-Chandu/My-Portfolio/core"
	"github.com/K-N-K-P-Chandu/My-Portfolio/engine"
	"github.com/K-N-K-P-Chandu/My-Portfolio/resume"
	"github.com/K-N-K-P-Chandu/My-Portfolio/storage"
	"github.com/K-N-K-P-Chandu/My-Portfolio/storage/badger"
)

// Assistant is the top-level facade: it wires an embedding provider, an
// optional persistent embedding cache and the query engine over a resume
// profile, and answers questions through Ask.
type Assistant struct {
	engine  *engine.Engine
	backend *badger.Backend
	cache   storage.EmbeddingCache
	logger  *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	profile  *resume.Profile
	aiConfig *ai.Config
	embedder ai.Embedder
	cacheDir string
	params   *engine.Params
	poolSize int
	logger   *slog.Logger
}

// WithProfile answers from the given profile instead of the built-in one.
func WithProfile(profile *resume.Profile) AssistantOption {
	return func(o *assistantOptions) {
		o.profile = profile
	}
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(config *ai.Config) AssistantOption {
	return func(o *assistantOptions) {
		o.aiConfig = config
	}
}

// WithEmbedder injects a pre-built embedder, bypassing the OpenAI-compatible
// provider entirely. Used by tests and by callers with their own provider
// stack.
func WithEmbedder(embedder ai.Embedder) AssistantOption {
	return func(o *assistantOptions) {
		o.embedder = embedder
	}
}

// WithCacheDir enables the persistent embedding cache at the given
// directory. Chunk and query vectors survive process restarts, so repeat
// startups skip the embedding provider for unchanged texts.
func WithCacheDir(dir string) AssistantOption {
	return func(o *assistantOptions) {
		o.cacheDir = dir
	}
}

// WithParams overrides the engine's scoring and composition tuning.
func WithParams(params engine.Params) AssistantOption {
	return func(o *assistantOptions) {
		o.params = &params
	}
}

// WithPoolSize sets the worker pool size for concurrent chunk embedding.
func WithPoolSize(size int) AssistantOption {
	return func(o *assistantOptions) {
		o.poolSize = size
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) AssistantOption {
	return func(o *assistantOptions) {
		o.logger = logger
	}
}

// NewAssistant builds the assistant. The embedding index is not built
// yet; call Initialize eagerly, or let the first Ask trigger it.
func NewAssistant(opts ...AssistantOption) (*Assistant, error) {
	options := &assistantOptions{
		aiConfig: ai.DefaultConfig(),
		poolSize: 1,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.profile == nil {
		options.profile = resume.Default()
	}

	embedder := options.embedder
	if embedder == nil {
		provider, err := openai.NewEmbedder(options.aiConfig)
		if err != nil {
			return nil, err
		}
		embedder = provider
	}

	var backend *badger.Backend
	var cache storage.EmbeddingCache
	if options.cacheDir != "" {
		var err error
		backend, err = badger.OpenBackend(options.cacheDir, false)
		if err != nil {
			return nil, err
		}
		cache, err = badger.NewCache(backend)
		if err != nil {
			backend.Close()
			return nil, err
		}
		embedder, err = cached.New(embedder, cache, options.aiConfig.EmbeddingModel,
			cached.WithLogger(options.logger))
		if err != nil {
			cache.Close()
			backend.Close()
			return nil, err
		}
	}

	engineOpts := []engine.Option{
		engine.WithLogger(options.logger),
		engine.WithPoolSize(options.poolSize),
	}
	if options.params != nil {
		engineOpts = append(engineOpts, engine.WithParams(*options.params))
	}

	eng, err := engine.New(embedder, options.profile, engineOpts...)
	if err != nil {
		if cache != nil {
			cache.Close()
		}
		if backend != nil {
			backend.Close()
		}
		return nil, err
	}

	return &Assistant{
		engine:  eng,
		backend: backend,
		cache:   cache,
		logger:  options.logger,
	}, nil
}

// Initialize builds the embedding index. Safe to call concurrently and
// repeatedly; the index is built at most once.
func (a *Assistant) Initialize(ctx context.Context) error {
	return a.engine.Initialize(ctx)
}

// Ready reports whether the index has been built.
func (a *Assistant) Ready() bool {
	return a.engine.Ready()
}

// Ask answers a free-text question about the profile.
func (a *Assistant) Ask(ctx context.Context, question string) (*core.QueryResult, error) {
	return a.engine.Query(ctx, question)
}

// AskWithMonitor answers a question while reporting each query stage to
// the monitor.
func (a *Assistant) AskWithMonitor(ctx context.Context, question string, monitor engine.QueryMonitor) (*core.QueryResult, error) {
	return a.engine.QueryWithMonitor(ctx, question, monitor)
}

// Close releases the embedding cache and its backend. The engine itself
// holds no external resources.
func (a *Assistant) Close() error {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("error closing embedding cache", "err", err)
		}
	}
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.logger.Error("error closing backend storage", "err", err)
			return err
		}
	}
	return nil
}
