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


// Package ai provides the embedding abstraction used by the query engine.
//
// The engine depends on the Embedder interface rather than any concrete
// client, following the dependency inversion principle. This keeps the
// retrieval core testable without a running model service.
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//   - ai/cached: decorator that consults a persistent vector cache before
//     delegating to another Embedder
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewEmbedder, cached.New) return the
// INTERFACE type to enforce abstraction and prevent accidental coupling
// to concrete implementations.
//
//	embedder, err := openai.NewEmbedder(config) // returns ai.Embedder
//
// Test utility constructors (mock.NewMockEmbedder) return CONCRETE types
// to enable test assertions and behavior injection via the mock's public
// fields and methods (CallCount, EmbedTextFunc, Reset).
//
//	mockEmbed := mock.NewMockEmbedder() // returns *mock.MockEmbedder
//	mockEmbed.EmbedTextFunc = func(...) ([]float32, error) { ... }
//	count := mockEmbed.CallCount()
package ai
