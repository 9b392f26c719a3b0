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


// Package storage provides the persistence abstraction for embedding
// vectors.
//
// The query engine itself holds its index purely in memory; the only thing
// worth persisting between process runs is the mapping from (model, text)
// to an embedding vector, because regenerating those vectors is the slow
// part of startup. The EmbeddingCache interface captures exactly that.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return the storage.EmbeddingCache
// interface to enforce abstraction and keep backends swappable:
//
//	cache, err := badger.NewCache(backend) // returns storage.EmbeddingCache
//
// # Thread Safety
//
// All cache implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All cache methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific
// timeout requirements.
package storage
