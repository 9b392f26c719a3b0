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


package engine

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrProfileRequired is returned when a profile is not provided.
	ErrProfileRequired = errors.New("profile required")

	// ErrNoChunks is returned when the profile yields no indexable chunks.
	ErrNoChunks = errors.New("profile produced no chunks")

	// ErrDimensionMismatch is returned when the embedding provider returns
	// vectors of inconsistent dimensionality.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
