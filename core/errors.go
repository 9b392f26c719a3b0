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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrEmptyText indicates the Text field is empty.
	ErrEmptyText = errors.New("chunk text cannot be empty")

	// ErrEmptyLabel indicates the Label field is empty.
	ErrEmptyLabel = errors.New("chunk label cannot be empty")

	// ErrKeywordNotNormalized indicates a keyword is not lowercase and trimmed.
	ErrKeywordNotNormalized = errors.New("keyword must be lowercase and trimmed")
)
