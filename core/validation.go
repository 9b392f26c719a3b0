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

import (
	"fmt"
	"strings"
)

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - Label must not be empty
//   - Keywords must be lowercase and trimmed
//
// NOT validated (populated during index build):
//   - Embedding (can be nil until the index attaches it)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if strings.TrimSpace(chunk.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyText)
	}

	if chunk.Label == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyLabel)
	}

	for _, keyword := range chunk.Keywords {
		if keyword != strings.ToLower(strings.TrimSpace(keyword)) || keyword == "" {
			return fmt.Errorf("%w: %w: %q", ErrInvalidChunk, ErrKeywordNotNormalized, keyword)
		}
	}

	return nil
}
