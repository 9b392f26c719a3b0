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


// Package engine answers free-text questions about a resume profile.
//
// The Engine type implements a hybrid retrieval pipeline:
//   - Chunk building: the profile is rendered into labeled text chunks
//     with hand-picked keywords
//   - Semantic scoring: cosine similarity between the query embedding
//     and each chunk embedding
//   - Keyword bonus: fuzzy keyword matches add a capped bonus on top of
//     the cosine score
//
// The top-scoring chunk becomes the answer; a close runner-up may be
// merged in. When no chunk clears the confidence threshold the engine
// returns a fallback message instead of a weak guess.
package engine
