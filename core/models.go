package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a content-derived identifier for domain values.
// It is used for cache keys and logging, never for chunk identity:
// chunks are identified by their content and duplicates are harmless.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Chunk is a single retrievable unit of text plus metadata.
// It is the atomic answer candidate of the query engine.
type Chunk struct {
	Text      string
	Label     string
	Keywords  []string  // lowercase, trimmed tokens
	Embedding []float32 // nil until the index is built, immutable afterwards
}

// ID returns the content-derived identifier of the chunk text.
func (c *Chunk) ID() ID {
	return IDFromContent(c.Text)
}

// HasEmbedding reports whether an embedding has been attached.
func (c *Chunk) HasEmbedding() bool {
	return len(c.Embedding) > 0
}

// ScoredChunk pairs a chunk with its per-query relevance signals.
// Instances are freshly allocated for every query and never shared.
type ScoredChunk struct {
	Chunk        *Chunk
	Cosine       float64
	KeywordBonus float64
	Total        float64
}

// QueryResult is the final answer payload returned to the caller.
// Label is empty and Score is zero when IsFallback is true.
type QueryResult struct {
	Answer     string
	Label      string
	Score      float64
	IsFallback bool
}
