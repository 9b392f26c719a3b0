package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-N-K-P-Chandu/My-Portfolio/core"
)

// recordingMonitor captures monitor callbacks for assertions.
type recordingMonitor struct {
	started    string
	dimension  int
	scored     []core.ScoredChunk
	merged     [][2]string
	fallbacks  []float64
	finished   *core.QueryResult
	finishedOK bool
}

func (r *recordingMonitor) Start(query string)            { r.started = query }
func (r *recordingMonitor) AfterQueryEmbedding(dim int)   { r.dimension = dim }
func (r *recordingMonitor) AfterScoring(s []core.ScoredChunk) {
	r.scored = s
}
func (r *recordingMonitor) Merged(best, runnerUp string) {
	r.merged = append(r.merged, [2]string{best, runnerUp})
}
func (r *recordingMonitor) Fallback(score float64) { r.fallbacks = append(r.fallbacks, score) }
func (r *recordingMonitor) Finish(result *core.QueryResult) {
	r.finished = result
	r.finishedOK = true
}

func scoredChunk(label, text string, total float64) core.ScoredChunk {
	return core.ScoredChunk{
		Chunk: &core.Chunk{Text: text, Label: label},
		Total: total,
	}
}

func TestCompose_Fallback(t *testing.T) {
	e := scoringEngine(nil)

	t.Run("no chunks", func(t *testing.T) {
		monitor := &recordingMonitor{}
		result := e.compose(nil, monitor)
		require.NotNil(t, result)
		assert.True(t, result.IsFallback)
		assert.Equal(t, DefaultFallbackMessage, result.Answer)
		assert.Empty(t, result.Label)
		assert.Zero(t, result.Score)
		assert.Equal(t, []float64{0}, monitor.fallbacks)
	})

	t.Run("best below threshold", func(t *testing.T) {
		monitor := &recordingMonitor{}
		scored := []core.ScoredChunk{scoredChunk("Skills", "skills text", 0.1)}
		result := e.compose(scored, monitor)
		assert.True(t, result.IsFallback)
		assert.Equal(t, DefaultFallbackMessage, result.Answer)
		assert.Equal(t, []float64{0.1}, monitor.fallbacks)
	})

	t.Run("exactly at threshold is kept", func(t *testing.T) {
		monitor := &recordingMonitor{}
		scored := []core.ScoredChunk{scoredChunk("Skills", "skills text", DefaultSimilarityThreshold)}
		result := e.compose(scored, monitor)
		assert.False(t, result.IsFallback)
		assert.Equal(t, "skills text", result.Answer)
		assert.Empty(t, monitor.fallbacks)
	})
}

func TestCompose_SingleAnswer(t *testing.T) {
	e := scoringEngine(nil)
	monitor := &recordingMonitor{}

	scored := []core.ScoredChunk{
		scoredChunk("Contact", "contact text", 0.9),
		scoredChunk("Skills", "skills text", 0.3),
	}
	result := e.compose(scored, monitor)

	assert.False(t, result.IsFallback)
	assert.Equal(t, "contact text", result.Answer)
	assert.Equal(t, "Contact", result.Label)
	assert.InDelta(t, 0.9, result.Score, 1e-9)
	assert.Empty(t, monitor.merged)
}

func TestCompose_Merge(t *testing.T) {
	e := scoringEngine(nil)

	t.Run("close runner-up is appended", func(t *testing.T) {
		monitor := &recordingMonitor{}
		scored := []core.ScoredChunk{
			scoredChunk("Skill - Python", "python text", 0.5),
			scoredChunk("Skill - SQL", "sql text", 0.45),
		}
		result := e.compose(scored, monitor)

		assert.Equal(t, "python text\n\nsql text", result.Answer)
		assert.Equal(t, "Skill - Python", result.Label)
		assert.InDelta(t, 0.5, result.Score, 1e-9)
		require.Len(t, monitor.merged, 1)
		assert.Equal(t, [2]string{"Skill - Python", "Skill - SQL"}, monitor.merged[0])
	})

	t.Run("distant runner-up is not merged", func(t *testing.T) {
		scored := []core.ScoredChunk{
			scoredChunk("Skill - Python", "python text", 0.8),
			scoredChunk("Skill - SQL", "sql text", 0.4),
		}
		result := e.compose(scored, &recordingMonitor{})
		assert.Equal(t, "python text", result.Answer)
	})

	t.Run("runner-up below threshold is not merged", func(t *testing.T) {
		scored := []core.ScoredChunk{
			scoredChunk("Skill - Python", "python text", 0.2),
			scoredChunk("Skill - SQL", "sql text", 0.12),
		}
		result := e.compose(scored, &recordingMonitor{})
		assert.Equal(t, "python text", result.Answer)
	})

	t.Run("same label is not merged", func(t *testing.T) {
		scored := []core.ScoredChunk{
			scoredChunk("Skills", "first skills", 0.5),
			scoredChunk("Skills", "second skills", 0.48),
		}
		result := e.compose(scored, &recordingMonitor{})
		assert.Equal(t, "first skills", result.Answer)
	})

	t.Run("overview chunks are never merged", func(t *testing.T) {
		scored := []core.ScoredChunk{
			scoredChunk("Experience Overview", "overview text", 0.5),
			scoredChunk("Experience - Acme", "acme text", 0.48),
		}
		result := e.compose(scored, &recordingMonitor{})
		assert.Equal(t, "overview text", result.Answer)

		scored = []core.ScoredChunk{
			scoredChunk("Experience - Acme", "acme text", 0.5),
			scoredChunk("Experience Overview", "overview text", 0.48),
		}
		result = e.compose(scored, &recordingMonitor{})
		assert.Equal(t, "acme text", result.Answer)
	})

	t.Run("combined length cap", func(t *testing.T) {
		long := strings.Repeat("x", DefaultMaxAnswerLength/2)
		scored := []core.ScoredChunk{
			scoredChunk("Skill - Python", long, 0.5),
			scoredChunk("Skill - SQL", long, 0.48),
		}
		result := e.compose(scored, &recordingMonitor{})
		assert.Equal(t, long, result.Answer)
	})
}
