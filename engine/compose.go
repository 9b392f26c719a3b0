package engine

import (
	"strings"

	"github.com/K-N-K-P-Chandu/My-Portfolio/core"
)

// compose turns the ranked chunks into the final answer payload.
//
// The best chunk must clear the similarity threshold, otherwise the result
// is a fallback ("no confident match", not an error). A near-tied
// runner-up on a different topic may be appended to the answer, except
// when either chunk is an overview: overviews are broad summaries that
// would make a combined answer redundant.
func (e *Engine) compose(scored []core.ScoredChunk, monitor QueryMonitor) *core.QueryResult {
	if len(scored) == 0 {
		monitor.Fallback(0)
		return &core.QueryResult{Answer: e.params.FallbackMessage, IsFallback: true}
	}

	best := scored[0]
	if best.Total < e.params.SimilarityThreshold {
		monitor.Fallback(best.Total)
		return &core.QueryResult{Answer: e.params.FallbackMessage, IsFallback: true}
	}

	answer := best.Chunk.Text
	if len(scored) > 1 && e.shouldMerge(best, scored[1]) {
		answer += "\n\n" + scored[1].Chunk.Text
		monitor.Merged(best.Chunk.Label, scored[1].Chunk.Label)
	}

	return &core.QueryResult{
		Answer: answer,
		Label:  best.Chunk.Label,
		Score:  best.Total,
	}
}

func (e *Engine) shouldMerge(best, runnerUp core.ScoredChunk) bool {
	if runnerUp.Total <= best.Total-e.params.MergeMargin {
		return false
	}
	if runnerUp.Total <= e.params.SimilarityThreshold {
		return false
	}
	if runnerUp.Chunk.Label == best.Chunk.Label {
		return false
	}
	if strings.Contains(best.Chunk.Label, "Overview") ||
		strings.Contains(runnerUp.Chunk.Label, "Overview") {
		return false
	}
	return len(best.Chunk.Text)+len(runnerUp.Chunk.Text) < e.params.MaxAnswerLength
}
