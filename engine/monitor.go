package engine

import "github.com/K-N-K-P-Chandu/My-Portfolio/core"

// QueryMonitor provides hooks to observe the query process.
// Implement this interface to track intermediate steps and results.
type QueryMonitor interface {
	Start(query string)
	AfterQueryEmbedding(dimension int)
	AfterScoring(scored []core.ScoredChunk)
	Merged(bestLabel, runnerUpLabel string)
	Fallback(bestScore float64)
	Finish(result *core.QueryResult)
}

// noopMonitor is a no-op implementation of QueryMonitor
type noopMonitor struct{}

var _ QueryMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                    {}
func (n *noopMonitor) AfterQueryEmbedding(_ int)         {}
func (n *noopMonitor) AfterScoring(_ []core.ScoredChunk) {}
func (n *noopMonitor) Merged(_, _ string)                {}
func (n *noopMonitor) Fallback(_ float64)                {}
func (n *noopMonitor) Finish(_ *core.QueryResult)        {}
