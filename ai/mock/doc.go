// Package mock provides a test double implementation of the ai.Embedder
// interface.
//
// The mock allows tests to run without an external embedding service and
// enables controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockEmbed := mock.NewMockEmbedder()
//	vec, err := mockEmbed.EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	mockEmbed.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return []float32{0.1, 0.2, 0.3}, nil
//	}
//
//	// Check call counts
//	count := mockEmbed.CallCount()
//
// # Default Behavior
//
// When no function fields are set, the mock returns deterministic
// unit-norm vectors derived from a hash of the input text, so identical
// texts always embed identically within and across tests.
package mock
