package portfolio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-N-K-P-Chandu/My-Portfolio/ai/mock"
	"github.com/K-N-K-P-Chandu/My-Portfolio/engine"
	"github.com/K-N-K-P-Chandu/My-Portfolio/resume"
)

func TestNewAssistant(t *testing.T) {
	t.Run("with injected embedder", func(t *testing.T) {
		assistant, err := NewAssistant(WithEmbedder(mock.NewMockEmbedder()))
		require.NoError(t, err)
		require.NotNil(t, assistant)
		defer assistant.Close()

		assert.False(t, assistant.Ready())
	})

	t.Run("with custom profile", func(t *testing.T) {
		profile := &resume.Profile{
			PersonalInfo: resume.PersonalInfo{
				Name:  "Ada Lovelace",
				Title: "Data Engineer",
				Email: "ada@example.com",
			},
			Summary: "Short summary.",
		}
		assistant, err := NewAssistant(
			WithEmbedder(mock.NewMockEmbedder()),
			WithProfile(profile),
		)
		require.NoError(t, err)
		defer assistant.Close()

		result, err := assistant.Ask(context.Background(), "What is your email?")
		require.NoError(t, err)
		assert.Contains(t, result.Answer, "ada@example.com")
	})

	t.Run("invalid profile", func(t *testing.T) {
		assistant, err := NewAssistant(
			WithEmbedder(mock.NewMockEmbedder()),
			WithProfile(&resume.Profile{}),
		)
		assert.ErrorIs(t, err, resume.ErrNameRequired)
		assert.Nil(t, assistant)
	})

	t.Run("invalid params", func(t *testing.T) {
		params := engine.DefaultParams()
		params.MaxAnswerLength = 0
		assistant, err := NewAssistant(
			WithEmbedder(mock.NewMockEmbedder()),
			WithParams(params),
		)
		assert.Error(t, err)
		assert.Nil(t, assistant)
	})

	t.Run("error with cache dir that is a file", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

		assistant, err := NewAssistant(
			WithEmbedder(mock.NewMockEmbedder()),
			WithCacheDir(tmpFile),
		)
		assert.Error(t, err)
		assert.Nil(t, assistant)
	})
}

func TestAssistant_Ask(t *testing.T) {
	assistant, err := NewAssistant(WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	defer assistant.Close()

	ctx := context.Background()

	result, err := assistant.Ask(ctx, "What is your email?")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, assistant.Ready(), "first Ask must build the index")
	assert.NotEmpty(t, result.Answer)
}

func TestAssistant_CachedEmbeddings(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "embeddings")

	embedder := mock.NewMockEmbedder()
	assistant, err := NewAssistant(
		WithEmbedder(embedder),
		WithCacheDir(cacheDir),
	)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, assistant.Initialize(ctx))
	firstRunCalls := embedder.CallCount()
	require.Positive(t, firstRunCalls)
	require.NoError(t, assistant.Close())

	// A new assistant over the same cache dir finds every chunk vector
	// already stored and never reaches the inner embedder.
	embedder.Reset()
	assistant, err = NewAssistant(
		WithEmbedder(embedder),
		WithCacheDir(cacheDir),
	)
	require.NoError(t, err)
	defer assistant.Close()

	require.NoError(t, assistant.Initialize(ctx))
	assert.Zero(t, embedder.CallCount())
}

func TestAssistant_Close(t *testing.T) {
	assistant, err := NewAssistant(
		WithEmbedder(mock.NewMockEmbedder()),
		WithCacheDir(t.TempDir()),
	)
	require.NoError(t, err)
	assert.NoError(t, assistant.Close())
}
