// Package openai provides an ai.Embedder backed by OpenAI-compatible
// embedding APIs via langchaingo. It works against hosted OpenAI as well
// as local services such as Ollama, LocalAI and vLLM.
package openai
