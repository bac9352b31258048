package factory

import (
	"context"
	"fmt"

	"codebiruni-be/pkg/llm"
	"codebiruni-be/pkg/llm/gemini"
	"codebiruni-be/pkg/llm/ollama"
)

// NewLLMProvider builds the configured text-generation backend.
func NewLLMProvider(ctx context.Context, providerType, modelName, geminiKey, ollamaBaseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		if modelName == "" {
			modelName = "gemini-1.5-flash"
		}
		return gemini.NewGeminiProvider(ctx, geminiKey, modelName)
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
