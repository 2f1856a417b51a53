package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/supportloop/triage/internal/config"
)

// NewClient builds the responder and embedder clients for the configured
// provider. External providers are wrapped with the timeout-and-retry
// decorators; the canned provider needs neither.
func NewClient(ctx context.Context, cfg config.LLMConfig) (LLMClient, EmbedderClient, error) {
	provider := strings.ToLower(cfg.Provider)

	switch provider {
	case "", "canned":
		c := NewCannedClient()
		return c, c, nil

	case "openai":
		c := NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.EmbeddingModel, cfg.BaseURL)
		return NewResilientLLM(c, 0), NewResilientEmbedder(c, 0), nil

	case "gemini":
		c, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Model, cfg.EmbeddingModel)
		if err != nil {
			return nil, nil, err
		}
		return NewResilientLLM(c, 0), NewResilientEmbedder(c, 0), nil

	case "claude":
		c := NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL)
		// No embedding API; the ranker degrades every score to 0.
		return NewResilientLLM(c, 0), nil, nil

	case "ollama":
		// Ollama speaks the OpenAI API under /v1.
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}

		log.Printf("Using Ollama via OpenAI-compatible API at %s", baseURL)

		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama" // ignored by Ollama, required by the client
		}

		c := NewOpenAIClient(apiKey, cfg.Model, cfg.EmbeddingModel, baseURL)
		return NewResilientLLM(c, 0), NewResilientEmbedder(c, 0), nil

	default:
		return nil, nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
