package llm

import (
	"context"
	"fmt"
	"io"
	"os"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and logging middleware. logOut may be nil to disable logging.
func NewProvider(ctx context.Context, cfg Config, logOut io.Writer) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller -> retry -> logging -> base.
	logged := WithLogging(base, logOut)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from STUDYHUB_* env vars, falling
// back to key discovery (GEMINI_API_KEY, OPENAI_API_KEY, ...) when no
// provider is configured explicitly.
func NewProviderFromEnv(ctx context.Context, logOut io.Writer) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return NewProvider(ctx, cfg, logOut)
	} else if os.Getenv("STUDYHUB_LLM_PROVIDER") != "" {
		// An explicitly selected provider with a missing key is a
		// configuration error, not a discovery case.
		return nil, err
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return nil, fmt.Errorf("no LLM API key found in environment")
	}
	return NewProvider(ctx, discovered, logOut)
}
