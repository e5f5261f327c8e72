package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/santgross/BIOFIT-EXPERT/internal/store"
)

// NewProvider builds the configured provider wrapped as
// caller → retry → event logging → backend. events may be nil.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, logger *slog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if events != nil {
		base = WithLogging(base, cfg.Provider, events, logger)
	}
	return WithRetry(base, cfg.Retry), nil
}
