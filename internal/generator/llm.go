package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

// LLMGenerator генерирует документы через langchaingo
type LLMGenerator struct {
	model   llms.Model
	options []llms.CallOption
}

func NewLLMGenerator(model llms.Model, options ...llms.CallOption) *LLMGenerator {
	return &LLMGenerator{model: model, options: options}
}

func (g *LLMGenerator) Generate(ctx context.Context, req Request) (string, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return "", err
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, g.options...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return strings.TrimSpace(text), nil
}

// ProviderConfig - параметры выбора backend-а
type ProviderConfig struct {
	Provider string // template, googleai, openai
	APIKey   string
	Model    string
	BaseURL  string
}

// NewFromConfig создает backend по имени провайдера
func NewFromConfig(ctx context.Context, cfg ProviderConfig) (Generator, error) {
	options := []llms.CallOption{
		llms.WithTemperature(0.4),
		llms.WithMaxTokens(1500),
	}

	switch cfg.Provider {
	case "", "template":
		return NewTemplateGenerator(), nil

	case "googleai":
		model := cfg.Model
		if model == "" {
			model = "gemini-1.5-flash"
		}
		llm, err := googleai.New(ctx,
			googleai.WithAPIKey(cfg.APIKey),
			googleai.WithDefaultModel(model),
		)
		if err != nil {
			return nil, fmt.Errorf("init googleai: %w", err)
		}
		return NewLLMGenerator(llm, options...), nil

	case "openai":
		opts := []openai.Option{openai.WithToken(cfg.APIKey)}
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("init openai: %w", err)
		}
		return NewLLMGenerator(llm, options...), nil

	default:
		return nil, errors.New("unknown generator provider: " + cfg.Provider)
	}
}
