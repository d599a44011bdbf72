package extractor

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"appdesigner/internal/common/config"
	"appdesigner/internal/models"
)

// OpenAICompatProvider calls any OpenAI-compatible chat-completions
// endpoint. The primary deployment points it at Groq via the base URL.
type OpenAICompatProvider struct {
	client openai.Client
	name   string
	cfg    config.ProviderConfig
}

func NewOpenAICompatProvider(name string, cfg config.ProviderConfig) *OpenAICompatProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAICompatProvider{
		client: openai.NewClient(opts...),
		name:   name,
		cfg:    cfg,
	}
}

func (p *OpenAICompatProvider) Name() string {
	return p.name
}

func (p *OpenAICompatProvider) Extract(ctx context.Context, prompt string, prefs models.Preferences) (*models.Requirements, error) {
	ctx, cancel := context.WithTimeout(ctx, config.GetDuration(p.cfg.Timeout))
	defer cancel()

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildUserPrompt(prompt, prefs)),
		},
		Temperature: openai.Float(p.cfg.Temperature),
		MaxTokens:   openai.Int(int64(p.cfg.MaxTokens)),
	})
	if err != nil {
		return nil, fmt.Errorf("%s chat completion: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s returned no choices", p.name)
	}

	return decodeRequirements(resp.Choices[0].Message.Content)
}
