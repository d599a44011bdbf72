package extractor

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"appdesigner/internal/common/config"
	"appdesigner/internal/models"
)

// AnthropicProvider is the secondary extraction tier, using the Messages
// API with the same instruction template as the primary.
type AnthropicProvider struct {
	client anthropic.Client
	cfg    config.ProviderConfig
}

func NewAnthropicProvider(cfg config.ProviderConfig) *AnthropicProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &AnthropicProvider{
		client: anthropic.NewClient(opts...),
		cfg:    cfg,
	}
}

func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

func (p *AnthropicProvider) Extract(ctx context.Context, prompt string, prefs models.Preferences) (*models.Requirements, error) {
	ctx, cancel := context.WithTimeout(ctx, config.GetDuration(p.cfg.Timeout))
	defer cancel()

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.cfg.Model),
		MaxTokens: int64(p.cfg.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildUserPrompt(prompt, prefs))),
		},
		Temperature: anthropic.Float(p.cfg.Temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic message: %w", err)
	}

	var content string
	for _, block := range msg.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}

	return decodeRequirements(content)
}
