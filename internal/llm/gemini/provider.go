package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/nwchen/chathub/internal/config"
	"github.com/nwchen/chathub/internal/llm"
)

// Provider implements llm.Provider on the Gemini SDK
type Provider struct {
	apiKey    string
	model     string
	maxTokens int
}

// NewProvider creates a new Gemini provider
func NewProvider(cfg config.GeminiConfig, maxTokens int) *Provider {
	return &Provider{
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: maxTokens,
	}
}

func (p *Provider) Name() string {
	return "gemini"
}

func (p *Provider) DefaultModel() string {
	if p.model != "" {
		return p.model
	}
	return "gemini-1.5-flash"
}

func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

func (p *Provider) Complete(ctx context.Context, messages []string, model string) (*llm.Reply, error) {
	if len(messages) == 0 {
		return nil, nil
	}
	if !p.IsConfigured() {
		return nil, fmt.Errorf("gemini provider is not configured (missing API key)")
	}
	if model == "" {
		model = p.DefaultModel()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	generativeModel := client.GenerativeModel(model)
	if p.maxTokens > 0 {
		maxOut := int32(p.maxTokens)
		generativeModel.MaxOutputTokens = &maxOut
	}

	parts := make([]genai.Part, 0, len(messages))
	for _, m := range messages {
		parts = append(parts, genai.Text(m))
	}

	start := time.Now()
	resp, err := generativeModel.GenerateContent(ctx, parts...)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var output string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output += string(text)
		}
	}

	tokensUsed := 0
	if resp.UsageMetadata != nil {
		tokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &llm.Reply{
		Content:    output,
		Model:      model,
		TokensUsed: tokensUsed,
		LatencyMs:  latency,
	}, nil
}
