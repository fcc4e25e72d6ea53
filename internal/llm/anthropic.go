package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 2048

// Anthropic calls the Claude messages API through the official SDK.
type Anthropic struct {
	model  string
	client anthropic.Client
}

func NewAnthropic(model, apiKey string) *Anthropic {
	return &Anthropic{
		model:  model,
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}
}

func (a *Anthropic) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("call anthropic: %w", err)
	}

	var out strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("anthropic: empty completion")
	}
	return out.String(), nil
}
