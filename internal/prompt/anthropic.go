package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// implements Builder using Anthropic Claude to distill dialogue into
// a visual scene description
type AnthropicBuilder struct {
	client  anthropic.Client
	model   anthropic.Model
	options Options
}

func NewAnthropicBuilder(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*AnthropicBuilder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	model := anthropic.Model(opts.Model)
	if opts.Model == "" {
		model = anthropic.ModelClaudeHaiku4_5
	}

	return &AnthropicBuilder{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

func (b *AnthropicBuilder) Build(
	ctx context.Context,
	text string,
) (string, error) {
	instruction := b.buildInstruction(text)

	message, err := b.client.Messages.New(
		ctx,
		anthropic.MessageNewParams{
			Model:     b.model,
			MaxTokens: 1024,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(
					anthropic.NewTextBlock(instruction),
				),
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("prompt refinement failed: %w", err)
	}

	if message == nil || len(message.Content) == 0 {
		return "", fmt.Errorf("empty response from Anthropic")
	}

	var responseText string
	for _, content := range message.Content {
		if content.Type == "text" {
			responseText += content.Text
		}
	}

	responseText = strings.TrimSpace(responseText)
	if responseText == "" {
		return "", fmt.Errorf("no text in Anthropic response")
	}

	return responseText, nil
}

func (b *AnthropicBuilder) buildInstruction(text string) string {
	var sb strings.Builder

	sb.WriteString(
		"Below is a passage of subtitle dialogue from a video. ",
	)
	sb.WriteString(
		"Describe, in one or two sentences, a single still image that illustrates the scene. ",
	)
	sb.WriteString("Describe only what is visible; do not quote the dialogue ")
	sb.WriteString("and do not include any text in the image.\n")

	if b.options.Style != "" {
		sb.WriteString(
			fmt.Sprintf("The image style is: %s.\n", b.options.Style),
		)
	}

	sb.WriteString("\nDialogue:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nReturn only the image description, no preamble.")

	return sb.String()
}

func (b *AnthropicBuilder) Close() error {
	return nil
}
