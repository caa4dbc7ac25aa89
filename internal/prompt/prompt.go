package prompt

import (
	"context"
	"fmt"
	"strings"
)

// Builder turns a block's combined subtitle text into an image
// generation prompt.
type Builder interface {
	Build(ctx context.Context, text string) (string, error)
}

// Provider identifies a prompt building strategy.
type Provider string

const (
	ProviderStatic    Provider = "static"
	ProviderAnthropic Provider = "anthropic"
)

// Options configures prompt building.
type Options struct {
	// Style is appended to every prompt (e.g. "watercolor",
	// "cinematic still").
	Style string
	Model string
}

// Factory creates a Builder for the given provider.
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Builder, error) {
	switch provider {
	case ProviderStatic:
		return NewStaticBuilder(opts), nil
	case ProviderAnthropic:
		return NewAnthropicBuilder(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported prompt provider: %s", provider)
	}
}

// StaticBuilder produces a deterministic template prompt from the
// block text, with no API calls.
type StaticBuilder struct {
	options Options
}

func NewStaticBuilder(opts Options) *StaticBuilder {
	return &StaticBuilder{options: opts}
}

func (b *StaticBuilder) Build(
	ctx context.Context,
	text string,
) (string, error) {
	dialogue := strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))

	var sb strings.Builder
	sb.WriteString(
		"Create a single illustrative image for a short video clip. ",
	)
	sb.WriteString(
		"The image should capture the scene described by this dialogue: ",
	)
	sb.WriteString(fmt.Sprintf("%q. ", dialogue))
	sb.WriteString("No text or captions in the image.")

	if b.options.Style != "" {
		sb.WriteString(fmt.Sprintf(" Style: %s.", b.options.Style))
	}

	return sb.String(), nil
}
