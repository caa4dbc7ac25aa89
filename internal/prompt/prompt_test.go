package prompt

import (
	"context"
	"strings"
	"testing"
)

func TestStaticBuilderIncludesDialogue(t *testing.T) {
	builder := NewStaticBuilder(Options{})

	got, err := builder.Build(context.Background(), "Hi\nthere friend")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !strings.Contains(got, `"Hi there friend"`) {
		t.Errorf("expected prompt to contain flattened dialogue, got %q", got)
	}
}

func TestStaticBuilderAppendsStyle(t *testing.T) {
	builder := NewStaticBuilder(Options{Style: "watercolor"})

	got, err := builder.Build(context.Background(), "some dialogue")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.Contains(got, "watercolor") {
		t.Errorf("expected style hint in prompt, got %q", got)
	}

	plain := NewStaticBuilder(Options{})
	gotPlain, err := plain.Build(context.Background(), "some dialogue")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if strings.Contains(gotPlain, "Style:") {
		t.Errorf("expected no style suffix without a style, got %q", gotPlain)
	}
}

func TestStaticBuilderIsDeterministic(t *testing.T) {
	builder := NewStaticBuilder(Options{Style: "pixel art"})
	ctx := context.Background()

	first, _ := builder.Build(ctx, "the same text")
	second, _ := builder.Build(ctx, "the same text")
	if first != second {
		t.Error("expected identical prompts for identical input")
	}
}

func TestFactoryReturnsStaticBuilder(t *testing.T) {
	builder, err := Factory(context.Background(), ProviderStatic, "", Options{})
	if err != nil {
		t.Fatalf("Factory(ProviderStatic) returned error: %v", err)
	}
	if _, ok := builder.(*StaticBuilder); !ok {
		t.Errorf("expected *StaticBuilder, got %T", builder)
	}
}

func TestFactoryReturnsAnthropicBuilder(t *testing.T) {
	builder, err := Factory(
		context.Background(),
		ProviderAnthropic,
		"fake-key",
		Options{},
	)
	if err != nil {
		t.Fatalf("Factory(ProviderAnthropic) returned error: %v", err)
	}
	if _, ok := builder.(*AnthropicBuilder); !ok {
		t.Errorf("expected *AnthropicBuilder, got %T", builder)
	}
}

func TestFactoryAnthropicRequiresAPIKey(t *testing.T) {
	_, err := Factory(context.Background(), ProviderAnthropic, "", Options{})
	if err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	_, err := Factory(context.Background(), Provider("unknown"), "", Options{})
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}
