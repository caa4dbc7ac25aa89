package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// implements Source using the OpenAI Images API
type OpenAISource struct {
	client openai.Client
	model  string
	size   string
}

func NewOpenAISource(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*OpenAISource, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	model := opts.Model
	if model == "" {
		model = "gpt-image-1"
	}

	size := opts.Size
	if size == "" {
		size = "1024x1024"
	}

	return &OpenAISource{
		client: client,
		model:  model,
		size:   size,
	}, nil
}

// Generate produces one image for the prompt.
func (s *OpenAISource) Generate(
	ctx context.Context,
	prompt string,
) (*Image, error) {
	result, err := s.client.Images.Generate(
		ctx,
		openai.ImageGenerateParams{
			Prompt: prompt,
			Model:  openai.ImageModel(s.model),
			Size:   openai.ImageGenerateParamsSize(s.size),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	if result == nil || len(result.Data) == 0 {
		return nil, fmt.Errorf("empty response from OpenAI")
	}

	payload := result.Data[0].B64JSON
	if payload == "" {
		return nil, fmt.Errorf("no image data in OpenAI response")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}

	return &Image{
		Data:     data,
		MIMEType: "image/png",
	}, nil
}

func (s *OpenAISource) Close() error {
	return nil
}
