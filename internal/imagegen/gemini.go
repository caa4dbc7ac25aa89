package imagegen

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// implements Source using Google Gemini image generation
type GeminiSource struct {
	client *genai.Client
	model  string
}

func NewGeminiSource(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*GeminiSource, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash-image"
	}

	return &GeminiSource{
		client: client,
		model:  model,
	}, nil
}

// Generate produces one image for the prompt.
func (s *GeminiSource) Generate(
	ctx context.Context,
	prompt string,
) (*Image, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts(
			[]*genai.Part{genai.NewPartFromText(prompt)},
			genai.RoleUser,
		),
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	result, err := s.client.Models.GenerateContent(
		ctx,
		s.model,
		contents,
		config,
	)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	return extractInlineImage(result)
}

// extractInlineImage pulls the first inline image part from a Gemini
// response.
func extractInlineImage(result *genai.GenerateContentResponse) (*Image, error) {
	if result == nil || len(result.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = "image/png"
				}
				return &Image{
					Data:     part.InlineData.Data,
					MIMEType: mimeType,
				}, nil
			}
		}
	}

	return nil, fmt.Errorf("no image data in Gemini response")
}

// Close closes the Gemini client
func (s *GeminiSource) Close() error {
	// The genai client doesn't have a Close method in the current SDK
	// but we include this for future compatibility
	return nil
}
