package imagegen

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Image holds generated or loaded image bytes with their media type.
type Image struct {
	Data     []byte
	MIMEType string
}

// Source is the interface for producing one image from a text prompt.
type Source interface {
	Generate(ctx context.Context, prompt string) (*Image, error)
}

// IndexedSource is an optional interface for sources whose output
// depends on the position of the request, not just the prompt.
// GenerateBatch prefers it when present: its workers run concurrently,
// so a source handing out images by internal call order would pair
// them with the wrong positions.
type IndexedSource interface {
	Source
	GenerateIndex(ctx context.Context, index int, prompt string) (*Image, error)
}

// Provider identifies an image source backend.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderDirectory Provider = "dir"
)

// Options configures image generation.
type Options struct {
	Model string
	// Size is the requested output size for providers that support it
	// (e.g. "1024x1024").
	Size string
	// Directory is the image folder for the directory provider.
	Directory string
}

// Factory creates an image source for the given provider.
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Source, error) {
	switch provider {
	case ProviderGemini:
		return NewGeminiSource(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAISource(ctx, apiKey, opts)
	case ProviderDirectory:
		return NewDirectorySource(opts.Directory)
	default:
		return nil, fmt.Errorf("unsupported image provider: %s", provider)
	}
}

// holds the result of generating one image
type generateResult struct {
	Index int
	Image *Image
	Error error
}

// GenerateBatch produces one image per prompt, in order, using up to
// concurrency parallel workers. The first failure aborts the batch.
func GenerateBatch(
	ctx context.Context,
	source Source,
	prompts []string,
	concurrency int,
) ([]*Image, error) {
	if len(prompts) == 0 {
		return []*Image{}, nil
	}

	if concurrency <= 0 {
		concurrency = 3
	}
	if concurrency > len(prompts) {
		concurrency = len(prompts)
	}

	indexed, _ := source.(IndexedSource)

	workChan := make(chan int, len(prompts))
	resultChan := make(chan generateResult, len(prompts))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workChan {
				if ctx.Err() != nil {
					resultChan <- generateResult{Index: idx, Error: ctx.Err()}
					continue
				}
				var img *Image
				var err error
				if indexed != nil {
					img, err = indexed.GenerateIndex(ctx, idx, prompts[idx])
				} else {
					img, err = source.Generate(ctx, prompts[idx])
				}
				resultChan <- generateResult{
					Index: idx,
					Image: img,
					Error: err,
				}
			}
		}()
	}

	for i := range prompts {
		workChan <- i
	}
	close(workChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]generateResult, 0, len(prompts))
	for result := range resultChan {
		if result.Error != nil {
			return nil, fmt.Errorf(
				"image %d failed: %w",
				result.Index+1,
				result.Error,
			)
		}
		results = append(results, result)
	}

	// sort by index to maintain order
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	images := make([]*Image, len(results))
	for i, r := range results {
		images[i] = r.Image
	}

	return images, nil
}
