package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/maheshrk/storyclip/internal/archive"
	"github.com/maheshrk/storyclip/internal/block"
	"github.com/maheshrk/storyclip/internal/imagegen"
	"github.com/maheshrk/storyclip/internal/prompt"
	"github.com/maheshrk/storyclip/internal/render"
	"github.com/maheshrk/storyclip/internal/subtitle"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [subtitle_file]",
	Short: "Render a subtitle file into a zip of image-backed clips",
	Long: `Run the full pipeline: parse the subtitle file, group entries into
blocks, pair each block with one still image, render each block as an
mp4 clip covering its time range, and package the clips plus a JSON
manifest into a single zip archive.

Images come from an AI provider (gemini, openai) or from a local folder
of image files assigned to blocks in sorted order (--image-provider dir
--image-dir ./images). With an AI provider, each block's dialogue is
turned into an illustration prompt; pass --prompt-provider anthropic to
have Claude distill the dialogue into a scene description first.

Examples:
  storyclip render episode.srt
  storyclip render episode.srt --image-provider openai -o episode-clips.zip
  storyclip render episode.srt --image-provider dir --image-dir ./stills
  storyclip render episode.srt --prompt-provider anthropic --style watercolor`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().
		Int("min-block", 3, "Minimum subtitles per block (clamped to >= 1)")
	renderCmd.Flags().
		Int("max-block", 8, "Maximum subtitles per block (clamped to >= min)")
	renderCmd.Flags().
		Int64("seed", 0, "Random seed for reproducible segmentation (0 = system random)")
	renderCmd.Flags().
		String("image-provider", "gemini", "Image source (gemini, openai, dir)")
	renderCmd.Flags().
		String("image-dir", "", "Image folder for the dir provider")
	renderCmd.Flags().
		String("image-model", "", "Image model (provider-specific default)")
	renderCmd.Flags().
		StringP("api-key", "k", "", "Image provider API key (or set GEMINI_API_KEY/OPENAI_API_KEY)")
	renderCmd.Flags().
		String("prompt-provider", "static", "Prompt builder (static, anthropic)")
	renderCmd.Flags().
		String("style", "", "Visual style hint appended to image prompts")
	renderCmd.Flags().
		Int("concurrency", 3, "Number of parallel image generation workers")
	renderCmd.Flags().Int("width", 1280, "Clip width in pixels")
	renderCmd.Flags().Int("height", 720, "Clip height in pixels")
	renderCmd.Flags().Int("fps", 30, "Clip frame rate")
}

func runRender(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	ctx := context.Background()

	minSize, _ := cmd.Flags().GetInt("min-block")
	maxSize, _ := cmd.Flags().GetInt("max-block")
	seed, _ := cmd.Flags().GetInt64("seed")
	providerStr, _ := cmd.Flags().GetString("image-provider")
	imageDir, _ := cmd.Flags().GetString("image-dir")
	imageModel, _ := cmd.Flags().GetString("image-model")
	apiKey, _ := cmd.Flags().GetString("api-key")
	promptProviderStr, _ := cmd.Flags().GetString("prompt-provider")
	style, _ := cmd.Flags().GetString("style")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	fps, _ := cmd.Flags().GetInt("fps")
	outputPath, _ := cmd.Flags().GetString("output")

	if concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}

	provider := imagegen.Provider(strings.ToLower(providerStr))
	if provider == imagegen.ProviderDirectory && imageDir == "" {
		return fmt.Errorf("--image-dir is required with --image-provider dir")
	}

	if apiKey == "" {
		switch provider {
		case imagegen.ProviderGemini:
			apiKey = os.Getenv("GEMINI_API_KEY")
		case imagegen.ProviderOpenAI:
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if apiKey == "" && provider != imagegen.ProviderDirectory {
		var envVar string
		switch provider {
		case imagegen.ProviderOpenAI:
			envVar = "OPENAI_API_KEY"
		default:
			envVar = "GEMINI_API_KEY"
		}
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			envVar,
		)
	}

	if outputPath == "" {
		baseName := strings.TrimSuffix(
			subtitlePath,
			filepath.Ext(subtitlePath),
		)
		outputPath = baseName + "-clips.zip"
	}

	entries, err := subtitle.Open(subtitlePath)
	if err != nil {
		return err
	}

	segmenter := newSegmenter(minSize, maxSize, seed)
	blocks := segmenter.Segment(entries)
	summary := block.Analyze(entries, blocks)

	logger.Infow("Starting clip rendering",
		"input", subtitlePath,
		"output", outputPath,
		"entries", summary.TotalSubtitles,
		"blocks", summary.BlockCount,
		"image_provider", providerStr,
		"concurrency", concurrency,
	)

	source, err := imagegen.Factory(ctx, provider, apiKey, imagegen.Options{
		Model:     imageModel,
		Directory: imageDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create image source: %w", err)
	}

	if dirSource, ok := source.(*imagegen.DirectorySource); ok {
		if dirSource.Count() < len(blocks) {
			return fmt.Errorf(
				"image directory has %d images but %d blocks were created",
				dirSource.Count(),
				len(blocks),
			)
		}
	}

	promptAPIKey := os.Getenv("ANTHROPIC_API_KEY")
	builder, err := prompt.Factory(
		ctx,
		prompt.Provider(strings.ToLower(promptProviderStr)),
		promptAPIKey,
		prompt.Options{Style: style},
	)
	if err != nil {
		return fmt.Errorf("failed to create prompt builder: %w", err)
	}

	logger.Infow("Building image prompts")
	prompts := make([]string, len(blocks))
	for i, b := range blocks {
		p, err := builder.Build(ctx, b.CombinedText)
		if err != nil {
			return fmt.Errorf("prompt for %s failed: %w", b.ID, err)
		}
		prompts[i] = p
	}

	logger.Infow("Generating images", "count", len(blocks))
	images, err := imagegen.GenerateBatch(ctx, source, prompts, concurrency)
	if err != nil {
		return fmt.Errorf("image generation failed: %w", err)
	}
	for i := range blocks {
		blocks[i].Image = images[i]
	}

	tempDir, err := os.MkdirTemp("", "storyclip-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	renderer := render.NewRenderer(render.Options{
		Width:          width,
		Height:         height,
		FPS:            fps,
		MinClipSeconds: render.DefaultOptions().MinClipSeconds,
	}, tempDir)

	logger.Infow("Rendering clips", "count", len(blocks))
	clips, err := renderer.RenderBlocks(
		ctx,
		blocks,
		filepath.Join(tempDir, "clips"),
	)
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if verbose {
		verifyClips(clips)
	}

	manifestData, err := buildManifest(blocks, summary)
	if err != nil {
		return fmt.Errorf("failed to build manifest: %w", err)
	}

	files := make([]archive.File, len(clips))
	for i, clip := range clips {
		files[i] = archive.File{
			Name:       filepath.Base(clip.Path),
			SourcePath: clip.Path,
		}
	}

	if err := archive.WriteZip(outputPath, files, manifestData); err != nil {
		return fmt.Errorf("failed to package clips: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Clips rendered successfully: %s\n", absOutput)
	fmt.Printf("  Blocks: %d\n", summary.BlockCount)
	fmt.Printf("  Duration: %.1fs\n", summary.TotalDurationSeconds)

	return nil
}

// verifyClips probes each rendered clip and logs containers whose
// duration drifts from the block's expected length.
func verifyClips(clips []render.Clip) {
	for _, clip := range clips {
		actual, err := render.ProbeDuration(clip.Path)
		if err != nil {
			logger.Debugw("Failed to probe clip",
				"block", clip.BlockID,
				"error", err,
			)
			continue
		}

		logger.Debugw("Verified clip",
			"block", clip.BlockID,
			"expected_seconds", clip.DurationSeconds,
			"actual_seconds", actual,
		)

		if math.Abs(actual-clip.DurationSeconds) > 0.5 {
			logger.Warnw("Clip duration differs from block duration",
				"block", clip.BlockID,
				"expected_seconds", clip.DurationSeconds,
				"actual_seconds", actual,
			)
		}
	}
}
