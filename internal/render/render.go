package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/maheshrk/storyclip/internal/block"
	ffmpegbin "github.com/maheshrk/storyclip/internal/ffmpeg"
)

// Clip is one rendered output file.
type Clip struct {
	BlockID         string
	Path            string
	DurationSeconds float64
}

// Options holds clip rendering settings.
type Options struct {
	Width  int
	Height int
	FPS    int
	// MinClipSeconds floors the rendered duration of blocks whose
	// recorded duration is shorter (or negative, when the source
	// timestamps were inverted). The block itself is not modified.
	MinClipSeconds float64
}

// DefaultOptions returns sensible defaults for short clips.
func DefaultOptions() Options {
	return Options{
		Width:          1280,
		Height:         720,
		FPS:            30,
		MinClipSeconds: 1.0,
	}
}

// Renderer turns imaged blocks into video clips using ffmpeg.
type Renderer struct {
	opts    Options
	tempDir string
}

func NewRenderer(opts Options, tempDir string) *Renderer {
	return &Renderer{
		opts:    opts,
		tempDir: tempDir,
	}
}

// ClipDuration returns the duration a block will be rendered at.
func (r *Renderer) ClipDuration(b block.Block) float64 {
	if b.DurationSeconds < r.opts.MinClipSeconds {
		return r.opts.MinClipSeconds
	}
	return b.DurationSeconds
}

// RenderBlock renders one block to outputPath. The block must have an
// image assigned.
func (r *Renderer) RenderBlock(
	ctx context.Context,
	b block.Block,
	outputPath string,
) error {
	if b.Image == nil {
		return fmt.Errorf("block %s has no image assigned", b.ID)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	imagePath := filepath.Join(
		r.tempDir,
		b.ID+extensionForMIME(b.Image.MIMEType),
	)
	if err := os.WriteFile(imagePath, b.Image.Data, 0644); err != nil {
		return fmt.Errorf("failed to write image for %s: %w", b.ID, err)
	}
	defer os.Remove(imagePath)

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	duration := r.ClipDuration(b)

	// Fit the still into the target frame, pad to center, and force an
	// even-dimension yuv420p output for player compatibility.
	filter := fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2",
		r.opts.Width, r.opts.Height, r.opts.Width, r.opts.Height,
	)

	err = ffmpeg.Input(imagePath, ffmpeg.KwArgs{"loop": 1}).
		Output(outputPath, ffmpeg.KwArgs{
			"t":       fmt.Sprintf("%.3f", duration),
			"vf":      filter,
			"r":       r.opts.FPS,
			"c:v":     "libx264",
			"pix_fmt": "yuv420p",
			"y":       "",
		}).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()

	if err != nil {
		return fmt.Errorf("ffmpeg render failed for %s: %w", b.ID, err)
	}

	return nil
}

// RenderBlocks renders every block into outputDir, one mp4 per block,
// named after the block ID.
func (r *Renderer) RenderBlocks(
	ctx context.Context,
	blocks []block.Block,
	outputDir string,
) ([]Clip, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create clip directory: %w", err)
	}

	clips := make([]Clip, 0, len(blocks))
	for _, b := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		outputPath := filepath.Join(outputDir, b.ID+".mp4")
		if err := r.RenderBlock(ctx, b, outputPath); err != nil {
			return nil, err
		}

		clips = append(clips, Clip{
			BlockID:         b.ID,
			Path:            outputPath,
			DurationSeconds: r.ClipDuration(b),
		})
	}

	return clips, nil
}

func extensionForMIME(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
