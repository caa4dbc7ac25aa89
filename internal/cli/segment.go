package cli

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/maheshrk/storyclip/internal/block"
	"github.com/maheshrk/storyclip/internal/subtitle"
	"github.com/spf13/cobra"
)

var segmentCmd = &cobra.Command{
	Use:   "segment [subtitle_file]",
	Short: "Group subtitle entries into blocks",
	Long: `Parse a subtitle file and group its entries into contiguous blocks
of varying size, one block per future clip.

Block sizes are drawn at random between --min-block and --max-block.
The final block absorbs any remainder that would fall below the
minimum, so it can exceed the maximum. Pass --seed for a reproducible
grouping.

Examples:
  storyclip segment episode.srt
  storyclip segment episode.srt --min-block 4 --max-block 10
  storyclip segment episode.srt --seed 42 --manifest blocks.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)

	segmentCmd.Flags().
		Int("min-block", 3, "Minimum subtitles per block (clamped to >= 1)")
	segmentCmd.Flags().
		Int("max-block", 8, "Maximum subtitles per block (clamped to >= min)")
	segmentCmd.Flags().
		Int64("seed", 0, "Random seed for reproducible segmentation (0 = system random)")
	segmentCmd.Flags().
		String("manifest", "", "Write a JSON block manifest to this path")
}

// newSegmenter builds a segmenter from clamped flag values, seeded
// when requested.
func newSegmenter(minSize, maxSize int, seed int64) *block.Segmenter {
	minSize, maxSize = clampBlockSizes(minSize, maxSize)
	if seed != 0 {
		return block.NewSegmenterWithSource(
			minSize,
			maxSize,
			rand.NewSource(seed),
		)
	}
	return block.NewSegmenter(minSize, maxSize)
}

func runSegment(cmd *cobra.Command, args []string) error {
	minSize, _ := cmd.Flags().GetInt("min-block")
	maxSize, _ := cmd.Flags().GetInt("max-block")
	seed, _ := cmd.Flags().GetInt64("seed")
	manifestPath, _ := cmd.Flags().GetString("manifest")

	entries, err := subtitle.Open(args[0])
	if err != nil {
		return err
	}

	segmenter := newSegmenter(minSize, maxSize, seed)
	blocks := segmenter.Segment(entries)
	summary := block.Analyze(entries, blocks)

	logger.Infow("Segmented subtitle file",
		"input", args[0],
		"entries", summary.TotalSubtitles,
		"blocks", summary.BlockCount,
		"min_block", segmenter.MinSize,
		"max_block", segmenter.MaxSize,
	)

	for _, b := range blocks {
		fmt.Printf(
			"%s: %d entries, %.1fs - %.1fs (%.1fs)\n",
			b.ID,
			len(b.Entries),
			b.Entries[0].Start,
			b.Entries[len(b.Entries)-1].End,
			b.DurationSeconds,
		)
	}

	fmt.Printf(
		"\n%d blocks over %d subtitles, %.1fs total, %d words (%d wpm)\n",
		summary.BlockCount,
		summary.TotalSubtitles,
		summary.TotalDurationSeconds,
		summary.TotalWords,
		summary.AverageWPM,
	)

	if manifestPath != "" {
		data, err := buildManifest(blocks, summary)
		if err != nil {
			return fmt.Errorf("failed to build manifest: %w", err)
		}
		if err := os.WriteFile(manifestPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
		fmt.Printf("Manifest written to %s\n", manifestPath)
	}

	return nil
}
