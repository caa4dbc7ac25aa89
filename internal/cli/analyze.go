package cli

import (
	"fmt"

	"github.com/maheshrk/storyclip/internal/block"
	"github.com/maheshrk/storyclip/internal/subtitle"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [subtitle_file]",
	Short: "Print summary statistics for a subtitle file",
	Long: `Parse a subtitle file and print entry count, total duration, word
count, and average words per minute.

Examples:
  storyclip analyze episode.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	entries, err := subtitle.Open(args[0])
	if err != nil {
		return err
	}

	summary := block.Analyze(entries, nil)

	fmt.Printf("Subtitles: %d\n", summary.TotalSubtitles)
	fmt.Printf("Duration:  %.1fs\n", summary.TotalDurationSeconds)
	fmt.Printf("Words:     %d\n", summary.TotalWords)
	fmt.Printf("Avg WPM:   %d\n", summary.AverageWPM)

	return nil
}
