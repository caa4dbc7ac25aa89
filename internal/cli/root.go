package cli

import (
	"github.com/maheshrk/storyclip/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "storyclip",
	Short: "Turn subtitle files into image-backed video clips",
	Long: `Storyclip converts a subtitle file into a batch of short video clips.

The subtitles are grouped into contiguous blocks of varying size, each
block is paired with one still image (AI-generated or taken from a
folder), and each block is rendered as a clip spanning its subtitles'
time range.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
