package block

import (
	"math"
	"strings"

	"github.com/maheshrk/storyclip/internal/subtitle"
)

// Summary holds derived statistics over a parsed entry sequence and
// its segmentation. Recomputed in full on every run.
type Summary struct {
	TotalSubtitles       int     `json:"total_subtitles"`
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
	TotalWords           int     `json:"total_words"`
	AverageWPM           int     `json:"average_wpm"`
	BlockCount           int     `json:"block_count"`
}

// Analyze computes a summary over entries and blocks. Pure; zero-entry
// input yields an all-zero summary.
//
// Total duration is the end time of the last entry in file order, not
// a maximum across entries. A file whose final cue is not
// chronologically last will understate the duration.
func Analyze(entries []subtitle.Entry, blocks []Block) Summary {
	summary := Summary{
		TotalSubtitles: len(entries),
		BlockCount:     len(blocks),
	}

	if len(entries) == 0 {
		return summary
	}

	summary.TotalDurationSeconds = entries[len(entries)-1].End

	for _, entry := range entries {
		summary.TotalWords += len(strings.Fields(entry.Text))
	}

	if summary.TotalDurationSeconds > 0 {
		summary.AverageWPM = int(math.Round(
			float64(summary.TotalWords) / summary.TotalDurationSeconds * 60,
		))
	}

	return summary
}
