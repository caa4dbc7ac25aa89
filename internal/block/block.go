package block

import (
	"strings"

	"github.com/maheshrk/storyclip/internal/imagegen"
	"github.com/maheshrk/storyclip/internal/subtitle"
)

// Block is a contiguous, non-empty run of subtitle entries grouped for
// single-image assignment.
type Block struct {
	// ID is "block-<n>" with a 1-based position within the
	// segmentation run.
	ID string

	// Entries are the member cues, in original order. Read-only after
	// creation.
	Entries []subtitle.Entry

	// CombinedText is the newline-joined concatenation of the member
	// texts.
	CombinedText string

	// DurationSeconds is last.End - first.Start. Negative when the
	// source timestamps are inverted; not corrected.
	DurationSeconds float64

	// Image is assigned later by the orchestration layer. The core
	// never reads it.
	Image *imagegen.Image
}

// newBlock builds a block from a slice of the entry sequence.
func newBlock(id string, entries []subtitle.Entry) Block {
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}

	return Block{
		ID:              id,
		Entries:         entries,
		CombinedText:    strings.Join(texts, "\n"),
		DurationSeconds: entries[len(entries)-1].End - entries[0].Start,
	}
}
