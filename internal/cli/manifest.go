package cli

import (
	"encoding/json"

	"github.com/maheshrk/storyclip/internal/block"
)

// manifestBlock is the serialized view of one block.
type manifestBlock struct {
	ID              string  `json:"id"`
	StartSeconds    float64 `json:"start_seconds"`
	EndSeconds      float64 `json:"end_seconds"`
	DurationSeconds float64 `json:"duration_seconds"`
	EntryCount      int     `json:"entry_count"`
	Text            string  `json:"text"`
}

// manifest describes a full segmentation run.
type manifest struct {
	Summary block.Summary   `json:"summary"`
	Blocks  []manifestBlock `json:"blocks"`
}

func buildManifest(blocks []block.Block, summary block.Summary) ([]byte, error) {
	m := manifest{
		Summary: summary,
		Blocks:  make([]manifestBlock, len(blocks)),
	}

	for i, b := range blocks {
		m.Blocks[i] = manifestBlock{
			ID:              b.ID,
			StartSeconds:    b.Entries[0].Start,
			EndSeconds:      b.Entries[len(b.Entries)-1].End,
			DurationSeconds: b.DurationSeconds,
			EntryCount:      len(b.Entries),
			Text:            b.CombinedText,
		}
	}

	return json.MarshalIndent(m, "", "  ")
}
