package cli

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/maheshrk/storyclip/internal/block"
	"github.com/maheshrk/storyclip/internal/subtitle"
)

func TestBuildManifest(t *testing.T) {
	entries := []subtitle.Entry{
		{Index: 1, Start: 0, End: 2, Text: "Hi"},
		{Index: 2, Start: 2, End: 5, Text: "there friend"},
	}
	blocks := block.NewSegmenterWithSource(2, 4, rand.NewSource(1)).
		Segment(entries)
	summary := block.Analyze(entries, blocks)

	data, err := buildManifest(blocks, summary)
	if err != nil {
		t.Fatalf("buildManifest failed: %v", err)
	}

	var decoded manifest
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}

	if decoded.Summary.TotalSubtitles != 2 {
		t.Errorf(
			"expected 2 subtitles in summary, got %d",
			decoded.Summary.TotalSubtitles,
		)
	}
	if len(decoded.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(decoded.Blocks))
	}

	b := decoded.Blocks[0]
	if b.ID != "block-1" {
		t.Errorf("expected ID block-1, got %q", b.ID)
	}
	if b.StartSeconds != 0 || b.EndSeconds != 5 {
		t.Errorf("expected range [0,5], got [%v,%v]", b.StartSeconds, b.EndSeconds)
	}
	if b.DurationSeconds != 5 {
		t.Errorf("expected duration 5, got %v", b.DurationSeconds)
	}
	if b.EntryCount != 2 {
		t.Errorf("expected 2 entries, got %d", b.EntryCount)
	}
	if b.Text != "Hi\nthere friend" {
		t.Errorf("expected combined text, got %q", b.Text)
	}
}
