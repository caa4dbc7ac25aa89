package subtitle

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenValidFile(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:05,000 --> 00:00:08,000
Second cue.
`
	tmpDir := t.TempDir()
	srtPath := filepath.Join(tmpDir, "test.srt")
	if err := os.WriteFile(srtPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	entries, err := Open(srtPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestOpenRejectsEmptyParse(t *testing.T) {
	tmpDir := t.TempDir()
	srtPath := filepath.Join(tmpDir, "broken.srt")
	if err := os.WriteFile(srtPath, []byte("this is not srt data"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := Open(srtPath); err == nil {
		t.Error("expected error for a file with no parseable cues")
	}
}

func TestOpenRejectsUnsupportedExtension(t *testing.T) {
	if _, err := Open("subtitles.vtt"); err == nil {
		t.Error("expected error for non-srt extension")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.srt")); err == nil {
		t.Error("expected error for missing file")
	}
}
