package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteZipRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	clipA := filepath.Join(tmpDir, "block-1.mp4")
	clipB := filepath.Join(tmpDir, "block-2.mp4")
	if err := os.WriteFile(clipA, []byte("clip one"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if err := os.WriteFile(clipB, []byte("clip two"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	zipPath := filepath.Join(tmpDir, "out", "clips.zip")
	files := []File{
		{Name: "block-1.mp4", SourcePath: clipA},
		{Name: "block-2.mp4", SourcePath: clipB},
	}
	manifest := []byte(`{"blocks":2}`)

	if err := WriteZip(zipPath, files, manifest); err != nil {
		t.Fatalf("WriteZip failed: %v", err)
	}

	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	defer reader.Close()

	contents := map[string]string{}
	for _, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read entry %s: %v", f.Name, err)
		}
		contents[f.Name] = string(data)
	}

	want := map[string]string{
		"block-1.mp4":   "clip one",
		"block-2.mp4":   "clip two",
		"manifest.json": `{"blocks":2}`,
	}
	for name, body := range want {
		if contents[name] != body {
			t.Errorf("entry %s: expected %q, got %q", name, body, contents[name])
		}
	}
	if len(contents) != len(want) {
		t.Errorf("expected %d entries, got %d", len(want), len(contents))
	}
}

func TestWriteZipWithoutManifest(t *testing.T) {
	tmpDir := t.TempDir()
	clip := filepath.Join(tmpDir, "block-1.mp4")
	if err := os.WriteFile(clip, []byte("clip"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	zipPath := filepath.Join(tmpDir, "clips.zip")
	err := WriteZip(zipPath, []File{{Name: "block-1.mp4", SourcePath: clip}}, nil)
	if err != nil {
		t.Fatalf("WriteZip failed: %v", err)
	}

	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	defer reader.Close()

	if len(reader.File) != 1 {
		t.Errorf("expected 1 entry, got %d", len(reader.File))
	}
}

func TestWriteZipMissingSource(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "clips.zip")
	files := []File{{Name: "gone.mp4", SourcePath: "/does/not/exist.mp4"}}

	if err := WriteZip(zipPath, files, nil); err == nil {
		t.Error("expected error for missing source file")
	}
}
