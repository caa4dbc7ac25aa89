package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File is one entry to be packaged, copied from SourcePath into the
// archive under Name.
type File struct {
	Name       string
	SourcePath string
}

// WriteZip packages the given files plus an optional manifest.json
// into a single zip artifact at path.
func WriteZip(path string, files []File, manifest []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}

	zw := zip.NewWriter(out)

	if err := writeEntries(zw, files, manifest); err != nil {
		_ = zw.Close()
		_ = out.Close()
		return err
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to finalize archive: %w", err)
	}

	return out.Close()
}

func writeEntries(zw *zip.Writer, files []File, manifest []byte) error {
	for _, file := range files {
		if err := addFile(zw, file); err != nil {
			return err
		}
	}

	if len(manifest) > 0 {
		entry, err := zw.Create("manifest.json")
		if err != nil {
			return fmt.Errorf("failed to add manifest: %w", err)
		}
		if _, err := entry.Write(manifest); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
	}

	return nil
}

func addFile(zw *zip.Writer, file File) error {
	src, err := os.Open(file.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file.SourcePath, err)
	}
	defer func() { _ = src.Close() }()

	entry, err := zw.Create(file.Name)
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", file.Name, err)
	}

	if _, err := io.Copy(entry, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", file.Name, err)
	}

	return nil
}
