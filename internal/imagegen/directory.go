package imagegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// DirectorySource serves images from a local folder, assigned in
// sorted filename order. The prompt is ignored; this is the manual
// counterpart of the generated providers.
type DirectorySource struct {
	paths []string

	mu   sync.Mutex
	next int
}

var imageExtMIME = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
}

func NewDirectorySource(dir string) (*DirectorySource, error) {
	if dir == "" {
		return nil, fmt.Errorf("image directory is required")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := imageExtMIME[ext]; ok {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no image files found in %s", dir)
	}

	sort.Strings(paths)

	return &DirectorySource{paths: paths}, nil
}

// Count reports how many images the source can serve.
func (s *DirectorySource) Count() int {
	return len(s.paths)
}

// GenerateIndex returns the image at the given position in sorted
// filename order. Position-addressed, so concurrent batch workers
// always pair block N with the N-th image.
func (s *DirectorySource) GenerateIndex(
	ctx context.Context,
	index int,
	prompt string,
) (*Image, error) {
	if index < 0 || index >= len(s.paths) {
		return nil, fmt.Errorf(
			"image directory exhausted: only %d images available",
			len(s.paths),
		)
	}
	return s.readImage(s.paths[index])
}

// Generate returns the next unused image in sorted order. Safe for
// concurrent use, but hand-out order then depends on scheduling; batch
// callers go through GenerateIndex instead.
func (s *DirectorySource) Generate(
	ctx context.Context,
	prompt string,
) (*Image, error) {
	s.mu.Lock()
	if s.next >= len(s.paths) {
		s.mu.Unlock()
		return nil, fmt.Errorf(
			"image directory exhausted: only %d images available",
			len(s.paths),
		)
	}
	path := s.paths[s.next]
	s.next++
	s.mu.Unlock()

	return s.readImage(path)
}

func (s *DirectorySource) readImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}

	return &Image{
		Data:     data,
		MIMEType: imageExtMIME[strings.ToLower(filepath.Ext(path))],
	}, nil
}
