package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Open reads and parses a subtitle file.
//
// A parse that yields zero entries is treated as a fatal condition:
// the individual-cue leniency of Parse means an empty result can only
// come from a file that is not subtitle data at all.
func Open(path string) ([]Entry, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".srt" {
		return nil, fmt.Errorf("unsupported subtitle format: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}

	entries := Parse(string(data))
	if len(entries) == 0 {
		return nil, fmt.Errorf("no subtitle entries found in %s: file is empty or not valid SRT", path)
	}

	return entries, nil
}
