package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	ffmpegbin "github.com/maheshrk/storyclip/internal/ffmpeg"
)

// JSON output from ffprobe
type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration reads the container duration of a rendered clip in
// seconds.
func ProbeDuration(path string) (float64, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, fmt.Errorf("file not found: %s", path)
	}

	ffprobePath, err := ffmpegbin.FFprobePath()
	if err != nil {
		return 0, err
	}

	cmd := exec.Command(ffprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe ffprobeOutput
	if err := json.Unmarshal(out.Bytes(), &probe); err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	var seconds float64
	if _, err := fmt.Sscanf(probe.Format.Duration, "%f", &seconds); err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}

	return seconds, nil
}
