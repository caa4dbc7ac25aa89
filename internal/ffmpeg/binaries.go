package ffmpeg

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	releaseVersion = "6.1"
	releaseBaseURL = "https://github.com/ffbinaries/ffbinaries-prebuilt/releases/download"
)

// BinaryPaths holds resolved ffmpeg and ffprobe locations.
type BinaryPaths struct {
	FFmpeg  string
	FFprobe string
}

var (
	resolveOnce  sync.Once
	resolveErr   error
	resolvedPath BinaryPaths
)

// Ensure resolves ffmpeg and ffprobe once per process. Resolution
// order: STORYCLIP_FFMPEG_PATH/STORYCLIP_FFPROBE_PATH env overrides,
// binaries on PATH, a previously cached download, then a fresh
// download of the ffbinaries release for this platform.
func Ensure() (BinaryPaths, error) {
	resolveOnce.Do(func() {
		resolvedPath, resolveErr = resolve()
	})
	return resolvedPath, resolveErr
}

func FFmpegPath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFmpeg, nil
}

func FFprobePath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFprobe, nil
}

func resolve() (BinaryPaths, error) {
	ffmpegPath := os.Getenv("STORYCLIP_FFMPEG_PATH")
	ffprobePath := os.Getenv("STORYCLIP_FFPROBE_PATH")

	if ffmpegPath == "" {
		if found, err := exec.LookPath("ffmpeg"); err == nil {
			ffmpegPath = found
		}
	}
	if ffprobePath == "" {
		if found, err := exec.LookPath("ffprobe"); err == nil {
			ffprobePath = found
		}
	}
	if ffmpegPath != "" && ffprobePath != "" {
		return BinaryPaths{FFmpeg: ffmpegPath, FFprobe: ffprobePath}, nil
	}

	installDir, err := cacheDir()
	if err != nil {
		return BinaryPaths{}, err
	}

	suffix := ""
	if runtime.GOOS == "windows" {
		suffix = ".exe"
	}
	cached := BinaryPaths{
		FFmpeg:  filepath.Join(installDir, "ffmpeg"+suffix),
		FFprobe: filepath.Join(installDir, "ffprobe"+suffix),
	}
	if fileExists(cached.FFmpeg) && fileExists(cached.FFprobe) {
		return cached, nil
	}

	asset, err := assetForPlatform(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return BinaryPaths{}, err
	}

	if err := os.MkdirAll(installDir, 0o755); err != nil {
		return BinaryPaths{}, fmt.Errorf("create ffmpeg cache dir: %w", err)
	}
	if err := download(asset, installDir); err != nil {
		return BinaryPaths{}, err
	}

	if !fileExists(cached.FFmpeg) || !fileExists(cached.FFprobe) {
		return BinaryPaths{}, errors.New("ffmpeg binaries not found after extraction")
	}
	if runtime.GOOS != "windows" {
		if err := os.Chmod(cached.FFmpeg, 0o755); err != nil {
			return BinaryPaths{}, fmt.Errorf("chmod ffmpeg: %w", err)
		}
		if err := os.Chmod(cached.FFprobe, 0o755); err != nil {
			return BinaryPaths{}, fmt.Errorf("chmod ffprobe: %w", err)
		}
	}

	return cached, nil
}

func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(
		base,
		"storyclip",
		"ffmpeg",
		releaseVersion,
		runtime.GOOS,
		runtime.GOARCH,
	), nil
}

func assetForPlatform(goos, goarch string) (string, error) {
	switch {
	case goos == "linux" && goarch == "amd64":
		return "ffmpeg-" + releaseVersion + "-linux-64.zip", nil
	case goos == "linux" && goarch == "arm64":
		return "ffmpeg-" + releaseVersion + "-linux-arm-64.zip", nil
	case goos == "darwin" && goarch == "amd64", goos == "darwin" && goarch == "arm64":
		return "ffmpeg-" + releaseVersion + "-macos-64.zip", nil
	case goos == "windows" && goarch == "amd64":
		return "ffmpeg-" + releaseVersion + "-win-64.zip", nil
	default:
		return "", fmt.Errorf("unsupported platform for bundled ffmpeg: %s/%s", goos, goarch)
	}
}

func download(asset, installDir string) error {
	url := fmt.Sprintf("%s/v%s/%s", releaseBaseURL, releaseVersion, asset)
	client := &http.Client{Timeout: 5 * time.Minute}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("download ffmpeg bundle: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download ffmpeg bundle: unexpected status %s", resp.Status)
	}

	tmpFile, err := os.CreateTemp("", "storyclip-ffmpeg-*.zip")
	if err != nil {
		return fmt.Errorf("create temp archive: %w", err)
	}
	archivePath := tmpFile.Name()
	defer func() { _ = os.Remove(archivePath) }()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write archive: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	if err := extract(archivePath, installDir); err != nil {
		return fmt.Errorf("extract %s: %w", asset, err)
	}
	return nil
}

func extract(archivePath, installDir string) error {
	zipReader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open ffmpeg archive: %w", err)
	}
	defer func() { _ = zipReader.Close() }()

	suffix := ""
	if runtime.GOOS == "windows" {
		suffix = ".exe"
	}

	found := 0
	for _, file := range zipReader.File {
		name := strings.ToLower(filepath.Base(file.Name))
		var dest string
		switch name {
		case "ffmpeg", "ffmpeg.exe":
			dest = filepath.Join(installDir, "ffmpeg"+suffix)
		case "ffprobe", "ffprobe.exe":
			dest = filepath.Join(installDir, "ffprobe"+suffix)
		default:
			continue
		}
		if err := extractFile(file, dest); err != nil {
			return err
		}
		found++
	}

	if found < 2 {
		return errors.New("ffmpeg archive missing required binaries")
	}
	return nil
}

func extractFile(file *zip.File, dest string) error {
	reader, err := file.Open()
	if err != nil {
		return fmt.Errorf("open ffmpeg archive entry: %w", err)
	}
	defer func() { _ = reader.Close() }()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create ffmpeg binary: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, reader); err != nil {
		return fmt.Errorf("write ffmpeg binary: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}
