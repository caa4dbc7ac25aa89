package ffmpeg

import "testing"

func TestAssetForPlatform(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
		wantErr      bool
	}{
		{"linux", "amd64", "ffmpeg-6.1-linux-64.zip", false},
		{"linux", "arm64", "ffmpeg-6.1-linux-arm-64.zip", false},
		{"darwin", "amd64", "ffmpeg-6.1-macos-64.zip", false},
		{"darwin", "arm64", "ffmpeg-6.1-macos-64.zip", false},
		{"windows", "amd64", "ffmpeg-6.1-win-64.zip", false},
		{"plan9", "386", "", true},
	}

	for _, tt := range tests {
		got, err := assetForPlatform(tt.goos, tt.goarch)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s/%s: expected error", tt.goos, tt.goarch)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s/%s: unexpected error: %v", tt.goos, tt.goarch, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s/%s: expected %q, got %q", tt.goos, tt.goarch, tt.want, got)
		}
	}
}

func TestFileExists(t *testing.T) {
	if fileExists(t.TempDir()) {
		t.Error("directories should not count as binaries")
	}
	if fileExists("/does/not/exist") {
		t.Error("missing paths should not count as binaries")
	}
}
