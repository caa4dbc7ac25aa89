package render

import (
	"context"
	"testing"

	"github.com/maheshrk/storyclip/internal/block"
)

func TestClipDurationFloorsShortBlocks(t *testing.T) {
	r := NewRenderer(DefaultOptions(), t.TempDir())

	tests := []struct {
		name     string
		duration float64
		want     float64
	}{
		{"normal", 12.5, 12.5},
		{"short", 0.2, 1.0},
		{"zero", 0, 1.0},
		{"negative", -7, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := block.Block{ID: "block-1", DurationSeconds: tt.duration}
			if got := r.ClipDuration(b); got != tt.want {
				t.Errorf(
					"ClipDuration(%v) = %v, want %v",
					tt.duration, got, tt.want,
				)
			}
		})
	}
}

func TestRenderBlockRequiresImage(t *testing.T) {
	r := NewRenderer(DefaultOptions(), t.TempDir())
	b := block.Block{ID: "block-1", DurationSeconds: 3}

	err := r.RenderBlock(context.Background(), b, t.TempDir()+"/out.mp4")
	if err == nil {
		t.Error("expected error for block without an image")
	}
}

func TestExtensionForMIME(t *testing.T) {
	tests := []struct {
		mimeType string
		want     string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/webp", ".webp"},
		{"image/gif", ".gif"},
		{"", ".png"},
		{"application/octet-stream", ".png"},
	}

	for _, tt := range tests {
		if got := extensionForMIME(tt.mimeType); got != tt.want {
			t.Errorf(
				"extensionForMIME(%q) = %q, want %q",
				tt.mimeType, got, tt.want,
			)
		}
	}
}

func TestProbeDurationMissingFile(t *testing.T) {
	if _, err := ProbeDuration("/does/not/exist.mp4"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Width != 1280 || opts.Height != 720 {
		t.Errorf("unexpected default frame: %dx%d", opts.Width, opts.Height)
	}
	if opts.FPS != 30 {
		t.Errorf("unexpected default fps: %d", opts.FPS)
	}
	if opts.MinClipSeconds != 1.0 {
		t.Errorf("unexpected default clip floor: %v", opts.MinClipSeconds)
	}
}
