package cellscape

import (
	"image/png"
	"os"
	"strings"
	"testing"
)

func TestWriteSnapshot(t *testing.T) {
	ds := sampleDataset()
	ds.fillAggregates()
	ctx, err := NewPlotContext(ds)
	if err != nil {
		t.Fatalf("NewPlotContext: %v", err)
	}

	dir := t.TempDir()
	vt := ViewTransform{Scale: DefaultOverviewScale}
	path, err := WriteSnapshot(dir, "overview zoom!", ctx, vt, 0.5, 320, 240)
	if err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
	if !strings.Contains(path, "overview_zoom_") {
		t.Errorf("path %q does not contain sanitized label", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("snapshot size = %dx%d, want 320x240", b.Dx(), b.Dy())
	}
}

func TestWriteSnapshotZoomedIn(t *testing.T) {
	ds := sampleDataset()
	ds.fillAggregates()
	ctx, err := NewPlotContext(ds)
	if err != nil {
		t.Fatalf("NewPlotContext: %v", err)
	}

	// A transform deep past the cap still renders without error even
	// though most markers land offscreen.
	vt := ViewTransform{TranslateX: -5000, TranslateY: 4000, Scale: 100}
	if _, err := WriteSnapshot(t.TempDir(), "detail", ctx, vt, 0.4/75, 320, 240); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}
}

func TestSanitizeLabel(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"has space", "has_space"},
		{"slash/colon:", "slash_colon_"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
		{"v1.2-ok", "v1.2-ok"},
	}
	for _, c := range cases {
		if got := sanitizeLabel(c.in); got != c.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
