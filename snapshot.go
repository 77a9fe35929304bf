package cellscape

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// snapshotFont is the parsed label font for offscreen rendering.
var snapshotFont = mustParseFont()

func mustParseFont() *truetype.Font {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic("cellscape: parse embedded font: " + err.Error())
	}
	return f
}

// WriteSnapshot renders the plot offscreen with the given view transform
// and semantic unit and writes it as a timestamped PNG under dir. It uses
// the same data-space geometry as the live renderer, so a snapshot
// matches what was on screen without reading GPU pixels back.
func WriteSnapshot(dir, label string, ctx *PlotContext, vt ViewTransform, unit float64, width, height int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: mkdir %s: %w", dir, err)
	}

	img := renderSnapshot(ctx, vt, unit, width, height)

	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := encoder.Encode(f, img.Image()); err != nil {
		f.Close()
		return "", fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("snapshot: close %s: %w", path, err)
	}
	return path, nil
}

// renderSnapshot draws the frame, markers, and extent labels into a gg
// context. Tooltips and the debug overlay are live-interaction artifacts
// and are not part of the export.
func renderSnapshot(ctx *PlotContext, vt ViewTransform, unit float64, width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetColor(ColorWhite.NRGBA())
	dc.Clear()

	base := fitTransform(ctx.Domain(), float64(width), float64(height))
	m := multiplyAffine(vt.Matrix(), base)
	ppu := vt.Scale * base[0]
	d := ctx.Domain()

	// L-shaped border.
	lw := 0.5 * unit * ppu
	if lw < 1 {
		lw = 1
	}
	dc.SetColor(ColorBlack.NRGBA())
	dc.SetLineWidth(lw)
	bl := apply(m, d.MinX, d.MinY)
	tl := apply(m, d.MinX, d.MaxY)
	br := apply(m, d.MaxX, d.MinY)
	dc.DrawLine(tl.X, tl.Y, bl.X, bl.Y)
	dc.DrawLine(bl.X, bl.Y, br.X, br.Y)
	dc.Stroke()

	// Arrowheads.
	a := 3 * unit
	snapshotTriangle(dc, m, Vec2{d.MinX, d.MaxY + a}, Vec2{d.MinX - a/2, d.MaxY}, Vec2{d.MinX + a/2, d.MaxY})
	snapshotTriangle(dc, m, Vec2{d.MaxX + a, d.MinY}, Vec2{d.MaxX, d.MinY - a/2}, Vec2{d.MaxX, d.MinY + a/2})

	// Markers.
	ds := ctx.Dataset()
	for i := 0; i < ds.Len(); i++ {
		p, ok := ds.At(i)
		if !ok || p.Category == TotalCategory {
			continue
		}
		px, py := transformPoint(m, p.X, p.Y)
		r := unit * ppu
		if px+r < 0 || py+r < 0 || px-r > float64(width) || py-r > float64(height) {
			continue
		}
		dc.SetColor(ctx.ColorFor(p.Category).NRGBA())
		dc.DrawCircle(px, py, r)
		dc.Fill()
	}

	// Extent labels.
	fontPx := labelNominalSize * (unit / labelUnitDivisor) * ppu
	if fontPx < 1 {
		fontPx = 1
	}
	dc.SetFontFace(truetype.NewFace(snapshotFont, &truetype.Options{Size: fontPx}))
	dc.SetColor(ColorBlack.NRGBA())
	off := 2 * unit
	minXp := apply(m, d.MinX, d.MinY-off)
	maxXp := apply(m, d.MaxX, d.MinY-off)
	minYp := apply(m, d.MinX-off, d.MinY)
	maxYp := apply(m, d.MinX-off, d.MaxY)
	dc.DrawString(fmt.Sprintf("%.1f", d.MinX), minXp.X, minXp.Y)
	dc.DrawString(fmt.Sprintf("%.1f", d.MaxX), maxXp.X, maxXp.Y)
	dc.DrawString(fmt.Sprintf("%.1f", d.MinY), minYp.X, minYp.Y)
	dc.DrawString(fmt.Sprintf("%.1f", d.MaxY), maxYp.X, maxYp.Y)

	return dc
}

func snapshotTriangle(dc *gg.Context, m [6]float64, p0, p1, p2 Vec2) {
	a0 := apply(m, p0.X, p0.Y)
	a1 := apply(m, p1.X, p1.Y)
	a2 := apply(m, p2.X, p2.Y)
	dc.MoveTo(a0.X, a0.Y)
	dc.LineTo(a1.X, a1.Y)
	dc.LineTo(a2.X, a2.Y)
	dc.ClosePath()
	dc.Fill()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
