package cellscape

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// labelNominalSize is the extent label font size in semantic units before
// counter-scaling; labelUnitDivisor is the unit fraction labels scale by.
const (
	labelNominalSize = 16.0
	labelUnitDivisor = 4.0
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// PlotScene renders the scatter plot: one circle per point, the L-shaped
// domain frame with axis arrowheads and extent labels, and tooltips for
// hovered points. All geometry is expressed in data space and mapped
// through a single group matrix per frame; sizes come from the shared
// semantic unit, never from per-element screen math.
type PlotScene struct {
	ctx   *PlotContext
	vp    *Viewport
	scale SemanticScale
	unit  float64

	width  int
	height int
	base   [6]float64 // fit + y-flip, fixed per surface size

	// Background fills the surface before the frame and markers.
	Background Color

	tooltips map[string]bool
	hovered  int

	pointer pointerState
	pinch   pinchState
	keys    keyState

	runner *GestureRunner

	snapshotQueue []string
	// SnapshotDir is where PNG snapshots are written.
	SnapshotDir string

	// DebugOverlay enables the zoom/unit/FPS readout.
	DebugOverlay bool
}

// NewPlotScene builds the renderer for a fixed surface size and wires it
// to the viewport's scale updates so the semantic unit is recomputed on
// every accepted gesture.
func NewPlotScene(ctx *PlotContext, vp *Viewport, width, height int) *PlotScene {
	s := &PlotScene{
		ctx:         ctx,
		vp:          vp,
		scale:       NewSemanticScale(ctx.Domain(), vp.MaxZoom()),
		width:       width,
		height:      height,
		base:        fitTransform(ctx.Domain(), float64(width), float64(height)),
		Background:  ColorWhite,
		tooltips:    make(map[string]bool),
		hovered:     -1,
		SnapshotDir: "snapshots",
	}
	vp.OnScaleChange(func(k float64) {
		s.unit = s.scale.Unit(k)
	})
	return s
}

// Unit returns the current semantic unit.
func (s *PlotScene) Unit() float64 { return s.unit }

// Hovered returns the index of the hovered point, or -1.
func (s *PlotScene) Hovered() int { return s.hovered }

// groupMatrix is the full data-space to screen-space map for this frame:
// the view transform applied on top of the fitted, y-flipped base.
func (s *PlotScene) groupMatrix() [6]float64 {
	return multiplyAffine(s.vp.Transform().Matrix(), s.base)
}

// pixelsPerUnit is the screen length of one data-space unit.
func (s *PlotScene) pixelsPerUnit() float64 {
	return s.vp.Scale() * s.base[0]
}

// markerRadius is the data-space radius for a point: unit normally,
// doubled while the point is hovered.
func (s *PlotScene) markerRadius(id string) float64 {
	if s.tooltips[id] {
		return s.unit * 2
	}
	return s.unit
}

// Update advances one frame: scripted gestures first, then live input,
// then the reset animation and any queued snapshot writes.
func (s *PlotScene) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if s.runner != nil {
		s.runner.step(s)
	}
	s.processInput()
	s.vp.Update(dt)
	s.flushSnapshots()
	return nil
}

// setHovered moves the hover highlight from the current point to idx
// (-1 clears it), keeping the tooltip set in sync.
func (s *PlotScene) setHovered(idx int) {
	if idx == s.hovered {
		return
	}
	if s.hovered >= 0 {
		if p, ok := s.ctx.Dataset().At(s.hovered); ok {
			delete(s.tooltips, p.ID)
		}
	}
	s.hovered = idx
	if idx >= 0 {
		if p, ok := s.ctx.Dataset().At(idx); ok {
			s.tooltips[p.ID] = true
		}
	}
}

// hitTest returns the index of the topmost marker under the screen
// position (sx, sy), or -1. Later points draw on top, so iteration runs
// backwards. Hit radius matches the rendered radius, hover growth
// included, so a grown marker does not flicker at its edge.
func (s *PlotScene) hitTest(sx, sy float64) int {
	m := s.groupMatrix()
	ds := s.ctx.Dataset()
	ppu := s.pixelsPerUnit()
	for i := ds.Len() - 1; i >= 0; i-- {
		p, ok := ds.At(i)
		if !ok || p.Category == TotalCategory {
			continue
		}
		px, py := transformPoint(m, p.X, p.Y)
		r := s.markerRadius(p.ID) * ppu
		dx := sx - px
		dy := sy - py
		if dx*dx+dy*dy <= r*r {
			return i
		}
	}
	return -1
}

// Draw renders the frame: background, domain frame, markers, tooltips,
// and the optional debug overlay.
func (s *PlotScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.Background.NRGBA())
	m := s.groupMatrix()
	s.drawFrame(screen, m)
	s.drawMarkers(screen, m)
	s.drawTooltips(screen, m)
	if s.DebugOverlay {
		s.drawOverlay(screen)
	}
}

func (s *PlotScene) drawMarkers(screen *ebiten.Image, m [6]float64) {
	ds := s.ctx.Dataset()
	for i := 0; i < ds.Len(); i++ {
		s.drawMarkerAt(screen, m, i)
	}
}

// drawMarkerAt renders the circle for point i. Points in the Total
// aggregate get no marker; offscreen circles are culled before the draw
// call.
func (s *PlotScene) drawMarkerAt(screen *ebiten.Image, m [6]float64, i int) {
	p, ok := s.ctx.Dataset().At(i)
	if !ok || p.Category == TotalCategory {
		return
	}
	px, py := transformPoint(m, p.X, p.Y)
	r := s.markerRadius(p.ID) * s.pixelsPerUnit()
	if px+r < 0 || py+r < 0 || px-r > float64(s.width) || py-r > float64(s.height) {
		return
	}
	fill := s.ctx.ColorFor(p.Category)
	vector.DrawFilledCircle(screen, float32(px), float32(py), float32(r), fill.NRGBA(), true)
}

// drawTooltips renders the id and category of each tooltip'd point,
// offset by two units on the data-space x axis so the text clears the
// grown marker.
func (s *PlotScene) drawTooltips(screen *ebiten.Image, m [6]float64) {
	if len(s.tooltips) == 0 {
		return
	}
	ds := s.ctx.Dataset()
	for i := 0; i < ds.Len(); i++ {
		p, ok := ds.At(i)
		if !ok || !s.tooltips[p.ID] {
			continue
		}
		tx, ty := transformPoint(m, p.X+2*s.unit, p.Y)
		s.drawLabel(screen, tooltipText(p), tx, ty)
	}
}

// tooltipText is the hover text: the point id, then its category on the
// next line.
func tooltipText(p Point) string {
	return p.ID + "\n" + p.Category
}

// labelSizePx is the on-screen font size for labels: the nominal size
// counter-scaled by unit/4 so labels track the semantic zoom, floored at
// one pixel to keep the text engine happy.
func (s *PlotScene) labelSizePx() float64 {
	px := labelNominalSize * (s.unit / labelUnitDivisor) * s.pixelsPerUnit()
	if px < 1 {
		px = 1
	}
	return px
}

// drawLabel draws upright text at a screen position. Labels are placed by
// transforming their data-space anchor and drawing in screen space, which
// is the double negation that undoes the plot-wide y flip.
func (s *PlotScene) drawLabel(screen *ebiten.Image, str string, sx, sy float64) {
	px := s.labelSizePx()
	op := &text.DrawOptions{}
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(ColorBlack.NRGBA())
	op.LineSpacing = px * 1.2
	text.Draw(screen, str, labelFace(px), op)
}

// drawFrame renders the L-shaped domain border on the left and bottom
// edges, the two outward axis arrowheads, and the four extent labels.
func (s *PlotScene) drawFrame(screen *ebiten.Image, m [6]float64) {
	d := s.ctx.Domain()
	ppu := s.pixelsPerUnit()

	lw := float32(0.5 * s.unit * ppu)
	if lw < 1 {
		lw = 1
	}
	stroke := ColorBlack.NRGBA()

	bl := apply(m, d.MinX, d.MinY)
	tl := apply(m, d.MinX, d.MaxY)
	br := apply(m, d.MaxX, d.MinY)
	vector.StrokeLine(screen, float32(tl.X), float32(tl.Y), float32(bl.X), float32(bl.Y), lw, stroke, true)
	vector.StrokeLine(screen, float32(bl.X), float32(bl.Y), float32(br.X), float32(br.Y), lw, stroke, true)

	// Arrowheads point outward past the axis ends, sized in data space so
	// they shrink and freeze with everything else.
	a := 3 * s.unit
	s.fillTriangle(screen, m,
		Vec2{d.MinX, d.MaxY + a}, Vec2{d.MinX - a/2, d.MaxY}, Vec2{d.MinX + a/2, d.MaxY},
		ColorBlack)
	s.fillTriangle(screen, m,
		Vec2{d.MaxX + a, d.MinY}, Vec2{d.MaxX, d.MinY - a/2}, Vec2{d.MaxX, d.MinY + a/2},
		ColorBlack)

	// Extent labels sit just outside the border, offset by two units.
	off := 2 * s.unit
	minXp := apply(m, d.MinX, d.MinY-off)
	maxXp := apply(m, d.MaxX, d.MinY-off)
	minYp := apply(m, d.MinX-off, d.MinY)
	maxYp := apply(m, d.MinX-off, d.MaxY)
	s.drawLabel(screen, fmt.Sprintf("%.1f", d.MinX), minXp.X, minXp.Y)
	s.drawLabel(screen, fmt.Sprintf("%.1f", d.MaxX), maxXp.X, maxXp.Y)
	s.drawLabel(screen, fmt.Sprintf("%.1f", d.MinY), minYp.X, minYp.Y)
	s.drawLabel(screen, fmt.Sprintf("%.1f", d.MaxY), maxYp.X, maxYp.Y)
}

// fillTriangle draws a solid triangle given in data space.
func (s *PlotScene) fillTriangle(screen *ebiten.Image, m [6]float64, p0, p1, p2 Vec2, c Color) {
	a0 := apply(m, p0.X, p0.Y)
	a1 := apply(m, p1.X, p1.Y)
	a2 := apply(m, p2.X, p2.Y)
	cr := float32(c.R * c.A)
	cg := float32(c.G * c.A)
	cb := float32(c.B * c.A)
	ca := float32(c.A)
	vs := []ebiten.Vertex{
		{DstX: float32(a0.X), DstY: float32(a0.Y), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: float32(a1.X), DstY: float32(a1.Y), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: float32(a2.X), DstY: float32(a2.Y), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	is := []uint16{0, 1, 2}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}

func apply(m [6]float64, x, y float64) Vec2 {
	px, py := transformPoint(m, x, y)
	return Vec2{px, py}
}

// Snapshot queues a PNG export of the current view, written at the end of
// the frame's Update.
func (s *PlotScene) Snapshot(label string) {
	s.snapshotQueue = append(s.snapshotQueue, label)
}

func (s *PlotScene) flushSnapshots() {
	if len(s.snapshotQueue) == 0 {
		return
	}
	for _, label := range s.snapshotQueue {
		path, err := WriteSnapshot(s.SnapshotDir, label, s.ctx, s.vp.Transform(), s.unit, s.width, s.height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[cellscape] snapshot %q: %v\n", label, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "[cellscape] snapshot written: %s\n", path)
	}
	s.snapshotQueue = s.snapshotQueue[:0]
}
