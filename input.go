package cellscape

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
	wheelZoomBase       = 1.1 // zoom factor per wheel notch
)

// pointerState is the per-frame mouse state machine: press, drag past the
// dead zone, release. While no button is down it drives hover hit tests.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
}

// pinchState tracks an active two-touch gesture.
type pinchState struct {
	active   bool
	prevDist float64
	prevMidX float64
	prevMidY float64
}

// keyState holds previous-frame key flags for edge detection.
type keyState struct {
	reset    bool
	snapshot bool
}

// processInput polls ebiten once per frame and converts raw device state
// into viewport gestures: wheel to anchored zoom, left drag to pan, two
// touches to pinch, plain cursor movement to hover. Touch input owns the
// viewport while a pinch is active.
func (s *PlotScene) processInput() {
	if s.processTouch() {
		s.setHovered(-1)
		return
	}
	s.processWheel()
	s.processMouse()
	s.processKeys()
}

func (s *PlotScene) processWheel() {
	_, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	factor := math.Pow(wheelZoomBase, wy)
	s.vp.ZoomAt(float64(mx), float64(my), factor)
}

func (s *PlotScene) processMouse() {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	ps := &s.pointer

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = sx, sy
		ps.lastX, ps.lastY = sx, sy
		ps.dragging = false
	case !pressed && ps.down:
		ps.down = false
		ps.dragging = false
	case pressed && ps.down:
		if sx != ps.lastX || sy != ps.lastY {
			if !ps.dragging {
				dx := sx - ps.startX
				dy := sy - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > defaultDragDeadZone {
					ps.dragging = true
				}
			}
			if ps.dragging {
				s.vp.PanBy(sx-ps.lastX, sy-ps.lastY)
			}
			ps.lastX, ps.lastY = sx, sy
		}
	default:
		// Hover move.
		if sx != ps.lastX || sy != ps.lastY {
			s.setHovered(s.hitTest(sx, sy))
			ps.lastX, ps.lastY = sx, sy
		}
	}
}

// processTouch reports whether a two-touch pinch is in progress and, if
// so, feeds its distance ratio and midpoint movement to the viewport.
func (s *PlotScene) processTouch() bool {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) != 2 {
		s.pinch.active = false
		return len(ids) > 0
	}
	x0, y0 := ebiten.TouchPosition(ids[0])
	x1, y1 := ebiten.TouchPosition(ids[1])
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	dist := math.Sqrt(dx*dx + dy*dy)
	midX := float64(x0+x1) / 2
	midY := float64(y0+y1) / 2

	if !s.pinch.active {
		s.pinch.active = true
		s.pinch.prevDist = dist
		s.pinch.prevMidX = midX
		s.pinch.prevMidY = midY
		return true
	}

	factor := 1.0
	if s.pinch.prevDist > 0 {
		factor = dist / s.pinch.prevDist
	}
	s.vp.Pinch(midX, midY, factor, midX-s.pinch.prevMidX, midY-s.pinch.prevMidY)

	s.pinch.prevDist = dist
	s.pinch.prevMidX = midX
	s.pinch.prevMidY = midY
	return true
}

func (s *PlotScene) processKeys() {
	r := ebiten.IsKeyPressed(ebiten.KeyR)
	if r && !s.keys.reset {
		s.vp.Reset()
	}
	s.keys.reset = r

	snap := ebiten.IsKeyPressed(ebiten.KeyS)
	if snap && !s.keys.snapshot {
		s.Snapshot("manual")
	}
	s.keys.snapshot = snap
}
