package cellscape

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default zoom bounds and overview constants.
const (
	DefaultMinZoom       = 0.5
	DefaultMaxZoom       = 100.0
	DefaultOverviewScale = 0.8
	DefaultResetSeconds  = 0.25
)

// ViewTransform is the affine map (uniform scale + translate) from the
// fitted plot surface to the screen currently applied to the rendering
// group. screen = Scale*p + Translate.
type ViewTransform struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// Matrix returns the transform as an affine matrix.
func (t ViewTransform) Matrix() [6]float64 {
	return [6]float64{t.Scale, 0, 0, t.Scale, t.TranslateX, t.TranslateY}
}

// Apply maps a point through the transform.
func (t ViewTransform) Apply(x, y float64) (float64, float64) {
	return t.Scale*x + t.TranslateX, t.Scale*y + t.TranslateY
}

// Invert maps a screen point back through the transform.
func (t ViewTransform) Invert(sx, sy float64) (float64, float64) {
	return (sx - t.TranslateX) / t.Scale, (sy - t.TranslateY) / t.Scale
}

// resetAnim holds the active reset-to-overview tweens. Each component is
// interpolated independently; a fresh gesture discards the whole animation.
type resetAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	tweenK *gween.Tween
}

// Viewport owns the current ViewTransform and is its only writer. It
// translates continuous pointer gestures into transform updates, enforces
// the zoom bounds, and provides the animated reset to the overview
// transform. Readers (the scene renderer, the semantic scale function)
// observe it; they never mutate it.
type Viewport struct {
	transform ViewTransform

	minZoom       float64
	maxZoom       float64
	overviewScale float64
	resetDuration float64 // seconds

	observers []func(scale float64)
	reset     *resetAnim
}

// NewViewport creates a viewport at the canonical overview transform.
func NewViewport(minZoom, maxZoom float64) *Viewport {
	v := &Viewport{
		minZoom:       minZoom,
		maxZoom:       maxZoom,
		overviewScale: DefaultOverviewScale,
		resetDuration: DefaultResetSeconds,
	}
	v.transform = v.overviewTransform()
	return v
}

// MinZoom returns the lower zoom bound.
func (v *Viewport) MinZoom() float64 { return v.minZoom }

// MaxZoom returns the upper zoom bound.
func (v *Viewport) MaxZoom() float64 { return v.maxZoom }

// Transform returns the current ViewTransform.
func (v *Viewport) Transform() ViewTransform { return v.transform }

// Scale returns the current zoom factor k.
func (v *Viewport) Scale() float64 { return v.transform.Scale }

// SetOverview changes the canonical overview scale used by Reset.
func (v *Viewport) SetOverview(scale float64) {
	v.overviewScale = v.clampScale(scale)
}

// SetResetDuration changes the reset animation length in seconds.
func (v *Viewport) SetResetDuration(seconds float64) {
	v.resetDuration = seconds
}

// OnScaleChange registers an observer notified with the zoom factor after
// every accepted gesture — including translate-only gestures that leave
// the scale unchanged. Observers must be idempotent to redundant updates.
// The observer is invoked once immediately with the current scale.
func (v *Viewport) OnScaleChange(fn func(scale float64)) {
	v.observers = append(v.observers, fn)
	fn(v.transform.Scale)
}

func (v *Viewport) publish() {
	for _, fn := range v.observers {
		fn(v.transform.Scale)
	}
}

func (v *Viewport) clampScale(s float64) float64 {
	if s < v.minZoom {
		return v.minZoom
	}
	if s > v.maxZoom {
		return v.maxZoom
	}
	return s
}

// ZoomAt applies a zoom gesture by the given factor anchored at the
// screen position (sx, sy): the point under the pointer before the
// gesture maps to the same screen position after it. Out-of-range
// requests are clamped, never rejected. Preempts any reset animation.
func (v *Viewport) ZoomAt(sx, sy, factor float64) ViewTransform {
	v.reset = nil
	k0 := v.transform.Scale
	k1 := v.clampScale(k0 * factor)
	// Anchor invariance: t' = p - (p - t) * (k'/k).
	ratio := k1 / k0
	v.transform.TranslateX = sx - (sx-v.transform.TranslateX)*ratio
	v.transform.TranslateY = sy - (sy-v.transform.TranslateY)*ratio
	v.transform.Scale = k1
	v.publish()
	return v.transform
}

// PanBy applies a pan gesture by the given screen-space delta. Translate
// is unconstrained: panning outside the data bounding box is permitted.
// Preempts any reset animation and still publishes the (unchanged) scale.
func (v *Viewport) PanBy(dx, dy float64) ViewTransform {
	v.reset = nil
	v.transform.TranslateX += dx
	v.transform.TranslateY += dy
	v.publish()
	return v.transform
}

// Pinch applies a combined two-pointer gesture: a zoom by factor anchored
// at the gesture midpoint plus a pan by the midpoint's movement.
func (v *Viewport) Pinch(midX, midY, factor, dx, dy float64) ViewTransform {
	v.ZoomAt(midX, midY, factor)
	return v.PanBy(dx, dy)
}

// overviewTransform is the canonical full-dataset view: scale fixed below
// 1 so the whole domain sits inside the surface, translate at identity.
func (v *Viewport) overviewTransform() ViewTransform {
	return ViewTransform{Scale: v.clampScale(v.overviewScale)}
}

// Reset starts a smooth, time-boxed transition back to the overview
// transform and returns that canonical transform. Each Update recomputes
// the interpolated transform; a fresh gesture cancels the animation (last
// writer wins). The destination is identical regardless of prior state.
func (v *Viewport) Reset() ViewTransform {
	target := v.overviewTransform()
	if v.resetDuration <= 0 {
		v.reset = nil
		v.transform = target
		v.publish()
		return target
	}
	d := float32(v.resetDuration)
	v.reset = &resetAnim{
		tweenX: gween.New(float32(v.transform.TranslateX), float32(target.TranslateX), d, ease.OutQuad),
		tweenY: gween.New(float32(v.transform.TranslateY), float32(target.TranslateY), d, ease.OutQuad),
		tweenK: gween.New(float32(v.transform.Scale), float32(target.Scale), d, ease.OutQuad),
	}
	return target
}

// Resetting reports whether a reset animation is in flight.
func (v *Viewport) Resetting() bool { return v.reset != nil }

// Update advances the reset animation by dt seconds, if one is active.
// Called once per frame from the scene.
func (v *Viewport) Update(dt float64) {
	if v.reset == nil {
		return
	}
	fdt := float32(dt)
	x, _ := v.reset.tweenX.Update(fdt)
	y, _ := v.reset.tweenY.Update(fdt)
	k, done := v.reset.tweenK.Update(fdt)
	v.transform.TranslateX = float64(x)
	v.transform.TranslateY = float64(y)
	v.transform.Scale = v.clampScale(float64(k))
	if done {
		v.reset = nil
	}
	v.publish()
}
