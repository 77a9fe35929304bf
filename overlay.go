package cellscape

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawOverlay prints the live zoom state in the top-left corner: the zoom
// factor, the semantic unit, the hovered point, and the frame rates.
func (s *PlotScene) drawOverlay(screen *ebiten.Image) {
	hovered := "-"
	if p, ok := s.ctx.Dataset().At(s.hovered); ok {
		hovered = p.ID
	}
	msg := fmt.Sprintf("k: %.3f  unit: %.5f  hover: %s\nFPS: %.1f  TPS: %.1f",
		s.vp.Scale(), s.unit, hovered, ebiten.ActualFPS(), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
