package cellscape

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// game adapts a PlotScene to the ebiten.Game interface.
type game struct {
	scene  *PlotScene
	width  int
	height int
}

func (g *game) Update() error {
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives the scene's update/draw loop until the
// window is closed. For full control, implement ebiten.Game yourself and
// call PlotScene.Update and PlotScene.Draw directly.
func Run(scene *PlotScene, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "cellscape"
	}
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&game{scene: scene, width: cfg.Width, height: cfg.Height})
}
