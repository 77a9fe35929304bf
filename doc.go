// Package cellscape renders a pannable, zoomable scatter plot of a 2D
// cell embedding with [Ebitengine].
//
// Each cell is a circle positioned by its embedding coordinates and
// colored by its category. The plot uses semantic zoom: geometry sizes
// are expressed in a shared data-space unit that shrinks as the zoom
// factor grows, so markers, the axis frame, and labels keep a constant
// on-screen size through most of the zoom range, then grow once the
// zoom passes a fixed cap.
//
// # Quick start
//
//	ds, err := cellscape.LoadDataset("embedding.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctx, err := cellscape.NewPlotContext(ds)
//	if err != nil {
//		log.Fatal(err)
//	}
//	vp := cellscape.NewViewport(cellscape.DefaultMinZoom, cellscape.DefaultMaxZoom)
//	scene := cellscape.NewPlotScene(ctx, vp, 960, 720)
//	if err := cellscape.Run(scene, cellscape.RunConfig{Title: "embedding"}); err != nil {
//		log.Fatal(err)
//	}
//
// The wheel zooms about the cursor, left drag pans, two touches pinch,
// R resets to the overview with a short animation, and S writes a PNG
// snapshot. Hovering a marker doubles its radius and shows a tooltip
// with the point's id and category.
//
// For full control, implement [ebiten.Game] yourself and call
// [PlotScene.Update] and [PlotScene.Draw] directly.
//
// [Ebitengine]: https://ebitengine.org
package cellscape
