package cellscape

import (
	"github.com/lucasb-eyer/go-colorful"
)

// basePalette is the categorical table used for the first 20 categories,
// in assignment order. Beyond it, colors are sampled from HCL space so
// neighbouring categories stay distinguishable.
var basePalette = [20]Color{
	{0.122, 0.467, 0.706, 1}, // blue
	{1.000, 0.498, 0.055, 1}, // orange
	{0.173, 0.627, 0.173, 1}, // green
	{0.839, 0.153, 0.157, 1}, // red
	{0.580, 0.404, 0.741, 1}, // purple
	{0.549, 0.337, 0.294, 1}, // brown
	{0.890, 0.467, 0.761, 1}, // pink
	{0.498, 0.498, 0.498, 1}, // gray
	{0.737, 0.741, 0.133, 1}, // olive
	{0.090, 0.745, 0.812, 1}, // cyan
	{0.682, 0.780, 0.910, 1}, // light blue
	{1.000, 0.733, 0.471, 1}, // light orange
	{0.596, 0.875, 0.541, 1}, // light green
	{1.000, 0.596, 0.588, 1}, // light red
	{0.773, 0.690, 0.835, 1}, // light purple
	{0.769, 0.612, 0.580, 1}, // light brown
	{0.969, 0.714, 0.824, 1}, // light pink
	{0.780, 0.780, 0.780, 1}, // light gray
	{0.859, 0.859, 0.553, 1}, // light olive
	{0.620, 0.855, 0.898, 1}, // light cyan
}

// AssignColors builds the per-category color mapping for the session.
// It is called once at initialization, never per render. The synthetic
// Total aggregate entry is never assigned a color; lookups for categories
// missing from the map fall back to ColorBlack at render time.
func AssignColors(categories []string) map[string]Color {
	m := make(map[string]Color, len(categories))
	i := 0
	for _, cat := range categories {
		if cat == TotalCategory {
			continue
		}
		if _, dup := m[cat]; dup {
			continue
		}
		m[cat] = categoryColor(i)
		i++
	}
	return m
}

// categoryColor returns the i-th session color: the base table first,
// then golden-angle HCL hue stepping, which avoids clustering for
// arbitrary category counts.
func categoryColor(i int) Color {
	if i < len(basePalette) {
		return basePalette[i]
	}
	hue := float64((i - len(basePalette)) * 137 % 360)
	c := colorful.Hcl(hue, 0.6, 0.6).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// fillFor looks up the color for a category label, falling back to
// ColorBlack for unknown categories rather than failing the render.
func fillFor(colors map[string]Color, category string) Color {
	if c, ok := colors[category]; ok {
		return c
	}
	return ColorBlack
}
