package cellscape

import (
	"fmt"
	"sort"
)

// PlotContext is the immutable initialization product passed by reference
// into the viewport controller and the scene renderer: the point arrays,
// the derived domain, and the per-category color mapping. Building it is
// an explicit step — there is no module-level derived state, and nothing
// re-derives the domain or the colors after construction, which makes the
// dataset-is-immutable-after-mount assumption structural.
type PlotContext struct {
	dataset *Dataset
	domain  Domain
	colors  map[string]Color
}

// LegendEntry is the per-category aggregate exposed for an external
// legend panel. The panel's layout is not this package's concern.
type LegendEntry struct {
	Category string
	Count    int
	Percent  float64
	Color    Color
}

// NewPlotContext derives the domain and the color mapping from a loaded
// dataset. An empty dataset or a zero-extent domain is a fatal
// precondition violation; both are reported here, at startup.
func NewPlotContext(ds *Dataset) (*PlotContext, error) {
	dom, err := ComputeDomain(ds)
	if err != nil {
		return nil, err
	}
	if dom.Width() <= 0 || dom.Height() <= 0 {
		return nil, fmt.Errorf("cellscape: degenerate domain %+v: all points coincide on an axis", dom)
	}
	return &PlotContext{
		dataset: ds,
		domain:  dom,
		colors:  AssignColors(ds.Categories),
	}, nil
}

// Dataset returns the immutable point set.
func (pc *PlotContext) Dataset() *Dataset { return pc.dataset }

// Domain returns the fixed data-space bounding box.
func (pc *PlotContext) Domain() Domain { return pc.domain }

// ColorFor returns the session color assigned to a category, or
// ColorBlack if the category has none.
func (pc *PlotContext) ColorFor(category string) Color {
	return fillFor(pc.colors, category)
}

// Legend returns per-category aggregates sorted by descending count,
// with the synthetic Total entry last.
func (pc *PlotContext) Legend() []LegendEntry {
	entries := make([]LegendEntry, 0, len(pc.dataset.Categories))
	var total *LegendEntry
	for _, cat := range pc.dataset.Categories {
		st := pc.dataset.Stats[cat]
		e := LegendEntry{Category: cat, Count: st.Count, Percent: st.Percent}
		if cat == TotalCategory {
			total = &e
			continue
		}
		e.Color = pc.ColorFor(cat)
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if total != nil {
		entries = append(entries, *total)
	}
	return entries
}
