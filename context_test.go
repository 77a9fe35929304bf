package cellscape

import (
	"testing"
)

func newTestContext(t *testing.T) *PlotContext {
	t.Helper()
	ds := sampleDataset()
	ds.fillAggregates()
	ctx, err := NewPlotContext(ds)
	if err != nil {
		t.Fatalf("NewPlotContext: %v", err)
	}
	return ctx
}

func TestNewPlotContextEmptyDataset(t *testing.T) {
	if _, err := NewPlotContext(&Dataset{}); err == nil {
		t.Error("expected error for empty dataset")
	}
}

func TestNewPlotContextDegenerateDomain(t *testing.T) {
	ds := &Dataset{
		IDs:    []string{"a", "b"},
		Xs:     []float64{5, 5},
		Ys:     []float64{1, 2},
		Labels: []string{"x", "y"},
	}
	if _, err := NewPlotContext(ds); err == nil {
		t.Error("expected error for zero-width domain")
	}
}

func TestPlotContextAccessors(t *testing.T) {
	ctx := newTestContext(t)
	if ctx.Domain().Width() != 100 || ctx.Domain().Height() != 100 {
		t.Errorf("domain = %+v", ctx.Domain())
	}
	if ctx.ColorFor("Bcell") != basePalette[0] {
		t.Errorf("Bcell color = %+v", ctx.ColorFor("Bcell"))
	}
	if ctx.ColorFor(TotalCategory) != ColorBlack {
		t.Errorf("Total color = %+v, want black", ctx.ColorFor(TotalCategory))
	}
}

func TestLegendOrdering(t *testing.T) {
	ctx := newTestContext(t)
	legend := ctx.Legend()
	if len(legend) != 4 {
		t.Fatalf("legend has %d entries, want 4", len(legend))
	}
	// Descending by count, Total pinned last.
	if legend[0].Category != "Bcell" || legend[0].Count != 2 {
		t.Errorf("legend[0] = %+v", legend[0])
	}
	last := legend[len(legend)-1]
	if last.Category != TotalCategory || last.Count != 4 {
		t.Errorf("legend last = %+v, want Total with count 4", last)
	}
	if !approxEqual(last.Percent, 100, epsilon) {
		t.Errorf("Total percent = %f", last.Percent)
	}
}
