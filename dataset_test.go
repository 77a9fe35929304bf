package cellscape

import (
	"testing"
)

func sampleDataset() *Dataset {
	return &Dataset{
		IDs:    []string{"c1", "c2", "c3", "c4"},
		Xs:     []float64{0, 100, 25, 75},
		Ys:     []float64{0, 100, 50, 25},
		Labels: []string{"Bcell", "Tcell", "Bcell", "NK"},
	}
}

func TestParseDataset(t *testing.T) {
	data := []byte(`{
		"ids": ["a", "b"],
		"xs": [1.5, -2.0],
		"ys": [3.0, 4.5],
		"labels": ["Bcell", "Tcell"]
	}`)
	ds, err := ParseDataset(data)
	if err != nil {
		t.Fatalf("ParseDataset: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ds.Len())
	}
	p, ok := ds.At(0)
	if !ok || p.ID != "a" || p.X != 1.5 || p.Category != "Bcell" {
		t.Errorf("At(0) = %+v, %v", p, ok)
	}
}

func TestParseDatasetBadJSON(t *testing.T) {
	if _, err := ParseDataset([]byte("{nope")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLenBoundedByShortestArray(t *testing.T) {
	ds := sampleDataset()
	ds.Ys = ds.Ys[:2]
	if ds.Len() != 2 {
		t.Errorf("Len = %d, want 2", ds.Len())
	}
	// Indexes past the shortest array render nothing instead of panicking.
	if _, ok := ds.At(3); ok {
		t.Error("At(3) = ok for truncated arrays")
	}
}

func TestAtOutOfRange(t *testing.T) {
	ds := sampleDataset()
	if _, ok := ds.At(-1); ok {
		t.Error("At(-1) = ok")
	}
	if _, ok := ds.At(ds.Len()); ok {
		t.Error("At(Len()) = ok")
	}
}

func TestComputeDomain(t *testing.T) {
	ds := sampleDataset()
	dom, err := ComputeDomain(ds)
	if err != nil {
		t.Fatalf("ComputeDomain: %v", err)
	}
	want := Domain{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}
	if dom != want {
		t.Errorf("domain = %+v, want %+v", dom, want)
	}
	if !approxEqual(dom.Width(), 100, epsilon) || !approxEqual(dom.Height(), 100, epsilon) {
		t.Errorf("extent = %fx%f", dom.Width(), dom.Height())
	}
}

func TestComputeDomainEmpty(t *testing.T) {
	if _, err := ComputeDomain(&Dataset{}); err == nil {
		t.Error("expected error for empty dataset")
	}
}

func TestFillAggregates(t *testing.T) {
	ds := sampleDataset()
	ds.fillAggregates()

	if got := ds.Stats["Bcell"]; got.Count != 2 || !approxEqual(got.Percent, 50, epsilon) {
		t.Errorf("Bcell stat = %+v", got)
	}
	if got := ds.Stats[TotalCategory]; got.Count != 4 || !approxEqual(got.Percent, 100, epsilon) {
		t.Errorf("Total stat = %+v", got)
	}

	// Category order: first appearance, Total last.
	want := []string{"Bcell", "Tcell", "NK", TotalCategory}
	if len(ds.Categories) != len(want) {
		t.Fatalf("categories = %v", ds.Categories)
	}
	for i, c := range want {
		if ds.Categories[i] != c {
			t.Errorf("categories[%d] = %q, want %q", i, ds.Categories[i], c)
		}
	}
}

func TestParseDatasetFillsMissingAggregates(t *testing.T) {
	ds, err := ParseDataset([]byte(`{"ids":["a"],"xs":[1],"ys":[2],"labels":["Bcell"]}`))
	if err != nil {
		t.Fatalf("ParseDataset: %v", err)
	}
	if ds.Stats == nil || len(ds.Categories) == 0 {
		t.Fatal("aggregates not derived from labels")
	}
	if ds.Categories[len(ds.Categories)-1] != TotalCategory {
		t.Errorf("last category = %q, want Total", ds.Categories[len(ds.Categories)-1])
	}
}
