package cellscape

import (
	"encoding/json"
	"fmt"
	"os"
)

// TotalCategory is the synthetic aggregate entry present in dataset
// category lists. It is excluded from coloring and from marker rendering.
const TotalCategory = "Total"

// Point is a single embedded cell: a fixed data-space position and a
// category label. Identity is the ID, unique across the dataset.
// Positions never change after load.
type Point struct {
	ID       string
	X, Y     float64
	Category string
}

// CategoryStat is a precomputed per-category aggregate.
type CategoryStat struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Dataset holds the full point set as parallel arrays plus per-category
// aggregates. It is loaded once before the first render and treated as
// immutable afterwards.
type Dataset struct {
	IDs        []string                `json:"ids"`
	Xs         []float64               `json:"xs"`
	Ys         []float64               `json:"ys"`
	Labels     []string                `json:"labels"`
	Categories []string                `json:"categories"`
	Stats      map[string]CategoryStat `json:"stats"`
}

// Len returns the number of points, bounded by the shortest parallel array
// so that a length mismatch between arrays cannot cause out-of-range reads.
func (d *Dataset) Len() int {
	n := len(d.IDs)
	if len(d.Xs) < n {
		n = len(d.Xs)
	}
	if len(d.Ys) < n {
		n = len(d.Ys)
	}
	if len(d.Labels) < n {
		n = len(d.Labels)
	}
	return n
}

// At returns the point at index i. An out-of-range index yields
// ok == false rather than a panic; callers render nothing for it.
func (d *Dataset) At(i int) (Point, bool) {
	if i < 0 || i >= d.Len() {
		return Point{}, false
	}
	return Point{
		ID:       d.IDs[i],
		X:        d.Xs[i],
		Y:        d.Ys[i],
		Category: d.Labels[i],
	}, true
}

// Domain is the fixed data-space bounding box covering all point
// coordinates. It is derived once from the full point set and recomputed
// only if the dataset changes, never on zoom or pan.
type Domain struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns the X extent of the domain.
func (d Domain) Width() float64 { return d.MaxX - d.MinX }

// Height returns the Y extent of the domain.
func (d Domain) Height() float64 { return d.MaxY - d.MinY }

// ComputeDomain derives the bounding box of the dataset's positions.
// An empty dataset is a precondition violation and returns an error;
// callers report it at startup instead of rendering a degenerate plot.
func ComputeDomain(d *Dataset) (Domain, error) {
	n := d.Len()
	if n == 0 {
		return Domain{}, fmt.Errorf("cellscape: dataset has no points")
	}
	dom := Domain{
		MinX: d.Xs[0], MaxX: d.Xs[0],
		MinY: d.Ys[0], MaxY: d.Ys[0],
	}
	for i := 1; i < n; i++ {
		if d.Xs[i] < dom.MinX {
			dom.MinX = d.Xs[i]
		}
		if d.Xs[i] > dom.MaxX {
			dom.MaxX = d.Xs[i]
		}
		if d.Ys[i] < dom.MinY {
			dom.MinY = d.Ys[i]
		}
		if d.Ys[i] > dom.MaxY {
			dom.MaxY = d.Ys[i]
		}
	}
	return dom, nil
}

// LoadDataset reads a dataset from a JSON file of parallel arrays.
// Missing aggregates are recomputed from the labels so that the legend
// data is always present.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cellscape: read dataset: %w", err)
	}
	return ParseDataset(data)
}

// ParseDataset decodes a dataset from JSON bytes.
func ParseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("cellscape: parse dataset: %w", err)
	}
	if len(ds.IDs) != len(ds.Xs) || len(ds.Xs) != len(ds.Ys) || len(ds.Ys) != len(ds.Labels) {
		fmt.Fprintf(os.Stderr, "[cellscape] dataset: parallel array lengths differ (ids=%d xs=%d ys=%d labels=%d); extra entries are ignored\n",
			len(ds.IDs), len(ds.Xs), len(ds.Ys), len(ds.Labels))
	}
	if ds.Stats == nil || len(ds.Categories) == 0 {
		ds.fillAggregates()
	}
	return &ds, nil
}

// fillAggregates recomputes per-category counts and percentages and the
// distinct category list (with the synthetic Total entry) from the labels.
func (d *Dataset) fillAggregates() {
	n := d.Len()
	counts := make(map[string]int, 16)
	order := make([]string, 0, 16)
	for i := 0; i < n; i++ {
		if _, seen := counts[d.Labels[i]]; !seen {
			order = append(order, d.Labels[i])
		}
		counts[d.Labels[i]]++
	}
	d.Stats = make(map[string]CategoryStat, len(counts)+1)
	for cat, c := range counts {
		pct := 0.0
		if n > 0 {
			pct = 100 * float64(c) / float64(n)
		}
		d.Stats[cat] = CategoryStat{Count: c, Percent: pct}
	}
	d.Stats[TotalCategory] = CategoryStat{Count: n, Percent: 100}
	if _, seen := counts[TotalCategory]; !seen {
		order = append(order, TotalCategory)
	}
	d.Categories = order
}
