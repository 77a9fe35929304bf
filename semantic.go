package cellscape

// unitDivisor sets the base semantic unit as a fraction of the domain
// height: at zoom 1 a marker radius is 1/250th of the vertical extent.
const unitDivisor = 250.0

// capFraction positions the freeze threshold relative to the maximum zoom.
const capFraction = 0.75

// SemanticScale is the pure zoom-to-unit mapping shared by every
// geometry consumer (marker radii, frame stroke widths, label
// counter-scaling, tooltip offsets). Below the cap the unit shrinks as
// 1/k so on-screen sizes stay constant; at and above the cap it freezes,
// letting markers grow on screen for the final zoom range.
type SemanticScale struct {
	baseUnit float64
	capK     float64
}

// NewSemanticScale derives the scale function from the fixed data domain
// and the viewport's maximum zoom. Both inputs are set once at startup,
// so the function itself is immutable.
func NewSemanticScale(domain Domain, maxZoom float64) SemanticScale {
	return SemanticScale{
		baseUnit: domain.Height() / unitDivisor,
		capK:     maxZoom * capFraction,
	}
}

// BaseUnit returns the unit at zoom 1.
func (s SemanticScale) BaseUnit() float64 { return s.baseUnit }

// CapK returns the zoom factor at which the unit freezes.
func (s SemanticScale) CapK() float64 { return s.capK }

// Unit returns the semantic unit for zoom factor k.
//
//	unit(k) = baseUnit / k     for k < capK
//	unit(k) = baseUnit / capK  for k >= capK
//
// Continuous at the cap, monotonically non-increasing in k.
func (s SemanticScale) Unit(k float64) float64 {
	if k < s.capK {
		return s.baseUnit / k
	}
	return s.baseUnit / s.capK
}
