package cellscape

import (
	"testing"
)

func testScale() SemanticScale {
	d := Domain{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}
	return NewSemanticScale(d, 100)
}

func TestSemanticScaleDerivation(t *testing.T) {
	s := testScale()
	if !approxEqual(s.BaseUnit(), 0.4, epsilon) {
		t.Errorf("BaseUnit = %f, want 0.4", s.BaseUnit())
	}
	if !approxEqual(s.CapK(), 75, epsilon) {
		t.Errorf("CapK = %f, want 75", s.CapK())
	}
}

func TestUnitBelowCap(t *testing.T) {
	s := testScale()
	if got := s.Unit(1); !approxEqual(got, 0.4, epsilon) {
		t.Errorf("Unit(1) = %f, want 0.4", got)
	}
	if got := s.Unit(50); !approxEqual(got, 0.008, epsilon) {
		t.Errorf("Unit(50) = %f, want 0.008", got)
	}
	// On-screen size unit*k stays constant below the cap.
	for _, k := range []float64{0.5, 1, 2, 10, 74.999} {
		if got := s.Unit(k) * k; !approxEqual(got, 0.4, epsilon) {
			t.Errorf("Unit(%f)*k = %f, want 0.4", k, got)
		}
	}
}

func TestUnitFrozenAboveCap(t *testing.T) {
	s := testScale()
	frozen := 0.4 / 75
	for _, k := range []float64{75, 80, 90, 100} {
		if got := s.Unit(k); !approxEqual(got, frozen, epsilon) {
			t.Errorf("Unit(%f) = %f, want %f", k, got, frozen)
		}
	}
	// On-screen size grows past the cap: at k=90 a marker is 90/75 of its
	// pre-cap screen size.
	if got := s.Unit(90) * 90; !approxEqual(got, 0.4*90/75, epsilon) {
		t.Errorf("Unit(90)*90 = %f, want %f", got, 0.4*90/75)
	}
}

func TestUnitContinuousAtCap(t *testing.T) {
	s := testScale()
	below := s.Unit(s.CapK() - 1e-12)
	at := s.Unit(s.CapK())
	if !approxEqual(below, at, 1e-9) {
		t.Errorf("discontinuity at cap: %f vs %f", below, at)
	}
}

func TestUnitMonotonic(t *testing.T) {
	s := testScale()
	prev := s.Unit(0.5)
	for k := 0.6; k <= 100; k += 0.1 {
		u := s.Unit(k)
		if u > prev+epsilon {
			t.Fatalf("Unit increased at k=%f: %f > %f", k, u, prev)
		}
		prev = u
	}
}

func BenchmarkUnit(b *testing.B) {
	s := testScale()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Unit(float64(i%100) + 0.5)
	}
}
