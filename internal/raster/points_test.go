package raster

import "testing"

func TestPointSetDeduplicates(t *testing.T) {
	s := NewPointSet(4)
	s.Add(1, 2)
	s.Add(3, 4)
	s.Add(1, 2)
	s.Add(-1, 2)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	want := []Point{{1, 2}, {3, 4}, {-1, 2}}
	for i, p := range s.Points() {
		if p != want[i] {
			t.Errorf("Points()[%d] = %v, want %v", i, p, want[i])
		}
	}
	if !s.Has(-1, 2) || s.Has(2, 1) {
		t.Error("Has() mismatch")
	}
}

func TestPointSetReset(t *testing.T) {
	s := NewPointSet(0)
	for i := 0; i < 100; i++ {
		s.Add(i, i)
	}
	capBefore := cap(s.Points())
	s.Reset()

	if s.Len() != 0 || s.Has(5, 5) {
		t.Fatal("Reset left points behind")
	}
	if cap(s.Points()) != capBefore {
		t.Errorf("Reset released storage: cap %d, want %d", cap(s.Points()), capBefore)
	}
	s.Add(5, 5)
	if s.Len() != 1 {
		t.Errorf("Len() after reuse = %d, want 1", s.Len())
	}
}

func TestPointSetZeroValue(t *testing.T) {
	var s PointSet
	s.Add(0, 0)
	if s.Len() != 1 || !s.Has(0, 0) {
		t.Error("zero-value PointSet is not usable")
	}
}
