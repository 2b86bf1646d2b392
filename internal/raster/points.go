package raster

// PointSet is a deduplicating set of pixel coordinates.
//
// Iteration follows insertion order so that resolving the set to pixel
// writes is deterministic. Reset keeps the allocated storage, which lets a
// single set serve every primitive drawn by one renderer.
//
// The zero value is an empty set ready to use. A PointSet is not safe for
// concurrent use.
type PointSet struct {
	index map[Point]struct{}
	pts   []Point
}

// NewPointSet creates a set with room for capacity points.
func NewPointSet(capacity int) *PointSet {
	if capacity < 0 {
		capacity = 0
	}
	return &PointSet{
		index: make(map[Point]struct{}, capacity),
		pts:   make([]Point, 0, capacity),
	}
}

// Add inserts (x, y). Duplicates are ignored.
func (s *PointSet) Add(x, y int) {
	if s.index == nil {
		s.index = make(map[Point]struct{})
	}
	p := Point{X: x, Y: y}
	if _, ok := s.index[p]; ok {
		return
	}
	s.index[p] = struct{}{}
	s.pts = append(s.pts, p)
}

// Has reports whether (x, y) is in the set.
func (s *PointSet) Has(x, y int) bool {
	_, ok := s.index[Point{X: x, Y: y}]
	return ok
}

// Len returns the number of distinct points.
func (s *PointSet) Len() int {
	return len(s.pts)
}

// Points returns the points in insertion order.
// The slice is owned by the set and is only valid until the next Add or Reset.
func (s *PointSet) Points() []Point {
	return s.pts
}

// Reset empties the set, keeping its storage.
func (s *PointSet) Reset() {
	clear(s.index)
	s.pts = s.pts[:0]
}
