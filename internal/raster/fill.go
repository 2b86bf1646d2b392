package raster

import "slices"

// span is an inclusive integer range. min > max means empty.
type span struct {
	min, max int
}

// Filler reconstructs the interior of a closed outline from its pixels.
//
// For every outline pixel (x, y) it narrows two ranges:
//
//	byColumn[x] = [min(y+1), max(y-1)]
//	byRow[y]    = [min(x+1), max(x-1)]
//
// The ±1 keeps the outline rows and columns themselves out of the scan.
// A pixel (x, y) is interior when x lies in byRow[y] and y lies in
// byColumn[x]. This needs no edge table, but it is not an even-odd or
// winding fill: it assumes each row and column crosses the shape in a single
// band, which holds for convex outlines and many simple concave ones.
// Self-intersecting outlines fill unpredictably.
//
// The zero value is ready to use. Its maps are reused between calls.
type Filler struct {
	byRow    map[int]span
	byColumn map[int]span
	rows     []int
}

// Fill adds the interior of the outline held in dst back into dst, clipped
// to [0, width) x [0, height).
func (f *Filler) Fill(dst *PointSet, width, height int) {
	if f.byRow == nil {
		f.byRow = make(map[int]span)
		f.byColumn = make(map[int]span)
	}
	clear(f.byRow)
	clear(f.byColumn)

	for _, p := range dst.Points() {
		widen(f.byColumn, p.X, p.Y)
		widen(f.byRow, p.Y, p.X)
	}

	f.rows = f.rows[:0]
	for y := range f.byRow {
		if y >= 0 && y < height {
			f.rows = append(f.rows, y)
		}
	}
	slices.Sort(f.rows)

	for _, y := range f.rows {
		r := f.byRow[y]
		lo, hi := max(r.min, 0), min(r.max, width-1)
		for x := lo; x <= hi; x++ {
			c, ok := f.byColumn[x]
			if !ok {
				continue
			}
			if y >= c.min && y <= c.max {
				dst.Add(x, y)
			}
		}
	}
}

func widen(m map[int]span, key, v int) {
	s, ok := m[key]
	if !ok {
		m[key] = span{min: v + 1, max: v - 1}
		return
	}
	s.min = min(s.min, v+1)
	s.max = max(s.max, v-1)
	m[key] = s
}
