package citymap

import "fmt"

// Field holds one float64 per grid cell in row-major order. It backs the
// conductivity field of the slime mold optimizer and the pheromone field of
// the ant colony. The zero value is an empty 0×0 field.
type Field struct {
	width, height int
	values        []float64
}

// NewField returns a zero-filled width×height field.
func NewField(width, height int) *Field {
	return &Field{width: width, height: height, values: make([]float64, width*height)}
}

// NewFieldFor returns a field shaped like g, holding v on every free cell
// and 0 on blocked cells.
func NewFieldFor(g *Grid, v float64) *Field {
	f := NewField(g.Width, g.Height)
	for i, b := range g.blocked {
		if !b {
			f.values[i] = v
		}
	}
	return f
}

// FieldFromRows builds a field from a [y][x] matrix. Rows must be rectangular.
func FieldFromRows(rows [][]float64) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	f := NewField(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copy(f.values[y*w:(y+1)*w], row)
	}
	return f, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// Fits reports whether f has the same shape as g.
func (f *Field) Fits(g *Grid) bool {
	return f != nil && f.width == g.Width && f.height == g.Height
}

// At returns the value at c, or 0 when c is outside the field.
func (f *Field) At(c Cell) float64 {
	if c.X < 0 || c.X >= f.width || c.Y < 0 || c.Y >= f.height {
		return 0
	}
	return f.values[c.Y*f.width+c.X]
}

// Set stores v at c. Out-of-range cells are ignored.
func (f *Field) Set(c Cell, v float64) {
	if c.X < 0 || c.X >= f.width || c.Y < 0 || c.Y >= f.height {
		return
	}
	f.values[c.Y*f.width+c.X] = v
}

// Add increments the value at c by d. Out-of-range cells are ignored.
func (f *Field) Add(c Cell, d float64) {
	if c.X < 0 || c.X >= f.width || c.Y < 0 || c.Y >= f.height {
		return
	}
	f.values[c.Y*f.width+c.X] += d
}

// Scale multiplies every value by k.
func (f *Field) Scale(k float64) {
	for i := range f.values {
		f.values[i] *= k
	}
}

// Max returns the largest value, or 0 for an empty field.
func (f *Field) Max() float64 {
	if len(f.values) == 0 {
		return 0
	}
	m := f.values[0]
	for _, v := range f.values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Sum returns the total mass of the field.
func (f *Field) Sum() float64 {
	var s float64
	for _, v := range f.values {
		s += v
	}
	return s
}

// Normalize divides every value by the field maximum so that the result lies
// in [0,1] with at least one value exactly 1.0 (for non-negative fields).
// Returns ErrZeroField when the maximum is not positive; f is left untouched.
func (f *Field) Normalize() error {
	m := f.Max()
	if !(m > 0) {
		return ErrZeroField
	}
	for i := range f.values {
		f.values[i] /= m
	}
	return nil
}

// ZeroBlocked clears every cell that is blocked in g.
// Returns ErrDimensionMismatch if the shapes differ.
func (f *Field) ZeroBlocked(g *Grid) error {
	if !f.Fits(g) {
		return fmt.Errorf("field %dx%d, grid %dx%d: %w", f.width, f.height, g.Width, g.Height, ErrDimensionMismatch)
	}
	for i, b := range g.blocked {
		if b {
			f.values[i] = 0
		}
	}
	return nil
}

// Clone returns a deep copy of f.
func (f *Field) Clone() *Field {
	out := &Field{width: f.width, height: f.height, values: make([]float64, len(f.values))}
	copy(out.values, f.values)
	return out
}

// Rows returns a fresh [y][x] copy of the values.
func (f *Field) Rows() [][]float64 {
	out := make([][]float64, f.height)
	for y := range out {
		out[y] = make([]float64, f.width)
		copy(out[y], f.values[y*f.width:(y+1)*f.width])
	}
	return out
}

// Equal reports whether f and o have the same shape and bit-identical values.
func (f *Field) Equal(o *Field) bool {
	if f == nil || o == nil {
		return f == o
	}
	if f.width != o.width || f.height != o.height {
		return false
	}
	for i, v := range f.values {
		if v != o.values[i] {
			return false
		}
	}
	return true
}
