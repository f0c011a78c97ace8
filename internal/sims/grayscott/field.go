package grayscott

import "gray-scott/internal/core"

// UV holds one cell's chemical concentrations.
type UV struct {
	U float32
	V float32
}

// Field stores the two concentration planes of the Gray-Scott model in
// row-major order. Every stored value stays within [-1, 1]; writes clamp.
type Field struct {
	w, h int
	u    []float32
	v    []float32
}

// NewField allocates a field in the model's rest state: U=1, V=0 everywhere.
func NewField(w, h int) *Field {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	f := &Field{w: w, h: h, u: make([]float32, w*h), v: make([]float32, w*h)}
	for i := range f.u {
		f.u[i] = 1
	}
	return f
}

// Index returns the wrapped slice index for coordinates (x, y). Any signed
// coordinates are valid; the grid is a torus.
func (f *Field) Index(x, y int) int {
	return core.WrapIndex(x, y, f.w, f.h)
}

// Get reads the cell at (x, y) with toroidal wrapping.
func (f *Field) Get(x, y int) UV {
	return f.GetIndex(f.Index(x, y))
}

// GetIndex reads the cell at a linear index. An out-of-range index is a
// programmer error and panics.
func (f *Field) GetIndex(i int) UV {
	return UV{U: f.u[i], V: f.v[i]}
}

// Set writes the cell at (x, y) with toroidal wrapping, clamping both
// components to [-1, 1].
func (f *Field) Set(x, y int, uv UV) {
	i := f.Index(x, y)
	f.u[i] = core.Clamp32(uv.U, -1, 1)
	f.v[i] = core.Clamp32(uv.V, -1, 1)
}

// SetAll bulk-replaces the entire field, clamping every component. A length
// mismatch is a programmer error and panics.
func (f *Field) SetAll(values []UV) {
	if len(values) != f.w*f.h {
		panic("grayscott: SetAll length must match grid size")
	}
	for i, uv := range values {
		f.u[i] = core.Clamp32(uv.U, -1, 1)
		f.v[i] = core.Clamp32(uv.V, -1, 1)
	}
}

// UVs returns an interleaved snapshot of the full field. The returned slice
// is a copy; mutating it does not affect the field.
func (f *Field) UVs() []UV {
	out := make([]UV, len(f.u))
	for i := range out {
		out[i] = UV{U: f.u[i], V: f.v[i]}
	}
	return out
}

// U exposes the backing U plane for the hot paths of the stepper and tests.
func (f *Field) U() []float32 { return f.u }

// V exposes the backing V plane.
func (f *Field) V() []float32 { return f.v }

func (f *Field) reset() {
	for i := range f.u {
		f.u[i] = 1
		f.v[i] = 0
	}
}
