package grayscott

import "sync"

// 9-point discrete Laplacian weights. They sum to zero, so a uniform field
// has no diffusion gradient.
const (
	weightCenter float32 = -1.0
	weightEdge   float32 = 0.2
	weightDiag   float32 = 0.05
)

// UpdateDelta advances the simulation by one tick scaled by dt. Every output
// cell is computed from the previous generation only; the write buffer and
// display bytes are filled by row bands running in parallel, then the
// buffers swap. A non-positive dt falls back to the configured time step.
func (s *System) UpdateDelta(dt float32) {
	if dt <= 0 {
		dt = s.cfg.Params.TimeStep
	}

	h := s.h
	workers := s.workers
	if workers <= 1 {
		s.stepRows(0, h, dt)
		s.cur, s.nxt = s.nxt, s.cur
		return
	}

	rowsPer := (h + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < h; start += rowsPer {
		end := start + rowsPer
		if end > h {
			end = h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			s.stepRows(y0, y1, dt)
		}(start, end)
	}
	wg.Wait()

	s.cur, s.nxt = s.nxt, s.cur
}

// stepRows applies the Gray-Scott update to rows [y0, y1). Bands write
// disjoint slices of the next buffer, so no synchronization is needed
// between cells.
func (s *System) stepRows(y0, y1 int, dt float32) {
	w, h := s.w, s.h
	p := s.cfg.Params
	srcU, srcV := s.cur.u, s.cur.v
	dstU, dstV := s.nxt.u, s.nxt.v

	for y := y0; y < y1; y++ {
		row := y * w
		up := ((y - 1 + h) % h) * w
		down := ((y + 1) % h) * w
		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w
			i := row + x

			u := srcU[i]
			v := srcV[i]

			lapU := weightCenter*u +
				weightEdge*(srcU[up+x]+srcU[down+x]+srcU[row+left]+srcU[row+right]) +
				weightDiag*(srcU[up+left]+srcU[up+right]+srcU[down+left]+srcU[down+right])
			lapV := weightCenter*v +
				weightEdge*(srcV[up+x]+srcV[down+x]+srcV[row+left]+srcV[row+right]) +
				weightDiag*(srcV[up+left]+srcV[up+right]+srcV[down+left]+srcV[down+right])

			uvv := u * v * v
			du := p.DiffU*lapU - uvv + p.Feed*(1-u)
			dv := p.DiffV*lapV + uvv - (p.Kill+p.Feed)*v

			nu := clampUnit(u + du*dt)
			nv := clampUnit(v + dv*dt)
			dstU[i] = nu
			dstV[i] = nv
			s.display[i] = displayByte(nu, nv)
		}
	}
}

// clampUnit limits v to [-1, 1]. NaN collapses to -1, so a degenerate value
// can never propagate through the field.
func clampUnit(v float32) float32 {
	if !(v > -1) {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
