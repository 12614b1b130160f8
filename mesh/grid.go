// Copyright (c) 2026, The webglot3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/core/math32"

// Grid tessellates a rectangular parameter domain as a single
// triangle strip. Rows are stitched together with repeated
// (degenerate) indexes, so the whole (Segs+1) x (Segs+1) grid renders
// as one strip and stays within the 16-bit index budget, instead of
// one strip per row.
type Grid struct {

	// Domain is the parameter region covered by the grid.
	Domain Domain

	// Segs is the number of segments along each axis, giving
	// (Segs+1) samples per axis. Must be from 1 to MaxSegs.
	Segs int

	// Repeat is the number of texture repeats across the
	// u and v axes of the grid.
	Repeat math32.Vector2
}

// NewGrid returns a Grid over the given domain with the given number
// of segments along each axis, and the default texture repeat.
func NewGrid(dom Domain, segs int) *Grid {
	gr := &Grid{}
	gr.Defaults()
	gr.Domain = dom
	gr.Segs = segs
	return gr
}

func (gr *Grid) Defaults() {
	gr.Domain = NewDomain(0, 1, 0, 1)
	gr.Segs = DefaultSegs
	gr.Repeat = math32.Vec2(DefaultRepeat, DefaultRepeat)
}

// Validate checks that the grid resolution is addressable with
// 16-bit indexes.
func (gr *Grid) Validate() error {
	return ValidSegs(gr.Segs)
}

// Size returns the number of vertex and index points in the grid.
func (gr *Grid) Size() (numVertex, numIndex int) {
	return GridSize(gr.Segs)
}

// Set sets points in given allocated arrays: parameter-space (u,v)
// positions and (s,t) texture coordinates, 2 floats per vertex, and
// the triangle-strip index sequence. The grid must be valid.
func (gr *Grid) Set(pos, tc math32.ArrayF32, idx []uint16) {
	SetGridPoints(pos, tc, gr.Domain, gr.Segs, gr.Repeat)
	SetStripIndexes(idx, gr.Segs)
}

// Build validates the grid, allocates the arrays, and sets them.
func (gr *Grid) Build() (pos, tc math32.ArrayF32, idx []uint16, err error) {
	if err = gr.Validate(); err != nil {
		return nil, nil, nil, err
	}
	nv, ni := gr.Size()
	pos = math32.NewArrayF32(2*nv, 2*nv)
	tc = math32.NewArrayF32(2*nv, 2*nv)
	idx = make([]uint16, ni)
	gr.Set(pos, tc, idx)
	return pos, tc, idx, nil
}

// SetGridPoints sets positions and texture coordinates for a
// (segs+1) x (segs+1) grid over the given domain into the given
// allocated arrays, starting at index 0. Points are in row-major
// order: the outer loop steps u, the inner loop steps v, so grid
// point (i,j) is at vertex index i*(segs+1)+j. Texture s runs 0 to
// repeat.X as u increases; t runs repeat.Y down to 0 as v increases,
// flipping the image vertically.
func SetGridPoints(pos, tc math32.ArrayF32, dom Domain, segs int, repeat math32.Vector2) {
	du := (dom.UMax - dom.UMin) / float32(segs)
	dv := (dom.VMax - dom.VMin) / float32(segs)
	ds := repeat.X / float32(segs)
	dt := repeat.Y / float32(segs)
	pi := 0
	for i := 0; i <= segs; i++ {
		u := dom.UMin + float32(i)*du
		s := float32(i) * ds
		for j := 0; j <= segs; j++ {
			v := dom.VMin + float32(j)*dv
			t := repeat.Y - float32(j)*dt
			pos.Set(pi, u, v)
			tc.Set(pi, s, t)
			pi += 2
		}
	}
}

// StripIndexes returns the triangle-strip index sequence for a grid
// with the given number of segments along each axis.
func StripIndexes(segs int) []uint16 {
	_, ni := GridSize(segs)
	idx := make([]uint16, ni)
	SetStripIndexes(idx, segs)
	return idx
}

// SetStripIndexes sets the single continuous triangle-strip index
// sequence covering the grid into the given allocated slice.
// Each row is walked by alternating between its two bounding columns
// of vertexes, and the row's last index is emitted twice: the
// repeated index forms zero-area triangles that carry the strip into
// the next row with reversed traversal direction, so no per-row strip
// restart is needed. The alternation is controlled by dec, which
// toggles between inc-1 and inc+1 after each row.
func SetStripIndexes(idx []uint16, segs int) {
	inc := segs + 1
	dec := inc - 1
	c := 0
	n := 0
	idx[n] = uint16(c)
	n++
	for i := 0; i < segs; i++ {
		for j := 0; j < segs; j++ {
			c += inc
			idx[n] = uint16(c)
			n++
			c -= dec
			idx[n] = uint16(c)
			n++
		}
		c += inc
		idx[n] = uint16(c)
		n++
		idx[n] = uint16(c)
		n++
		if dec < inc {
			dec = inc + 1
		} else {
			dec = inc - 1
		}
	}
}
