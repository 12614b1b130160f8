// Copyright (c) 2026, The webglot3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestGridSize(t *testing.T) {
	for _, segs := range []int{1, 2, 3, 7, 16, 100, 255} {
		nv, ni := GridSize(segs)
		assert.Equal(t, (segs+1)*(segs+1), nv)
		assert.Equal(t, 1+segs*(2*segs+2), ni)
	}
}

func TestValidSegs(t *testing.T) {
	assert.NoError(t, ValidSegs(1))
	assert.NoError(t, ValidSegs(17))
	assert.NoError(t, ValidSegs(MaxSegs))
	assert.ErrorIs(t, ValidSegs(0), ErrSegsRange)
	assert.ErrorIs(t, ValidSegs(-1), ErrSegsRange)
	assert.ErrorIs(t, ValidSegs(MaxSegs+1), ErrSegsRange)
}

func TestGridPoints(t *testing.T) {
	gr := NewGrid(NewDomain(0, 1, 0, 1), 2)
	pos, tc, idx, err := gr.Build()
	assert.NoError(t, err)
	assert.Equal(t, 18, len(pos))
	assert.Equal(t, 18, len(tc))
	assert.Equal(t, 13, len(idx))

	want := []float32{0, 0, 0, 0.5, 0, 1, 0.5, 0, 0.5, 0.5, 0.5, 1, 1, 0, 1, 0.5, 1, 1}
	for i, w := range want {
		tolassert.Equal(t, w, pos[i])
	}
}

func TestGridTexCoords(t *testing.T) {
	for _, segs := range []int{1, 2, 5, 33} {
		gr := NewGrid(NewDomain(-2, 2, -1, 3), segs)
		_, tc, _, err := gr.Build()
		assert.NoError(t, err)
		n1 := segs + 1
		// s is 0 at i=0 and Repeat.X at i=segs
		tolassert.Equal(t, 0, tc[0])
		tolassert.Equal(t, DefaultRepeat, tc[2*segs*n1])
		// t is Repeat.Y at j=0 and 0 at j=segs: vertical flip
		tolassert.Equal(t, DefaultRepeat, tc[1])
		tolassert.Equal(t, 0, tc[2*segs+1])
	}
}

func TestInvertedDomain(t *testing.T) {
	gr := NewGrid(NewDomain(1, 0, 2, -2), 2)
	pos, _, _, err := gr.Build()
	assert.NoError(t, err)
	// u runs 1 down to 0, v runs 2 down to -2: mirrored, not an error
	tolassert.Equal(t, 1, pos[0])
	tolassert.Equal(t, 2, pos[1])
	n := len(pos)
	tolassert.Equal(t, 0, pos[n-2])
	tolassert.Equal(t, -2, pos[n-1])
}

func TestStripIndexes(t *testing.T) {
	assert.Equal(t, []uint16{0, 2, 1, 3, 3}, StripIndexes(1))
	assert.Equal(t, []uint16{0, 3, 1, 4, 2, 5, 5, 8, 4, 7, 3, 6, 6}, StripIndexes(2))
}

func TestStripProperties(t *testing.T) {
	for _, segs := range []int{1, 2, 3, 4, 8, 31} {
		idx := StripIndexes(segs)
		nv, ni := GridSize(segs)
		assert.Equal(t, ni, len(idx))
		for _, ix := range idx {
			assert.Less(t, int(ix), nv)
		}

		// one repeated stitch pair per row
		pairs := 0
		for i := 1; i < len(idx); i++ {
			if idx[i] == idx[i-1] {
				pairs++
			}
		}
		assert.Equal(t, segs, pairs)

		// strip census: 2*segs^2 proper triangles, and 2*segs-1
		// zero-area triangles from the repeated stitch indexes
		proper, degen := 0, 0
		for i := 2; i < len(idx); i++ {
			a, b, c := idx[i-2], idx[i-1], idx[i]
			if a == b || b == c || a == c {
				degen++
			} else {
				proper++
			}
		}
		assert.Equal(t, 2*segs*segs, proper)
		assert.Equal(t, 2*segs-1, degen)
	}
}

func TestMaxSegs(t *testing.T) {
	idx := StripIndexes(MaxSegs)
	nv, ni := GridSize(MaxSegs)
	assert.Equal(t, 65536, nv)
	assert.Equal(t, ni, len(idx))
	mx := 0
	for _, ix := range idx {
		if int(ix) >= nv {
			t.Fatalf("index %d out of range %d", ix, nv)
		}
		mx = max(mx, int(ix))
	}
	assert.Equal(t, nv-1, mx)
}

func TestBuildRejectsSegs(t *testing.T) {
	for _, segs := range []int{0, -3, 256, 1024} {
		gr := NewGrid(NewDomain(0, 1, 0, 1), segs)
		pos, tc, idx, err := gr.Build()
		assert.ErrorIs(t, err, ErrSegsRange)
		assert.Nil(t, pos)
		assert.Nil(t, tc)
		assert.Nil(t, idx)
	}
}
