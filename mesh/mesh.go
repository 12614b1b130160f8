// Copyright (c) 2026, The webglot3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh builds parametric surface meshes: a rectangular (u,v)
// parameter domain is sampled at a given resolution and tessellated as
// one continuous triangle strip with repeating texture coordinates.
// Vertex positions are parameter-space coordinates; evaluating the
// surface function itself is the vertex shader's job, so the mesh has
// no dependency on the surface being plotted, or on the GPU.
package mesh

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

const (
	// MaxSegs is the maximum number of segments along each axis:
	// a (MaxSegs+1) x (MaxSegs+1) grid is the largest whose last
	// vertex is still addressable by a 16-bit index.
	MaxSegs = 255

	// DefaultSegs is the default number of segments along each axis.
	DefaultSegs = MaxSegs

	// DefaultRepeat is the default number of texture repeats
	// across each axis of the grid.
	DefaultRepeat = 5
)

// ErrSegsRange is returned when a grid resolution cannot be addressed
// with 16-bit indexes.
var ErrSegsRange = errors.New("mesh: Segs must be from 1 to 255 to fit 16-bit indexes")

// Domain is the rectangular parameter region that a surface is
// evaluated over. An inverted domain (min > max) is not an error:
// it produces a mirrored or zero-area mesh.
type Domain struct {
	UMin, UMax float32
	VMin, VMax float32
}

// NewDomain returns a Domain with the given extents.
func NewDomain(umin, umax, vmin, vmax float32) Domain {
	return Domain{UMin: umin, UMax: umax, VMin: vmin, VMax: vmax}
}

// Size returns the extent of the domain along each parameter axis.
func (dm *Domain) Size() (du, dv float32) {
	return dm.UMax - dm.UMin, dm.VMax - dm.VMin
}

// GridSize returns the number of vertex points and strip indexes for a
// grid with the given number of segments along each axis: (segs+1)^2
// vertexes, and 1 + segs*(2*segs+2) indexes for the single strip.
func GridSize(segs int) (numVertex, numIndex int) {
	numVertex = (segs + 1) * (segs + 1)
	numIndex = 1 + segs*(2*segs+2)
	return
}

// ValidSegs checks that the given number of segments per axis is
// addressable with 16-bit indexes, before any mesh data is generated.
func ValidSegs(segs int) error {
	if segs < 1 || segs > MaxSegs {
		return fmt.Errorf("%w: got %d", ErrSegsRange, segs)
	}
	return nil
}
