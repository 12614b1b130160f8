// Copyright (c) 2026, The webglot3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

// CoordinateSystems are the ways the three components of a surface
// expression are interpreted as a 3D position. The first two
// components are the swept parameters and the third is the computed
// coordinate: height in Cartesian, radius in the curved systems.
type CoordinateSystems int32 //enums:enum

const (
	// Cartesian interprets the components directly as (x, y, z).
	Cartesian CoordinateSystems = iota

	// Cylindrical interprets the components as (theta, z, radius):
	// position is (radius*cos(theta), radius*sin(theta), z).
	Cylindrical

	// Spherical interprets the components as (theta, phi, radius):
	// position is (radius*sin(phi)*cos(theta),
	// radius*sin(phi)*sin(theta), radius*cos(phi)).
	Spherical
)
