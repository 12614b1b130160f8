// Copyright (c) 2026, The webglot3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssemble(t *testing.T) {
	tm := DefaultTemplate()
	vtx, frg, err := tm.Assemble("u, v, sin(u + t)", Cartesian, nil)
	assert.NoError(t, err)
	assert.Contains(t, vtx, "vec3<f32>(u, v, sin(u + t))")
	assert.NotContains(t, vtx, ExpressionToken)
	// Cartesian leaves both transform blocks disabled
	assert.Contains(t, vtx, transformMarkers[Cylindrical])
	assert.Contains(t, vtx, transformMarkers[Spherical])
	assert.Equal(t, tm.Fragment, frg)

	// deterministic: same inputs, identical output
	vtx2, frg2, err := tm.Assemble("u, v, sin(u + t)", Cartesian, nil)
	assert.NoError(t, err)
	assert.Equal(t, vtx, vtx2)
	assert.Equal(t, frg, frg2)
}

func TestAssembleOnce(t *testing.T) {
	tm := &Template{Vertex: "a <EXPRESSION> b <EXPRESSION> c"}
	vtx, _, err := tm.Assemble("x", Cartesian, nil)
	assert.NoError(t, err)
	// only the first occurrence is replaced
	assert.Equal(t, 1, strings.Count(vtx, ExpressionToken))
	assert.Equal(t, "a x b <EXPRESSION> c", vtx)
}

func TestAssembleCylindrical(t *testing.T) {
	tm := DefaultTemplate()
	vtx, _, err := tm.Assemble("u, v, 1.0", Cylindrical, nil)
	assert.NoError(t, err)
	assert.NotContains(t, vtx, transformMarkers[Cylindrical])
	assert.Contains(t, vtx, transformMarkers[Spherical])
	// the cylindrical block is now live code
	assert.Contains(t, vtx, "\n    p = vec3<f32>(p.z * cos(p.x), p.z * sin(p.x), p.y);")
}

func TestAssembleSpherical(t *testing.T) {
	tm := DefaultTemplate()
	vtx, _, err := tm.Assemble("u, v, 1.0", Spherical, nil)
	assert.NoError(t, err)
	assert.NotContains(t, vtx, transformMarkers[Spherical])
	assert.Contains(t, vtx, transformMarkers[Cylindrical])
	assert.Contains(t, vtx, "\n    p = vec3<f32>(p.z * sin(p.y) * cos(p.x)")
}

func TestAssembleErrors(t *testing.T) {
	tm := &Template{Vertex: "no token here"}
	_, _, err := tm.Assemble("u, v, 1.0", Cartesian, nil)
	assert.ErrorIs(t, err, ErrExpressionToken)

	tm = DefaultTemplate()
	_, _, err = tm.Assemble("u, v, 1.0", CoordinateSystems(7), nil)
	assert.Error(t, err)

	tm = &Template{Vertex: "vec3<f32>(<EXPRESSION>)"}
	_, _, err = tm.Assemble("u, v, 1.0", Cylindrical, nil)
	assert.ErrorIs(t, err, ErrTransformBlock)

	_, _, err = tm.Assemble("a, v, 1.0", Cartesian, []string{"a"})
	assert.ErrorIs(t, err, ErrParamsToken)
}

func TestParamBindings(t *testing.T) {
	pb, err := ParamBindings([]string{"amp", "freq"})
	assert.NoError(t, err)
	assert.Contains(t, pb, "let amp = params.p0.x;")
	assert.Contains(t, pb, "let freq = params.p0.y;")

	pb, err = ParamBindings(nil)
	assert.NoError(t, err)
	assert.Equal(t, "", pb)

	all := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	pb, err = ParamBindings(all)
	assert.NoError(t, err)
	assert.Contains(t, pb, "let h = params.p1.w;")

	_, err = ParamBindings(append(all, "i"))
	assert.ErrorIs(t, err, ErrParams)
}

func TestAssembleParams(t *testing.T) {
	tm := DefaultTemplate()
	vtx, _, err := tm.Assemble("u, v, amp * sin(u)", Cartesian, []string{"amp"})
	assert.NoError(t, err)
	assert.Contains(t, vtx, "let amp = params.p0.x;")
	assert.NotContains(t, vtx, ParamsToken)
}

func TestValidate(t *testing.T) {
	tm := DefaultTemplate()
	for _, cs := range CoordinateSystemsValues() {
		vtx, frg, err := tm.Assemble("u, v, amp * sin(freq * u + t)", cs, []string{"amp", "freq"})
		assert.NoError(t, err)
		assert.NoError(t, Validate(vtx), cs.String())
		assert.NoError(t, Validate(frg), cs.String())
	}

	// a malformed expression surfaces as a compile error
	vtx, _, err := tm.Assemble("u v", Cartesian, nil)
	assert.NoError(t, err)
	assert.Error(t, Validate(vtx))
}

func TestCoordinateSystems(t *testing.T) {
	assert.Equal(t, "Cylindrical", Cylindrical.String())
	var cs CoordinateSystems
	assert.NoError(t, cs.SetString("Spherical"))
	assert.Equal(t, Spherical, cs)
	assert.Error(t, cs.SetString("Hyperbolic"))
}
