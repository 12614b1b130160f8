// Copyright (c) 2026, The webglot3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shader assembles the WGSL programs that evaluate parametric
// surfaces on the GPU: a caller-supplied expression and a coordinate
// system selector are spliced into shader templates, and the result
// is compiled for validation before it ever reaches the device.
package shader

//go:generate core generate

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"cogentcore.org/core/base/errors"
)

//go:embed shaders/*.wgsl
var shaders embed.FS

const (
	// ExpressionToken marks where the surface expression is spliced
	// into the vertex template. Exactly the first occurrence is
	// replaced; the token must be present.
	ExpressionToken = "<EXPRESSION>"

	// ParamsToken marks where generated parameter bindings are
	// spliced into the vertex template.
	ParamsToken = "//PARAMETERS//"

	// MaxParams is the number of named scalar parameters available
	// to an expression: two vec4 uniform slots.
	MaxParams = 8
)

// transformMarkers guard the coordinate transform blocks in the
// templates. Every guarded line starts with its marker, so a block
// reads as comments until Assemble strips the marker of the selected
// system, leaving live code.
var transformMarkers = map[CoordinateSystems]string{
	Cylindrical: "//CYLINDRICAL//",
	Spherical:   "//SPHERICAL//",
}

var (
	// ErrExpressionToken means the vertex template cannot receive an
	// expression, so no program can be assembled from it.
	ErrExpressionToken = errors.New("shader: vertex template does not contain the expression token")

	// ErrTransformBlock means the templates have no guarded block for
	// the selected coordinate system.
	ErrTransformBlock = errors.New("shader: no transform block for coordinate system")

	// ErrParams means more parameter names were given than the params
	// uniform has slots for.
	ErrParams = errors.New("shader: too many parameter names")

	// ErrParamsToken means parameter names were given but the vertex
	// template has nowhere to bind them.
	ErrParamsToken = errors.New("shader: vertex template does not contain the params token")
)

// Template holds the vertex and fragment WGSL template sources that
// [Template.Assemble] splices a surface expression into.
type Template struct {
	Vertex   string
	Fragment string
}

// DefaultTemplate returns the built-in surface templates.
func DefaultTemplate() *Template {
	tm, err := OpenTemplateFS(shaders, "shaders/surface.wgsl", "shaders/texture.wgsl")
	errors.Log(err)
	return tm
}

// OpenTemplateFS loads vertex and fragment templates by path from the
// given filesystem.
func OpenTemplateFS(fsys fs.FS, vertexFile, fragmentFile string) (*Template, error) {
	vb, err := fs.ReadFile(fsys, vertexFile)
	if err != nil {
		return nil, errors.Log(err)
	}
	fb, err := fs.ReadFile(fsys, fragmentFile)
	if err != nil {
		return nil, errors.Log(err)
	}
	return &Template{Vertex: string(vb), Fragment: string(fb)}, nil
}

// Assemble splices the given surface expression and parameter names
// into the templates and enables the transform block for the selected
// coordinate system, returning the final vertex and fragment sources.
// The expression is spliced verbatim, exactly once; its syntax is
// checked only by compilation (see [Validate]). The fragment template
// passes through unchanged unless it also contains transform blocks.
// Assemble is deterministic: the same inputs produce identical
// sources.
func (tm *Template) Assemble(expr string, coords CoordinateSystems, params []string) (vertex, fragment string, err error) {
	if !strings.Contains(tm.Vertex, ExpressionToken) {
		return "", "", ErrExpressionToken
	}
	if coords < 0 || coords >= CoordinateSystemsN {
		return "", "", fmt.Errorf("shader: unknown coordinate system: %d", coords)
	}
	pb, err := ParamBindings(params)
	if err != nil {
		return "", "", err
	}
	if len(params) > 0 && !strings.Contains(tm.Vertex, ParamsToken) {
		return "", "", ErrParamsToken
	}
	vertex = strings.Replace(tm.Vertex, ExpressionToken, expr, 1)
	vertex = strings.Replace(vertex, ParamsToken, pb, 1)
	fragment = tm.Fragment
	if mk, has := transformMarkers[coords]; has {
		if !strings.Contains(vertex, mk) {
			return "", "", fmt.Errorf("%w: %s", ErrTransformBlock, coords)
		}
		vertex = strings.ReplaceAll(vertex, mk, "")
		fragment = strings.ReplaceAll(fragment, mk, "")
	}
	return vertex, fragment, nil
}

// paramFields are the components of the params uniform that parameter
// names bind to, in order.
var paramFields = [MaxParams]string{"p0.x", "p0.y", "p0.z", "p0.w", "p1.x", "p1.y", "p1.z", "p1.w"}

// ParamBindings returns WGSL let bindings making the given parameter
// names available to the expression, each bound in order to one
// component of the params uniform. At most MaxParams names fit.
func ParamBindings(params []string) (string, error) {
	if len(params) > MaxParams {
		return "", fmt.Errorf("%w: %d > %d", ErrParams, len(params), MaxParams)
	}
	lines := make([]string, len(params))
	for i, nm := range params {
		lines[i] = fmt.Sprintf("let %s = params.%s;", nm, paramFields[i])
	}
	return strings.Join(lines, "\n    "), nil
}
