// Copyright (c) 2026, The webglot3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface renders user-defined parametric surfaces as
// texture-mapped triangle-strip meshes on the GPU.
//
// A [Surface] owns a [gpu.GraphicsSystem] with one triangle-strip
// pipeline. The configured expression and coordinate system are
// spliced into the WGSL templates (package shader) to make the
// program, and the parameter domain is tessellated (package mesh)
// into the position, texture-coordinate and index buffers.
// Init binds the graphics context and builds everything once,
// Refresh rebuilds the mesh for a new domain, and Draw performs
// one indexed draw of the full strip.
package surface

import (
	"fmt"
	"image/color"
	"sync"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/slicesx"
	"cogentcore.org/core/gpu"
	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/imclab/webglot3d/mesh"
	"github.com/imclab/webglot3d/shader"
)

// DefaultExpr is the surface expression used when none is configured:
// a traveling wave over the unit domain.
const DefaultExpr = "u, v, sin(10.0 * u + t) * cos(10.0 * v + t) / 10.0"

// ErrNotInitialized is returned by operations that require
// a prior successful [Surface.Init].
var ErrNotInitialized = errors.New("surface: not initialized: call Init first")

// Primitive is the lifecycle shared by renderable primitives:
// bind the graphics context and build GPU resources once,
// rebuild the data for a new domain on demand, and draw each frame.
type Primitive interface {

	// Init binds the GPU and render target and builds the
	// program, mesh and texture. Call exactly once.
	Init(gp *gpu.GPU, rd gpu.Renderer, dom mesh.Domain) error

	// Refresh fully rebuilds the mesh and texture for the domain.
	Refresh(dom mesh.Domain) error

	// Draw renders the primitive in one render pass.
	Draw() error

	// Release releases all GPU resources.
	Release()
}

// Config are the construction parameters for a [Surface].
// The zero value is usable: NewSurface fills unset fields
// from Defaults.
type Config struct {

	// Expr is the surface expression: three comma-separated WGSL
	// scalar expressions of u, v, t and any declared Params.
	Expr string

	// Coords selects how the three expression components are
	// interpreted as a position.
	Coords shader.CoordinateSystems

	// Segs is the number of segments per domain edge.
	// Must be from 1 to [mesh.MaxSegs].
	Segs int

	// Repeat is the number of texture repeats across the domain.
	Repeat math32.Vector2

	// TextureFile is an optional image file for the surface texture.
	// When empty, or if the file cannot be read, the built-in
	// [DefaultTexture] is used.
	TextureFile string

	// Params are the names of scalar parameters available to the
	// expression, settable at runtime via [Surface.SetParam].
	// At most [shader.MaxParams].
	Params []string
}

func (cf *Config) Defaults() {
	cf.Expr = DefaultExpr
	cf.Coords = shader.Cartesian
	cf.Segs = mesh.DefaultSegs
	cf.Repeat = math32.Vec2(mesh.DefaultRepeat, mesh.DefaultRepeat)
}

// Surface renders one parametric surface. Construct with
// [NewSurface], call [Surface.Init] once a GPU and render target
// are available, [Surface.Refresh] when the domain changes, and
// [Surface.Draw] every frame.
type Surface struct {

	// Config holds the construction parameters. After Init,
	// changes take effect only through the Set* methods.
	Config Config

	// Template is the shader template pair the program is built
	// from. Set before Init to use custom templates; nil means
	// [shader.DefaultTemplate].
	Template *shader.Template

	// System is the drawing system, created in Init.
	System *gpu.GraphicsSystem

	// Domain is the parameter domain from the last Init or Refresh.
	Domain mesh.Domain

	// Camera holds the model, view and projection matrices.
	// Uploaded by Init and [Surface.SetCamera].
	Camera Camera

	// pipeline is the one triangle-strip pipeline of the System.
	pipeline *gpu.GraphicsPipeline

	// mesh staging arrays, reused across Refresh calls.
	pos math32.ArrayF32
	tc  math32.ArrayF32
	idx []uint16

	// uniforms is the CPU mirror of the time + parameters uniform.
	uniforms paramsUniform

	// values for the buffers and texture owned by this surface.
	posVal, tcVal, idxVal  *gpu.Value
	camVal, prmVal, texVal *gpu.Value

	// use Lock, Unlock on Surface for all impl routines
	sync.Mutex
}

var _ Primitive = (*Surface)(nil)

// paramsUniform is the uniform block mirror for the time coordinate
// and the named expression parameters: one f32 padded out to 16
// bytes, then two vec4 parameter slots.
type paramsUniform struct {
	Time float32
	pad0 float32
	pad1 float32
	pad2 float32
	P0   math32.Vector4
	P1   math32.Vector4
}

// setParam sets parameter slot i (0..7) across the two vec4 slots.
func (pu *paramsUniform) setParam(i int, val float32) {
	vc := &pu.P0
	if i >= 4 {
		vc = &pu.P1
		i -= 4
	}
	switch i {
	case 0:
		vc.X = val
	case 1:
		vc.Y = val
	case 2:
		vc.Z = val
	case 3:
		vc.W = val
	}
}

// NewSurface returns a new Surface with given configuration,
// which may be nil for defaults. Unset Expr, Segs and Repeat
// fall back to their defaults. No GPU resources are allocated
// until [Surface.Init].
func NewSurface(cf *Config) *Surface {
	sf := &Surface{}
	if cf != nil {
		sf.Config = *cf
	} else {
		sf.Config.Defaults()
	}
	if sf.Config.Expr == "" {
		sf.Config.Expr = DefaultExpr
	}
	if sf.Config.Segs == 0 {
		sf.Config.Segs = mesh.DefaultSegs
	}
	if sf.Config.Repeat == (math32.Vector2{}) {
		sf.Config.Repeat = math32.Vec2(mesh.DefaultRepeat, mesh.DefaultRepeat)
	}
	sf.Camera.Defaults()
	return sf
}

// Init creates the graphics system on the given GPU and render
// target, builds and installs the shader program for the configured
// expression, and builds and uploads the mesh and texture for dom.
// The program is assembled and validated before any GPU resource is
// created, so a configuration error leaves the Surface untouched.
// Call exactly once, before any other operation.
func (sf *Surface) Init(gp *gpu.GPU, rd gpu.Renderer, dom mesh.Domain) (err error) {
	sf.Lock()
	defer sf.Unlock()
	if sf.System != nil {
		return errors.New("surface: already initialized")
	}
	if err = mesh.ValidSegs(sf.Config.Segs); err != nil {
		return err
	}
	if sf.Template == nil {
		sf.Template = shader.DefaultTemplate()
	}
	vtx, frg, err := sf.assemble(sf.Config.Expr)
	if err != nil {
		return err
	}

	sy := gpu.NewGraphicsSystem(gp, "surface", rd)
	defer func() {
		if err != nil {
			sy.Release()
			sf.System = nil
			sf.pipeline = nil
		}
	}()
	sf.System = sy
	pl := sy.AddGraphicsPipeline("surface")
	sf.pipeline = pl
	pl.SetCullMode(wgpu.CullModeNone)
	pl.SetTopology(gpu.TriangleStrip, true)
	// strip topology with indexed draws requires the index format
	// in the pipeline state
	pl.Primitive.StripIndexFormat = wgpu.IndexFormatUint16
	sy.SetClearColor(color.RGBA{50, 50, 50, 255})

	vsh := pl.AddShader("vertex")
	if err = vsh.OpenCode(vtx); err != nil {
		return err
	}
	pl.AddEntry(vsh, gpu.VertexShader, "vs_main")
	fsh := pl.AddShader("fragment")
	if err = fsh.OpenCode(frg); err != nil {
		return err
	}
	pl.AddEntry(fsh, gpu.FragmentShader, "fs_main")

	vgp := sy.Vars().AddVertexGroup()
	ugp := sy.Vars().AddGroup(gpu.Uniform, "Uniforms")
	tgp := sy.Vars().AddGroup(gpu.SampledTexture, "Texture")

	// vertex are dynamically sized in general, so using 0 here
	posv := vgp.Add("Pos", gpu.Float32Vector2, 0, gpu.VertexShader)
	tcv := vgp.Add("TexCoord", gpu.Float32Vector2, 0, gpu.VertexShader)
	// note: index goes last usually
	idxv := vgp.Add("Index", gpu.Uint16, 0, gpu.VertexShader)
	idxv.Role = gpu.Index

	camv := ugp.AddStruct("Camera", int(unsafe.Sizeof(Camera{})), 1, gpu.VertexShader)
	prmv := ugp.AddStruct("Params", int(unsafe.Sizeof(paramsUniform{})), 1, gpu.VertexShader)
	txv := tgp.Add("TexSampler", gpu.TextureRGBA32, 1, gpu.FragmentShader)

	vgp.SetNValues(1)
	ugp.SetNValues(1)
	tgp.SetNValues(1)
	sy.Config()

	sf.posVal = posv.Values.Values[0]
	sf.tcVal = tcv.Values.Values[0]
	sf.idxVal = idxv.Values.Values[0]
	sf.camVal = camv.Values.Values[0]
	sf.prmVal = prmv.Values.Values[0]
	sf.texVal = txv.Values.Values[0]

	sz := sy.Renderer.Render().Format.Size
	if sz.Y > 0 {
		sf.Camera.SetProjection(float32(sz.X) / float32(sz.Y))
	}
	if err = sf.updateCamera(); err != nil {
		return err
	}
	if err = sf.updateParams(); err != nil {
		return err
	}
	return sf.refresh(dom)
}

// Refresh fully rebuilds the mesh for the given domain and reuploads
// the position, texture-coordinate and index buffers, replacing the
// prior buffers. The texture image is reacquired. The program is not
// touched. Requires a prior Init.
func (sf *Surface) Refresh(dom mesh.Domain) error {
	sf.Lock()
	defer sf.Unlock()
	if sf.System == nil {
		return ErrNotInitialized
	}
	return sf.refresh(dom)
}

func (sf *Surface) refresh(dom mesh.Domain) error {
	gr := mesh.NewGrid(dom, sf.Config.Segs)
	gr.Repeat = sf.Config.Repeat
	if err := gr.Validate(); err != nil {
		return err
	}
	nv, ni := gr.Size()
	sf.pos = math32.ArrayF32(slicesx.SetLength([]float32(sf.pos), 2*nv))
	sf.tc = math32.ArrayF32(slicesx.SetLength([]float32(sf.tc), 2*nv))
	sf.idx = slicesx.SetLength(sf.idx, ni)
	gr.Set(sf.pos, sf.tc, sf.idx)
	sf.Domain = dom

	if err := gpu.SetValueFrom(sf.posVal, []float32(sf.pos)); err != nil {
		return err
	}
	if err := gpu.SetValueFrom(sf.tcVal, []float32(sf.tc)); err != nil {
		return err
	}
	if err := gpu.SetValueFrom(sf.idxVal, sf.idx); err != nil {
		return err
	}
	sf.updateTexture()
	return nil
}

// Draw renders the surface to the target in one render pass:
// bind the pipeline and buffers, one indexed draw of the full strip.
// Mesh and program state are not mutated. Requires a prior Init.
func (sf *Surface) Draw() error {
	sf.Lock()
	defer sf.Unlock()
	if sf.System == nil {
		return ErrNotInitialized
	}
	sy := sf.System
	rp, err := sy.BeginRenderPass()
	if err != nil {
		return err
	}
	sf.pipeline.BindPipeline(rp)
	sf.pipeline.BindDrawIndexed(rp)
	rp.End()
	sy.EndRenderPass(rp)
	return nil
}

// SetExpr rebuilds the shader program for a new expression,
// leaving the mesh untouched. The new program is assembled and
// validated first; an assembly or validation error installs
// nothing and leaves the current program drawable. Config.Expr
// records the new expression only once its program is installed.
func (sf *Surface) SetExpr(expr string) error {
	sf.Lock()
	defer sf.Unlock()
	if sf.System == nil {
		return ErrNotInitialized
	}
	vtx, frg, err := sf.assemble(expr)
	if err != nil {
		return err
	}
	if err := sf.setProgram(vtx, frg); err != nil {
		return err
	}
	sf.Config.Expr = expr
	return nil
}

// assemble builds and validates both shader sources for expr.
// Nothing is installed: callers install only on success.
func (sf *Surface) assemble(expr string) (vtx, frg string, err error) {
	vtx, frg, err = sf.Template.Assemble(expr, sf.Config.Coords, sf.Config.Params)
	if err != nil {
		return "", "", err
	}
	if err = shader.Validate(vtx); err != nil {
		return "", "", err
	}
	if err = shader.Validate(frg); err != nil {
		return "", "", err
	}
	return vtx, frg, nil
}

// setProgram replaces both shader modules and rebuilds the render
// pipeline. The prior modules are released before the replacements
// are created, so at most one program is ever live.
func (sf *Surface) setProgram(vtx, frg string) error {
	pl := sf.pipeline
	vsh := pl.ShaderByName("vertex")
	vsh.Release()
	if err := vsh.OpenCode(vtx); err != nil {
		return err
	}
	fsh := pl.ShaderByName("fragment")
	fsh.Release()
	if err := fsh.OpenCode(frg); err != nil {
		return err
	}
	return pl.Config(true)
}

// SetCamera sets the camera matrices and uploads the uniform.
func (sf *Surface) SetCamera(cam *Camera) error {
	sf.Lock()
	defer sf.Unlock()
	if sf.System == nil {
		return ErrNotInitialized
	}
	sf.Camera = *cam
	return sf.updateCamera()
}

// SetTime sets the time coordinate t available to the expression.
func (sf *Surface) SetTime(tm float32) error {
	sf.Lock()
	defer sf.Unlock()
	if sf.System == nil {
		return ErrNotInitialized
	}
	sf.uniforms.Time = tm
	return sf.updateParams()
}

// SetParam sets the named expression parameter, which must be one
// of the configured Params names.
func (sf *Surface) SetParam(name string, value float32) error {
	sf.Lock()
	defer sf.Unlock()
	if sf.System == nil {
		return ErrNotInitialized
	}
	for i, p := range sf.Config.Params {
		if p != name {
			continue
		}
		sf.uniforms.setParam(i, value)
		return sf.updateParams()
	}
	return fmt.Errorf("surface: no parameter named %q", name)
}

func (sf *Surface) updateCamera() error {
	return gpu.SetValueFrom(sf.camVal, []Camera{sf.Camera})
}

func (sf *Surface) updateParams() error {
	return gpu.SetValueFrom(sf.prmVal, []paramsUniform{sf.uniforms})
}

// Release releases all GPU resources. The Surface cannot be used
// after this.
func (sf *Surface) Release() {
	sf.Lock()
	defer sf.Unlock()
	if sf.System == nil {
		return
	}
	sf.System.Release()
	sf.System = nil
	sf.pipeline = nil
	sf.posVal, sf.tcVal, sf.idxVal = nil, nil, nil
	sf.camVal, sf.prmVal, sf.texVal = nil, nil, nil
}
