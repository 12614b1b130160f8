// Copyright (c) 2026, The webglot3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "cogentcore.org/core/math32"

// Camera holds the standard model, view and projection matrices,
// uploaded as one uniform struct.
type Camera struct {
	Model      math32.Matrix4
	View       math32.Matrix4
	Projection math32.Matrix4
}

// Defaults sets an identity model, a view looking at the center of
// the unit domain from z = 2, and a standard perspective projection.
func (cm *Camera) Defaults() {
	cm.Model.SetIdentity()
	cm.SetView(math32.Vec3(0.5, 0.5, 2), math32.Vec3(0.5, 0.5, 0), math32.Vec3(0, 1, 0))
	cm.Projection.SetPerspective(45, 1.5, 0.01, 100)
}

// SetView sets the view matrix looking from pos toward target with
// the given up direction.
func (cm *Camera) SetView(pos, target, up math32.Vector3) {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(pos, target, up))
	var cview math32.Matrix4
	cview.SetTransform(pos, lookq, math32.Vec3(1, 1, 1))
	view, _ := cview.Inverse()
	cm.View.CopyFrom(view)
}

// SetProjection sets a 45 degree perspective projection for the
// given aspect ratio (width / height).
func (cm *Camera) SetProjection(aspect float32) {
	cm.Projection.SetPerspective(45, aspect, 0.01, 100)
}
