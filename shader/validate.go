// Copyright (c) 2026, The webglot3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"

	"github.com/gogpu/naga"
)

// Validate compiles the given WGSL source, returning any compile
// error. Assembled programs are validated here, at assembly time, so
// a malformed expression surfaces before any GPU resource is touched;
// the device only ever receives sources that already compiled.
func Validate(src string) error {
	if _, err := naga.Compile(src); err != nil {
		return fmt.Errorf("shader: %w", err)
	}
	return nil
}
