// Copyright (c) 2026, The webglot3d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/gpu"

	_ "golang.org/x/image/webp" // webp texture decoding
)

// DefaultTexture returns the built-in texture used when no file is
// configured: an 8x8 two-tone checkerboard.
func DefaultTexture() *image.RGBA {
	const n = 8
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	light := color.RGBA{235, 235, 235, 255}
	dark := color.RGBA{40, 70, 160, 255}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}

// textureImage returns the image for the configured texture file,
// or the built-in default if no file is set or it cannot be read.
func (sf *Surface) textureImage() image.Image {
	fnm := sf.Config.TextureFile
	if fnm == "" {
		return DefaultTexture()
	}
	dfs, fn, err := fsx.DirFS(fnm)
	if err != nil {
		slog.Error("surface: texture file not found", "file", fnm, "err", err)
		return DefaultTexture()
	}
	img, _, err := imagex.OpenFS(dfs, fn)
	if err != nil {
		slog.Error("surface: texture open failed", "file", fnm, "err", err)
		return DefaultTexture()
	}
	return img
}

// updateTexture uploads the texture image, replacing any prior
// texture. The sampler repeats in both directions so the Repeat
// texture coordinates tile.
func (sf *Surface) updateTexture() {
	img := sf.textureImage()
	// sampler settings must be in place before the image is set
	sf.texVal.Texture.Sampler.UMode = gpu.Repeat
	sf.texVal.Texture.Sampler.VMode = gpu.Repeat
	sf.texVal.SetFromGoImage(img, 0)
}
