// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the size and format of a render texture.
type TextureFormat struct {
	// Size of the texture.
	Size image.Point

	// Format is the pixel format.
	Format wgpu.TextureFormat
}

// NewTextureFormat returns a new TextureFormat with the given size
// and format.
func NewTextureFormat(format wgpu.TextureFormat, width, height int) *TextureFormat {
	return &TextureFormat{Size: image.Pt(width, height), Format: format}
}

func (tf *TextureFormat) String() string {
	return fmt.Sprintf("size: %v format: %s", tf.Size, tf.Format.String())
}

// Set sets the size and format.
func (tf *TextureFormat) Set(width, height int, format wgpu.TextureFormat) {
	tf.Size = image.Pt(width, height)
	tf.Format = format
}

// Bounds returns the rectangle for the texture size.
func (tf *TextureFormat) Bounds() image.Rectangle {
	return image.Rectangle{Max: tf.Size}
}

// IsSRGB reports whether the given format is an sRGB-encoded
// presentable format.
func IsSRGB(format wgpu.TextureFormat) bool {
	switch format {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}

// PreferredFormat returns the presentation format to use from the
// formats reported by the surface: the first sRGB-capable one, else
// the first reported. Errors if the surface reports no formats.
func PreferredFormat(formats []wgpu.TextureFormat) (wgpu.TextureFormat, error) {
	if len(formats) == 0 {
		return wgpu.TextureFormatUndefined, errors.New("gpu: surface reports no texture formats")
	}
	for _, ft := range formats {
		if IsSRGB(ft) {
			return ft, nil
		}
	}
	return formats[0], nil
}
