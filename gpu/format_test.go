// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestPreferredFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []wgpu.TextureFormat
		want    wgpu.TextureFormat
		wantErr bool
	}{
		{"none", nil, wgpu.TextureFormatUndefined, true},
		{"srgb first", []wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatBGRA8Unorm}, wgpu.TextureFormatBGRA8UnormSrgb, false},
		{"srgb later", []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatRGBA8UnormSrgb}, wgpu.TextureFormatRGBA8UnormSrgb, false},
		{"no srgb", []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatRGBA8Unorm}, wgpu.TextureFormatBGRA8Unorm, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PreferredFormat(tt.formats)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSRGB(t *testing.T) {
	assert.True(t, IsSRGB(wgpu.TextureFormatRGBA8UnormSrgb))
	assert.True(t, IsSRGB(wgpu.TextureFormatBGRA8UnormSrgb))
	assert.False(t, IsSRGB(wgpu.TextureFormatBGRA8Unorm))
	assert.False(t, IsSRGB(wgpu.TextureFormatRGBA8Unorm))
}
