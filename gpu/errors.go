// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrSurfaceLost indicates the surface and its resources were
	// lost (e.g., the window was moved to another GPU). Recoverable
	// by reconfiguring the surface at its current size.
	ErrSurfaceLost = errors.New("gpu: surface lost")

	// ErrSurfaceOutdated indicates the surface configuration no
	// longer matches the window (e.g., a resize raced the acquire).
	// Recoverable by reconfiguring the surface at its current size.
	ErrSurfaceOutdated = errors.New("gpu: surface outdated")

	// ErrSurfaceTimeout indicates the next texture was not available
	// in time. The frame should be dropped; the next acquire usually
	// succeeds.
	ErrSurfaceTimeout = errors.New("gpu: surface texture acquisition timed out")

	// ErrOutOfMemory indicates the driver could not allocate the
	// surface texture. Not recoverable.
	ErrOutOfMemory = errors.New("gpu: out of memory")
)

// SurfaceError classifies an error from surface texture acquisition
// into one of the surface error sentinels, wrapping the original.
// The binding reports acquire failures as opaque driver strings, so
// classification matches on the message text. Unrecognized errors
// are returned unchanged; nil returns nil.
func SurfaceError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "memory"):
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return fmt.Errorf("%w: %w", ErrSurfaceTimeout, err)
	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %w", ErrSurfaceOutdated, err)
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %w", ErrSurfaceLost, err)
	}
	return err
}
