// SPDX-License-Identifier: GPL-2.0-or-later

// Package gametime is the fixed step simulation clock.
package gametime

import (
	"github.com/trepidacious/hexahedron3/cvars"
	"github.com/trepidacious/hexahedron3/math"
)

const (
	minFrameTime = 0.001
	maxFrameTime = 0.1
)

type GameTime struct {
	time       float64
	frameTime  float32
	frameCount int
}

func (h *GameTime) Time() float64      { return h.time }
func (h *GameTime) FrameTime() float32 { return h.frameTime }
func (h *GameTime) FrameCount() int    { return h.frameCount }

// Reset puts the clock back to time zero.
func (h *GameTime) Reset() {
	*h = GameTime{}
}

// Set restores a clock, as read from a snapshot.
func (h *GameTime) Set(frameCount int, time float64) {
	h.frameCount = frameCount
	h.time = time
}

// Advance starts a new frame and returns its length in seconds, taken from
// host_framerate and clamped to a sane range.
func (h *GameTime) Advance() float32 {
	h.frameTime = math.Clamp(minFrameTime, cvars.HostFrameRate.Value(), maxFrameTime)
	h.time += float64(h.frameTime)
	h.frameCount++
	return h.frameTime
}
