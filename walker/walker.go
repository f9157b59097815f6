// SPDX-License-Identifier: GPL-2.0-or-later

// Package walker moves a first person viewpoint through a grid. The y axis
// is up: standing means touching the cell below, a bumped head means
// touching the cell above.
package walker

import (
	"github.com/trepidacious/hexahedron3/collision"
	"github.com/trepidacious/hexahedron3/cvars"
	"github.com/trepidacious/hexahedron3/math/vec"
)

// Params are the movement constants, in cells and seconds.
type Params struct {
	Speed   float32
	Jump    float32
	Gravity float32
}

// ParamsFromCvars reads walk_speed, walk_jump and walk_gravity.
func ParamsFromCvars() Params {
	return Params{
		Speed:   cvars.WalkSpeed.Value(),
		Jump:    cvars.WalkJump.Value(),
		Gravity: cvars.WalkGravity.Value(),
	}
}

// Input is what the walker wants to do on the next step.
type Input struct {
	// Move is the walk direction. Only x and z are used, the length does
	// not matter.
	Move vec.Vec3
	// Rise flies up for 1 and down for -1 regardless of gravity.
	Rise int
	// Jump only works when standing and is used up by the next step.
	Jump bool
}

type Walker struct {
	geom     collision.Geom
	velocity vec.Vec3
	input    Input
}

func New(g collision.Geom) *Walker {
	return &Walker{geom: g}
}

func (w *Walker) Geom() collision.Geom   { return w.geom }
func (w *Walker) Velocity() vec.Vec3     { return w.velocity }
func (w *Walker) SetVelocity(v vec.Vec3) { w.velocity = v }
func (w *Walker) Input() Input           { return w.input }
func (w *Walker) SetInput(in Input)      { w.input = in }
func (w *Walker) OnGround() bool         { return w.geom.Touching()[collision.Negative][vec.Y] }
func (w *Walker) HeadBumped() bool       { return w.geom.Touching()[collision.Positive][vec.Y] }

// Step runs one frame of dt seconds.
func (w *Walker) Step(dt float32, p Params) {
	v := w.velocity

	walk := vec.Vec3{X: w.input.Move.X, Z: w.input.Move.Z}.Normalize().Scale(p.Speed)
	v.X = walk.X
	v.Z = walk.Z

	if !w.OnGround() {
		v.Y -= dt * p.Gravity
	} else if v.Y < 0 {
		v.Y = 0
	}
	if w.HeadBumped() && v.Y > 0 {
		v.Y = 0
	}

	switch {
	case w.input.Rise > 0:
		v.Y = p.Speed
	case w.input.Rise < 0:
		v.Y = -p.Speed
	}
	if w.input.Jump && w.OnGround() {
		v.Y = p.Jump
	}
	w.input.Jump = false

	w.velocity = w.geom.SlideAlong(v, dt)
}
