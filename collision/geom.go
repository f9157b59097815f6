// SPDX-License-Identifier: GPL-2.0-or-later

// Package collision moves points and other geoms through a grid of unit cells, reporting
// every contact with an occupied cell.
//
// Cells are assumed to cover exact units, so every boundary a geom can hit
// is an integer plane. Geoms keep an integer cell index next to their
// float position; at an exact integer position the index decides which
// cell the geom is in, the same way the sign of zero does.
package collision

import (
	"github.com/trepidacious/hexahedron3/grid"
	"github.com/trepidacious/hexahedron3/math/vec"
)

// Directions, the first index of the touching and aligned matrices.
const (
	Negative = 0
	Positive = 1
)

// Geom is a body that can be slid through a grid.
type Geom interface {
	// Slide traces the geom along velocity for up to maxTime, notifying r
	// of every collision until r asks to stop.
	Slide(velocity vec.Vec3, maxTime float32, r Receiver)
	// SlideAlong moves for up to maxTime, dropping the velocity component
	// of every axis it hits. It returns the remaining velocity.
	SlideAlong(velocity vec.Vec3, maxTime float32) vec.Vec3
	// Touching is indexed [direction][axis]. [Negative][vec.Y] means the
	// geom rests on a cell below it.
	Touching() *[2][3]bool
	// Aligned is indexed like Touching and is true when the geom sits
	// exactly on a grid plane in that direction, occupied or not.
	Aligned() *[2][3]bool
	Position() vec.Vec3
	Grid() grid.Grid
}

// Receiver is told about collisions during Slide.
type Receiver interface {
	// AcceptCollision is called once per collision. elapsed is the time
	// since the start of the slide, axis the axis of the hit plane.
	// Returning false stops the slide where it is.
	AcceptCollision(elapsed float32, position vec.Vec3, axis int, center vec.Vec3) bool
}

// ReceiverFunc adapts a function to Receiver.
type ReceiverFunc func(elapsed float32, position vec.Vec3, axis int, center vec.Vec3) bool

func (f ReceiverFunc) AcceptCollision(elapsed float32, position vec.Vec3, axis int, center vec.Vec3) bool {
	return f(elapsed, position, axis, center)
}

// Direction maps a heading sign to Negative or Positive.
func Direction(heading int) int {
	if heading > 0 {
		return Positive
	}
	return Negative
}
