// SPDX-License-Identifier: GPL-2.0-or-later

// Package grid holds three dimensional lattices of unit cells that are
// either occupied or empty.
//
// A grid is read only while movers sweep through it. Writes must happen in a
// separate phase, never during a Slide.
package grid

import (
	"github.com/trepidacious/hexahedron3/math/vec"
)

// Grid is the occupancy query used by collision.
type Grid interface {
	// Presence reports whether cell c is occupied. Any coordinate may be
	// queried; cells outside the grid's bounds are empty.
	Presence(c vec.Vec3i) bool
	// Size returns the number of cells on axis, starting at cell 0.
	Size(axis int) int
}

// Spanner is implemented by grids with a spatial index. EmptySpan returns an
// inclusive box of cells lo..hi that contains c and holds no occupied cell.
// ok is false if no such box is known beyond checking c itself.
type Spanner interface {
	EmptySpan(c vec.Vec3i) (lo, hi vec.Vec3i, ok bool)
}

// Writable grids can be edited between simulation steps.
type Writable interface {
	Grid
	SetPresence(c vec.Vec3i, p bool)
}

// Bounds returns the size of g as a vector.
func Bounds(g Grid) vec.Vec3i {
	return vec.Vec3i{X: g.Size(vec.X), Y: g.Size(vec.Y), Z: g.Size(vec.Z)}
}

// InBounds reports whether c is inside [0, size) on every axis.
func InBounds(size, c vec.Vec3i) bool {
	for i := 0; i < 3; i++ {
		if c.Idx(i) < 0 || c.Idx(i) >= size.Idx(i) {
			return false
		}
	}
	return true
}

// FillBox sets every cell in the inclusive box a..b.
func FillBox(g Writable, a, b vec.Vec3i, p bool) {
	lo, hi := vec.MinMaxI(a, b)
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				g.SetPresence(vec.Vec3i{X: x, Y: y, Z: z}, p)
			}
		}
	}
}

// Count returns the number of occupied cells inside the bounds of g.
func Count(g Grid) int {
	n := 0
	each(g, func(c vec.Vec3i) {
		n++
	})
	return n
}

// each calls f for every occupied cell in x, y, z order.
func each(g Grid, f func(c vec.Vec3i)) {
	size := Bounds(g)
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			for z := 0; z < size.Z; z++ {
				c := vec.Vec3i{X: x, Y: y, Z: z}
				if g.Presence(c) {
					f(c)
				}
			}
		}
	}
}
