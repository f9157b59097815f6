// SPDX-License-Identifier: GPL-2.0-or-later

package grid

import (
	"github.com/trepidacious/hexahedron3/math/vec"
	"github.com/trepidacious/hexahedron3/rand"
)

// Generate occupies each in-bounds cell of g with probability fill. Whether
// a cell is occupied only depends on seed and its coordinate, so a larger
// grid generated with the same seed contains the smaller one.
func Generate(g Writable, fill float32, seed uint32) {
	size := Bounds(g)
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			for z := 0; z < size.Z; z++ {
				c := vec.Vec3i{X: x, Y: y, Z: z}
				if rand.ChanceAt(seed, c, fill) {
					g.SetPresence(c, true)
				}
			}
		}
	}
}
