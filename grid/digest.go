// SPDX-License-Identifier: GPL-2.0-or-later

package grid

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/trepidacious/hexahedron3/math/vec"
)

// Digest fingerprints the size and occupancy of g. Grids with equal
// contents have equal digests regardless of how they are stored.
func Digest(g Grid) uint64 {
	h := xxhash.New()
	var buf [12]byte
	put := func(c vec.Vec3i) {
		binary.LittleEndian.PutUint32(buf[0:], uint32(int32(c.X)))
		binary.LittleEndian.PutUint32(buf[4:], uint32(int32(c.Y)))
		binary.LittleEndian.PutUint32(buf[8:], uint32(int32(c.Z)))
		_, _ = h.Write(buf[:])
	}
	put(Bounds(g))
	each(g, put)
	return h.Sum64()
}
