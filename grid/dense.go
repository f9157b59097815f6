// SPDX-License-Identifier: GPL-2.0-or-later

package grid

import (
	"github.com/trepidacious/hexahedron3/math/vec"
)

var _ Writable = (*Dense)(nil)

// Dense stores one bit per cell. Cells outside [0, size) are empty and
// writes to them are dropped.
type Dense struct {
	size vec.Vec3i
	bits []uint64
}

func NewDense(size vec.Vec3i) *Dense {
	n := size.X * size.Y * size.Z
	if n < 0 {
		n = 0
	}
	return &Dense{
		size: size,
		bits: make([]uint64, (n+63)/64),
	}
}

func (d *Dense) index(c vec.Vec3i) (int, bool) {
	if !InBounds(d.size, c) {
		return 0, false
	}
	return (c.X*d.size.Y+c.Y)*d.size.Z + c.Z, true
}

func (d *Dense) Presence(c vec.Vec3i) bool {
	i, ok := d.index(c)
	if !ok {
		return false
	}
	return d.bits[i/64]&(1<<(i%64)) != 0
}

func (d *Dense) SetPresence(c vec.Vec3i, p bool) {
	i, ok := d.index(c)
	if !ok {
		return
	}
	if p {
		d.bits[i/64] |= 1 << (i % 64)
	} else {
		d.bits[i/64] &^= 1 << (i % 64)
	}
}

func (d *Dense) Size(axis int) int {
	return d.size.Idx(axis)
}
