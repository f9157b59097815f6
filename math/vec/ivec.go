// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3i is an integer vector, used for grid cell coordinates.
type Vec3i struct {
	X, Y, Z int
}

// Floor returns the cell containing v, flooring each axis.
func Floor(v Vec3) Vec3i {
	return Vec3i{
		X: int(math32.Floor(v.X)),
		Y: int(math32.Floor(v.Y)),
		Z: int(math32.Floor(v.Z)),
	}
}

func (v Vec3i) Idx(i int) int {
	switch i {
	default:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
}

func (v *Vec3i) Set(i int, n int) {
	switch i {
	default:
		v.X = n
	case 1:
		v.Y = n
	case 2:
		v.Z = n
	}
}

// With returns a copy of v with the component on axis i replaced.
func (v Vec3i) With(i int, n int) Vec3i {
	v.Set(i, n)
	return v
}

// Vec3 converts to float coordinates of the cell's minimum corner.
func (v Vec3i) Vec3() Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (v Vec3i) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// AddI returns a + b
func AddI(a, b Vec3i) Vec3i {
	return Vec3i{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// SubI returns a - b
func SubI(a, b Vec3i) Vec3i {
	return Vec3i{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// MinMaxI returns the componentwise minimum and maximum of a and b.
func MinMaxI(a, b Vec3i) (Vec3i, Vec3i) {
	lo, hi := a, b
	for i := 0; i < 3; i++ {
		if b.Idx(i) < a.Idx(i) {
			lo.Set(i, b.Idx(i))
			hi.Set(i, a.Idx(i))
		}
	}
	return lo, hi
}

// Scale returns v with every component multiplied by n.
func (v Vec3i) Scale(n int) Vec3i {
	return Vec3i{v.X * n, v.Y * n, v.Z * n}
}

func (v Vec3i) Array() [3]int {
	return [3]int{v.X, v.Y, v.Z}
}
