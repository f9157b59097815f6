// SPDX-License-Identifier: GPL-2.0-or-later

// Package rand hashes integers into reproducible pseudo random values. A
// cell's value only depends on the seed and its coordinate, so a grid can
// be generated in any order, or a piece at a time, with the same result.
package rand

import (
	"github.com/trepidacious/hexahedron3/math/vec"
)

// Per-axis multipliers spreading neighbouring cells apart before mixing.
const (
	primeX = 0x8da6b343
	primeY = 0xd8163841
	primeZ = 0xcb1ab31f
)

// mix is a 32 bit integer finalizer. Every input bit affects every output
// bit.
func mix(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// At returns the value of cell c under seed.
func At(seed uint32, c vec.Vec3i) uint32 {
	h := uint32(c.X)*primeX ^ uint32(c.Y)*primeY ^ uint32(c.Z)*primeZ
	return mix(h ^ mix(seed))
}

// unit maps a value to [0,1) keeping the 24 bits a float32 can hold.
func unit(v uint32) float32 {
	return float32(v>>8) / (1 << 24)
}

// ChanceAt reports with probability p whether cell c is picked under seed.
func ChanceAt(seed uint32, c vec.Vec3i, p float32) bool {
	return unit(At(seed, c)) < p
}

// Source is a sequence of values, the n-th value hashed from seed and n.
type Source struct {
	seed uint32
	n    uint32
}

func New(seed uint32) Source {
	return Source{seed: mix(seed)}
}

func (s *Source) Uint32() uint32 {
	s.n++
	return mix(s.n ^ s.seed)
}

// Intn returns a value in [0,n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("rand: Intn with n <= 0")
	}
	return int(s.Uint32() % uint32(n))
}

// Float32 returns a value in [0,1).
func (s *Source) Float32() float32 {
	return unit(s.Uint32())
}
