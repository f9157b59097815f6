// SPDX-License-Identifier: GPL-2.0-or-later

package grid

import (
	"github.com/trepidacious/hexahedron3/math/vec"
)

var (
	_ Writable = (*Chunked)(nil)
	_ Spanner  = (*Chunked)(nil)
)

const DefaultChunkSize = 16

type chunk struct {
	bits  []uint64
	count int
}

// Chunked is a sparse grid made of cubic chunks. Chunks without occupied
// cells are not stored, and EmptySpan reports them so a sweep can cross a
// whole chunk in one step. Cells outside [0, size) are empty.
type Chunked struct {
	size   vec.Vec3i
	edge   int
	chunks map[vec.Vec3i]*chunk
}

func NewChunked(size vec.Vec3i, edge int) *Chunked {
	if edge <= 0 {
		edge = DefaultChunkSize
	}
	return &Chunked{
		size:   size,
		edge:   edge,
		chunks: make(map[vec.Vec3i]*chunk),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// locate returns the chunk coordinate of c and the bit index inside it.
func (g *Chunked) locate(c vec.Vec3i) (vec.Vec3i, int) {
	k := vec.Vec3i{
		X: floorDiv(c.X, g.edge),
		Y: floorDiv(c.Y, g.edge),
		Z: floorDiv(c.Z, g.edge),
	}
	l := vec.SubI(c, k.Scale(g.edge))
	return k, (l.X*g.edge+l.Y)*g.edge + l.Z
}

func (g *Chunked) Presence(c vec.Vec3i) bool {
	if !InBounds(g.size, c) {
		return false
	}
	k, i := g.locate(c)
	ch, ok := g.chunks[k]
	if !ok {
		return false
	}
	return ch.bits[i/64]&(1<<(i%64)) != 0
}

func (g *Chunked) SetPresence(c vec.Vec3i, p bool) {
	if !InBounds(g.size, c) {
		return
	}
	k, i := g.locate(c)
	ch, ok := g.chunks[k]
	if !ok {
		if !p {
			return
		}
		n := g.edge * g.edge * g.edge
		ch = &chunk{bits: make([]uint64, (n+63)/64)}
		g.chunks[k] = ch
	}
	mask := uint64(1) << (i % 64)
	was := ch.bits[i/64]&mask != 0
	switch {
	case p && !was:
		ch.bits[i/64] |= mask
		ch.count++
	case !p && was:
		ch.bits[i/64] &^= mask
		ch.count--
		if ch.count == 0 {
			delete(g.chunks, k)
		}
	}
}

func (g *Chunked) Size(axis int) int {
	return g.size.Idx(axis)
}

// ChunkSize returns the edge length of a chunk in cells.
func (g *Chunked) ChunkSize() int {
	return g.edge
}

// Chunks returns the number of stored, non empty chunks.
func (g *Chunked) Chunks() int {
	return len(g.chunks)
}

func (g *Chunked) EmptySpan(c vec.Vec3i) (vec.Vec3i, vec.Vec3i, bool) {
	k, _ := g.locate(c)
	if _, ok := g.chunks[k]; ok {
		return c, c, false
	}
	lo := k.Scale(g.edge)
	hi := vec.AddI(lo, vec.Vec3i{X: g.edge - 1, Y: g.edge - 1, Z: g.edge - 1})
	return lo, hi, true
}
