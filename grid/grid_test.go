// SPDX-License-Identifier: GPL-2.0-or-later

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trepidacious/hexahedron3/math/vec"
)

func writables(size vec.Vec3i) map[string]Writable {
	return map[string]Writable{
		"dense":   NewDense(size),
		"chunked": NewChunked(size, 4),
	}
}

func TestPresence(t *testing.T) {
	size := vec.Vec3i{X: 10, Y: 5, Z: 7}
	for name, g := range writables(size) {
		t.Run(name, func(t *testing.T) {
			c := vec.Vec3i{X: 9, Y: 4, Z: 6}
			assert.False(t, g.Presence(c))
			g.SetPresence(c, true)
			assert.True(t, g.Presence(c))
			assert.False(t, g.Presence(vec.Vec3i{X: 8, Y: 4, Z: 6}))
			g.SetPresence(c, false)
			assert.False(t, g.Presence(c))
			assert.Equal(t, 10, g.Size(vec.X))
			assert.Equal(t, 5, g.Size(vec.Y))
			assert.Equal(t, 7, g.Size(vec.Z))
		})
	}
}

func TestOutOfBoundsIsEmpty(t *testing.T) {
	size := vec.Vec3i{X: 4, Y: 4, Z: 4}
	for name, g := range writables(size) {
		t.Run(name, func(t *testing.T) {
			for _, c := range []vec.Vec3i{{X: -1}, {X: 4}, {Y: -5}, {Z: 100}} {
				g.SetPresence(c, true)
				assert.False(t, g.Presence(c), "cell %v", c)
			}
			assert.Equal(t, 0, Count(g))
		})
	}
}

func TestFillBoxAndCount(t *testing.T) {
	size := vec.Vec3i{X: 8, Y: 8, Z: 8}
	for name, g := range writables(size) {
		t.Run(name, func(t *testing.T) {
			FillBox(g, vec.Vec3i{X: 3, Y: 1, Z: 2}, vec.Vec3i{X: 1, Y: 1, Z: 0}, true)
			assert.Equal(t, 9, Count(g))
			assert.True(t, g.Presence(vec.Vec3i{X: 2, Y: 1, Z: 1}))
		})
	}
}

func TestChunkedEmptySpan(t *testing.T) {
	g := NewChunked(vec.Vec3i{X: 16, Y: 16, Z: 16}, 4)
	g.SetPresence(vec.Vec3i{X: 5, Y: 5, Z: 5}, true)
	require.Equal(t, 1, g.Chunks())

	_, _, ok := g.EmptySpan(vec.Vec3i{X: 4, Y: 7, Z: 6})
	assert.False(t, ok, "chunk holding an occupied cell is not empty")

	lo, hi, ok := g.EmptySpan(vec.Vec3i{X: 9, Y: 1, Z: 2})
	require.True(t, ok)
	assert.Equal(t, vec.Vec3i{X: 8, Y: 0, Z: 0}, lo)
	assert.Equal(t, vec.Vec3i{X: 11, Y: 3, Z: 3}, hi)

	lo, hi, ok = g.EmptySpan(vec.Vec3i{X: -1, Y: -4, Z: 0})
	require.True(t, ok)
	assert.Equal(t, vec.Vec3i{X: -4, Y: -4, Z: 0}, lo)
	assert.Equal(t, vec.Vec3i{X: -1, Y: -1, Z: 3}, hi)

	g.SetPresence(vec.Vec3i{X: 5, Y: 5, Z: 5}, false)
	assert.Equal(t, 0, g.Chunks())
}

func TestDigest(t *testing.T) {
	size := vec.Vec3i{X: 6, Y: 6, Z: 6}
	d := NewDense(size)
	c := NewChunked(size, 2)
	Generate(d, 0.3, 11)
	Generate(c, 0.3, 11)
	assert.Equal(t, Digest(d), Digest(c))
	assert.Equal(t, Count(d), Count(c))

	c.SetPresence(vec.Vec3i{}, !c.Presence(vec.Vec3i{}))
	assert.NotEqual(t, Digest(d), Digest(c))
}

func TestGenerateFill(t *testing.T) {
	size := vec.Vec3i{X: 5, Y: 5, Z: 5}
	full := NewDense(size)
	Generate(full, 1, 3)
	assert.Equal(t, 125, Count(full))
	empty := NewDense(size)
	Generate(empty, 0, 3)
	assert.Equal(t, 0, Count(empty))
}

func TestGenerateGrows(t *testing.T) {
	small := NewDense(vec.Vec3i{X: 4, Y: 4, Z: 4})
	large := NewChunked(vec.Vec3i{X: 12, Y: 12, Z: 12}, 4)
	Generate(small, 0.4, 21)
	Generate(large, 0.4, 21)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 4; z++ {
				c := vec.Vec3i{X: x, Y: y, Z: z}
				assert.Equal(t, small.Presence(c), large.Presence(c), "cell %v", c)
			}
		}
	}
	assert.Positive(t, Count(small))
}
