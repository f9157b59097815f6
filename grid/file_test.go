// SPDX-License-Identifier: GPL-2.0-or-later

package grid

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trepidacious/hexahedron3/math/vec"
)

const floorYAML = `
size: [4, 3, 2]
boxes:
  - min: [0, 0, 0]
    max: [3, 0, 1]
cells:
  - [2, 2, 1]
layers:
  - y: 1
    rows:
      - "#..#"
      - ".#"
`

func TestParse(t *testing.T) {
	g, err := Parse([]byte(floorYAML))
	require.NoError(t, err)
	assert.IsType(t, &Dense{}, g)
	assert.Equal(t, vec.Vec3i{X: 4, Y: 3, Z: 2}, Bounds(g))
	assert.Equal(t, 8+1+3, Count(g))
	assert.True(t, g.Presence(vec.Vec3i{X: 3, Y: 1, Z: 0}))
	assert.True(t, g.Presence(vec.Vec3i{X: 1, Y: 1, Z: 1}))
	assert.False(t, g.Presence(vec.Vec3i{X: 1, Y: 1, Z: 0}))
}

func TestParseChunked(t *testing.T) {
	g, err := Parse([]byte("size: [32, 32, 32]\nchunk: 8\ncells: [[1, 2, 3]]\n"))
	require.NoError(t, err)
	c, ok := g.(*Chunked)
	require.True(t, ok)
	assert.Equal(t, 8, c.ChunkSize())
	assert.True(t, c.Presence(vec.Vec3i{X: 1, Y: 2, Z: 3}))
}

func TestParseErrors(t *testing.T) {
	for name, in := range map[string]string{
		"bad yaml":    "size: [1, 2",
		"zero size":   "size: [0, 1, 1]",
		"cell out":    "size: [2, 2, 2]\ncells: [[2, 0, 0]]",
		"box out":     "size: [2, 2, 2]\nboxes: [{min: [0, 0, 0], max: [0, 0, 5]}]",
		"layer y":     "size: [2, 2, 2]\nlayers: [{y: 3, rows: ['#']}]",
		"layer rune":  "size: [2, 2, 2]\nlayers: [{y: 0, rows: ['x']}]",
		"row too big": "size: [2, 2, 2]\nlayers: [{y: 0, rows: ['###']}]",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	g := NewChunked(vec.Vec3i{X: 9, Y: 9, Z: 9}, 3)
	Generate(g, 0.2, 5)
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, Save(path, g))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Digest(g), Digest(loaded))
	assert.IsType(t, &Chunked{}, loaded)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
