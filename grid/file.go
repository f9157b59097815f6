// SPDX-License-Identifier: GPL-2.0-or-later

package grid

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trepidacious/hexahedron3/math/vec"
)

// File is the YAML description of a grid.
//
//	size: [16, 8, 16]
//	chunk: 8          # optional, selects a Chunked grid
//	boxes:
//	  - min: [0, 0, 0]
//	    max: [15, 0, 15]
//	cells:
//	  - [3, 1, 3]
//	layers:
//	  - y: 1
//	    rows:          # row index is z, column is x, '#' is occupied
//	      - "#..#"
type File struct {
	Size   [3]int   `yaml:"size"`
	Chunk  int      `yaml:"chunk,omitempty"`
	Boxes  []Box    `yaml:"boxes,omitempty"`
	Cells  [][3]int `yaml:"cells,omitempty"`
	Layers []Layer  `yaml:"layers,omitempty"`
}

type Box struct {
	Min [3]int `yaml:"min"`
	Max [3]int `yaml:"max"`
}

type Layer struct {
	Y    int      `yaml:"y"`
	Rows []string `yaml:"rows"`
}

func toVec(a [3]int) vec.Vec3i {
	return vec.Vec3i{X: a[0], Y: a[1], Z: a[2]}
}

// Load reads and builds the grid stored at path.
func Load(path string) (Writable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read grid")
	}
	g, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "grid %s", path)
	}
	return g, nil
}

// Parse builds a grid from its YAML description.
func Parse(data []byte) (Writable, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "unmarshal yaml")
	}
	return f.Build()
}

// Build validates f and creates the grid it describes.
func (f *File) Build() (Writable, error) {
	size := toVec(f.Size)
	for i := 0; i < 3; i++ {
		if size.Idx(i) <= 0 {
			return nil, errors.Errorf("size %v must be positive on every axis", f.Size)
		}
	}
	var g Writable
	if f.Chunk > 0 {
		g = NewChunked(size, f.Chunk)
	} else {
		g = NewDense(size)
	}
	for i, b := range f.Boxes {
		lo, hi := toVec(b.Min), toVec(b.Max)
		if !InBounds(size, lo) || !InBounds(size, hi) {
			return nil, errors.Errorf("box %d %v..%v outside size %v", i, b.Min, b.Max, f.Size)
		}
		FillBox(g, lo, hi, true)
	}
	for _, c := range f.Cells {
		v := toVec(c)
		if !InBounds(size, v) {
			return nil, errors.Errorf("cell %v outside size %v", c, f.Size)
		}
		g.SetPresence(v, true)
	}
	for _, l := range f.Layers {
		if l.Y < 0 || l.Y >= size.Y {
			return nil, errors.Errorf("layer y=%d outside size %v", l.Y, f.Size)
		}
		if len(l.Rows) > size.Z {
			return nil, errors.Errorf("layer y=%d has %d rows, size z is %d", l.Y, len(l.Rows), size.Z)
		}
		for z, row := range l.Rows {
			if len(row) > size.X {
				return nil, errors.Errorf("layer y=%d row %d is longer than size x %d", l.Y, z, size.X)
			}
			for x, r := range row {
				switch r {
				case '#':
					g.SetPresence(vec.Vec3i{X: x, Y: l.Y, Z: z}, true)
				case '.', ' ':
				default:
					return nil, errors.Errorf("layer y=%d row %d: unknown cell %q", l.Y, z, r)
				}
			}
		}
	}
	return g, nil
}

// Describe converts g back into a File listing every occupied cell.
func Describe(g Grid) *File {
	f := &File{Size: Bounds(g).Array()}
	if c, ok := g.(*Chunked); ok {
		f.Chunk = c.ChunkSize()
	}
	each(g, func(c vec.Vec3i) {
		f.Cells = append(f.Cells, c.Array())
	})
	return f
}

// Save writes the YAML description of g to path.
func Save(path string, g Grid) error {
	data, err := yaml.Marshal(Describe(g))
	if err != nil {
		return errors.Wrap(err, "marshal yaml")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "write grid")
}
