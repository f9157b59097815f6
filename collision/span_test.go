// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"testing"

	"github.com/trepidacious/hexahedron3/grid"
	"github.com/trepidacious/hexahedron3/math/vec"
	"github.com/trepidacious/hexahedron3/rand"
)

// plain hides the Spanner of the wrapped grid.
type plain struct {
	grid.Grid
}

// counting counts presence queries and keeps the Spanner.
type counting struct {
	*grid.Chunked
	queries int
}

func (c *counting) Presence(v vec.Vec3i) bool {
	c.queries++
	return c.Chunked.Presence(v)
}

// Velocities and positions are multiples of powers of two, so both walks do
// exact arithmetic and must agree bit for bit.
var speeds = []float32{-2, -1, -0.5, 0, 0, 0.5, 1, 2}

func randomSetup(r *rand.Source) (vec.Vec3, vec.Vec3) {
	var pos, v vec.Vec3
	for i := 0; i < 3; i++ {
		pos.Set(i, float32(r.Intn(96))/4-2)
		v.Set(i, speeds[r.Intn(len(speeds))])
	}
	return pos, v
}

// sameWalk slides a point from pos through g once using empty spans and
// once cell by cell, and fails if the two disagree in any way.
func sameWalk(t *testing.T, g *grid.Chunked, pos, v vec.Vec3, maxTime float32) bool {
	t.Helper()
	fast := NewPoint(g, pos)
	slow := NewPoint(plain{g}, pos)
	fr := Recorder{Limit: 2}
	sr := Recorder{Limit: 2}
	fast.Slide(v, maxTime, &fr)
	slow.Slide(v, maxTime, &sr)

	if len(fr.Hits) != len(sr.Hits) {
		t.Errorf("from %v v=%v t=%v: %d hits with spans, %d without", pos, v, maxTime, len(fr.Hits), len(sr.Hits))
		return false
	}
	for i := range fr.Hits {
		if fr.Hits[i] != sr.Hits[i] {
			t.Errorf("from %v v=%v t=%v: hit %d %+v with spans, %+v without", pos, v, maxTime, i, fr.Hits[i], sr.Hits[i])
			return false
		}
	}
	if fast.Position() != slow.Position() || fast.Index() != slow.Index() {
		t.Errorf("from %v v=%v t=%v: ended at %v %v with spans, %v %v without",
			pos, v, maxTime, fast.Position(), fast.Index(), slow.Position(), slow.Index())
		return false
	}
	if fast.State() != slow.State() {
		t.Errorf("from %v v=%v t=%v: state %+v with spans, %+v without", pos, v, maxTime, fast.State(), slow.State())
		return false
	}

	// Going on from there catches an index that only differs on a plane.
	back := v.Scale(-1)
	fast.Slide(back, maxTime, &fr)
	slow.Slide(back, maxTime, &sr)
	if len(fr.Hits) != len(sr.Hits) || fast.Position() != slow.Position() || fast.Index() != slow.Index() {
		t.Errorf("from %v v=%v t=%v: way back ended at %v %v with spans, %v %v without",
			pos, v, maxTime, fast.Position(), fast.Index(), slow.Position(), slow.Index())
		return false
	}

	fv := fast.SlideAlong(v, maxTime)
	sv := slow.SlideAlong(v, maxTime)
	if fv != sv || fast.Position() != slow.Position() || fast.State() != slow.State() {
		t.Errorf("from %v v=%v t=%v: SlideAlong %v %v with spans, %v %v without", pos, v, maxTime, fv, fast.Position(), sv, slow.Position())
		return false
	}
	return true
}

func TestSpanMatchesCellWalk(t *testing.T) {
	for seed := uint32(1); seed <= 40; seed++ {
		g := grid.NewChunked(vec.Vec3i{X: 20, Y: 20, Z: 20}, 2)
		grid.Generate(g, 0.05, 99+seed)
		r := rand.New(seed)
		for run := 0; run < 500; run++ {
			pos, v := randomSetup(&r)
			maxTime := float32(r.Intn(16)) / 2
			if !sameWalk(t, g, pos, v, maxTime) {
				t.Fatalf("seed %d run %d", seed, run)
			}
		}
	}
}

// Moves ending with more than one axis exactly on a plane, where the
// order of the crossings decides the cell.
func TestSpanPlaneLandings(t *testing.T) {
	g := grid.NewChunked(vec.Vec3i{X: 20, Y: 20, Z: 20}, 2)
	grid.Generate(g, 0.05, 99)
	for _, tc := range []struct {
		pos, v  vec.Vec3
		maxTime float32
	}{
		{vec.Vec3{X: 3, Y: 1, Z: 21.5}, vec.Vec3{X: -0.5, Y: -1}, 3},
		{vec.Vec3{X: 3, Y: 1, Z: 21.5}, vec.Vec3{X: -0.5, Y: -1}, 4},
		{vec.Vec3{X: 14, Y: 1, Z: 18}, vec.Vec3{X: -1, Y: 2, Z: -1}, 6.5},
		{vec.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, vec.Vec3{X: 1, Y: 1, Z: 1}, 3.5},
		{vec.Vec3{X: 5.5, Y: 5.5, Z: 5.5}, vec.Vec3{X: -1, Y: -1}, 4.5},
		{vec.Vec3{X: -1.5, Y: 3, Z: 3}, vec.Vec3{X: 1, Z: 0.5}, 2},
	} {
		sameWalk(t, g, tc.pos, tc.v, tc.maxTime)
	}
}

func TestSpanSkipsEmptyChunks(t *testing.T) {
	c := &counting{Chunked: grid.NewChunked(vec.Vec3i{X: 256, Y: 16, Z: 16}, 16)}
	c.SetPresence(vec.Vec3i{X: 200, Y: 8, Z: 8}, true)

	p := NewPoint(c, vec.Vec3{X: 0.5, Y: 8.5, Z: 8.5})
	r := Recorder{Limit: 1}
	p.Slide(vec.Vec3{X: 1}, 1000, &r)

	if len(r.Hits) != 1 || r.Hits[0].Elapsed != 199.5 {
		t.Fatalf("hits %+v, want one at 199.5", r.Hits)
	}
	// 12 empty chunks crossed in one step each, then cell by cell
	// through the chunk holding the occupied cell.
	if c.queries > 30 {
		t.Errorf("%d presence queries for 200 cells", c.queries)
	}
}
