// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"runtime/debug"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/trepidacious/hexahedron3/conlog"
	"github.com/trepidacious/hexahedron3/grid"
	qmath "github.com/trepidacious/hexahedron3/math"
	"github.com/trepidacious/hexahedron3/math/vec"
)

var _ Geom = (*PointGeom)(nil)

// PointGeom is a single point moving through a grid. Usable for debris,
// missiles, picking and ray casts as well as for a walking viewpoint.
//
// A PointGeom must not be moved from two goroutines at once.
type PointGeom struct {
	position vec.Vec3
	// index is the cell the point is considered to be in. It is
	// authoritative over position on exact integer coordinates, and
	// index <= position <= index+1 holds on every axis.
	index vec.Vec3i
	state TouchAlign
	grid  grid.Grid
	// spanner is set when grid can report empty regions.
	spanner grid.Spanner
}

// span is an inclusive box of empty cells the point is currently inside.
type span struct {
	lo, hi vec.Vec3i
}

// NewPoint creates a point in the cell given by flooring position. Use
// NewPointAt to choose between the two cells sharing an exact integer
// coordinate.
func NewPoint(g grid.Grid, position vec.Vec3) *PointGeom {
	return NewPointAt(g, position, vec.Floor(position))
}

// NewPointAt creates a point with an explicit cell index. The index must
// satisfy index <= position <= index+1 on every axis; this is not checked.
func NewPointAt(g grid.Grid, position vec.Vec3, index vec.Vec3i) *PointGeom {
	p := &PointGeom{
		position: position,
		index:    index,
		grid:     g,
	}
	p.spanner, _ = g.(grid.Spanner)
	p.survey()
	return p
}

// survey derives touch and align state from scratch.
func (p *PointGeom) survey() {
	p.state = TouchAlign{}
	for i := 0; i < 3; i++ {
		x := p.position.Idx(i)
		n := p.index.Idx(i)
		switch x {
		case float32(n):
			p.state.Aligned[Negative][i] = true
			p.state.Touching[Negative][i] = p.grid.Presence(p.index.With(i, n-1))
		case float32(n + 1):
			p.state.Aligned[Positive][i] = true
			p.state.Touching[Positive][i] = p.grid.Presence(p.index.With(i, n+1))
		}
	}
}

func (p *PointGeom) Touching() *[2][3]bool {
	return &p.state.Touching
}

func (p *PointGeom) Aligned() *[2][3]bool {
	return &p.state.Aligned
}

// State returns a copy of the touch and align state.
func (p *PointGeom) State() TouchAlign {
	return p.state
}

// SetState replaces the touch and align state, for restoring a point saved
// with State. It must describe the current position and index.
func (p *PointGeom) SetState(s TouchAlign) {
	p.state = s
}

func (p *PointGeom) Position() vec.Vec3 {
	return p.position
}

// Index returns the cell the point is considered to be in.
func (p *PointGeom) Index() vec.Vec3i {
	return p.index
}

func (p *PointGeom) Grid() grid.Grid {
	return p.grid
}

func headingOf(v vec.Vec3) vec.Vec3i {
	return vec.Vec3i{
		X: qmath.Sign(v.X),
		Y: qmath.Sign(v.Y),
		Z: qmath.Sign(v.Z),
	}
}

// nextPlanes returns the next grid plane on every axis in the direction of
// heading. Inside a known empty region the planes are the region's faces,
// otherwise the faces of the current cell. The plane for a zero heading is
// a placeholder.
func (p *PointGeom) nextPlanes(heading vec.Vec3i) (vec.Vec3i, *span) {
	if p.spanner != nil {
		if lo, hi, ok := p.spanner.EmptySpan(p.index); ok {
			s := &span{lo: lo, hi: hi}
			return s.planes(heading), s
		}
	}
	return p.cellPlanes(heading), nil
}

func (p *PointGeom) cellPlanes(heading vec.Vec3i) vec.Vec3i {
	s := span{lo: p.index, hi: p.index}
	return s.planes(heading)
}

func (s *span) planes(heading vec.Vec3i) vec.Vec3i {
	var next vec.Vec3i
	for i := 0; i < 3; i++ {
		if heading.Idx(i) > 0 {
			next.Set(i, s.hi.Idx(i)+1)
		} else {
			next.Set(i, s.lo.Idx(i))
		}
	}
	return next
}

// firstPlane returns the time to the plane of next reached first and its
// axis. Ties go to the lowest axis.
func (p *PointGeom) firstPlane(velocity vec.Vec3, next vec.Vec3i) (float32, int) {
	// At least one axis moves, so minTime is always replaced unless the
	// velocity is NaN.
	minTime := float32(math32.MaxFloat32)
	minAxis := 0
	for i := 0; i < 3; i++ {
		vi := velocity.Idx(i)
		if vi == 0 {
			continue
		}
		t := (float32(next.Idx(i)) - p.position.Idx(i)) / vi
		if t < minTime {
			minTime = t
			minAxis = i
		}
	}
	return minTime, minAxis
}

// landsOnPlane reports whether moving for time along velocity leaves a
// moving axis other than axis exactly on a grid plane. Such a move has to
// go one cell at a time, the order of the crossings decides the cell.
func (p *PointGeom) landsOnPlane(velocity vec.Vec3, time float32, axis int) bool {
	end := vec.Add(p.position, velocity.Scale(time))
	for i := 0; i < 3; i++ {
		if i != axis && velocity.Idx(i) != 0 && qmath.IsInteger(end.Idx(i)) {
			return true
		}
	}
	return false
}

// Slide traces the point through the grid along velocity for up to
// maxTime. On every plane crossing into an occupied cell the point stops
// on the plane, becomes touching in that direction and r is notified. If r
// returns true the slide goes on for the time left with the hit axis held
// still, so every wall is reported once.
//
// Slide panics with ErrSlideLimit after MaxSlideSteps steps.
func (p *PointGeom) Slide(velocity vec.Vec3, maxTime float32, r Receiver) {
	v := velocity
	heading := headingOf(v)
	var elapsed float32

	for steps := 0; steps < maxSlideSteps; steps++ {
		if v.IsZero() {
			return
		}
		next, s := p.nextPlanes(heading)
		minTime, minAxis := p.firstPlane(v, next)
		if s != nil {
			stepTime, stepAxis := minTime, minAxis
			if elapsed+minTime > maxTime {
				stepTime, stepAxis = maxTime-elapsed, -1
			}
			if p.landsOnPlane(v, stepTime, stepAxis) {
				next, s = p.cellPlanes(heading), nil
				minTime, minAxis = p.firstPlane(v, next)
			}
		}

		if elapsed+minTime > maxTime {
			p.advance(v, heading, maxTime-elapsed, s, -1, 0)
			return
		}
		p.advance(v, heading, minTime, s, minAxis, next.Idx(minAxis))
		elapsed += minTime

		h := heading.Idx(minAxis)
		across := p.index.With(minAxis, p.index.Idx(minAxis)+h)
		if !p.grid.Presence(across) {
			// Step into the empty cell, this plane is behind us now.
			p.index = across
			continue
		}
		p.state.contact(Direction(h), minAxis)
		if !r.AcceptCollision(elapsed, p.position, minAxis, p.position) {
			return
		}
		v.Set(minAxis, 0)
		heading.Set(minAxis, 0)
	}
	conlog.Warnf("slide from %v stuck at %v with velocity %v\n", p.index, p.position, v)
	debug.PrintStack()
	panic(errors.WithStack(ErrSlideLimit))
}

// advance moves the point for time along velocity and updates the touch and
// align state. axis >= 0 places the point exactly on plane on that axis,
// which is where the step was computed to end. s is the empty region the
// move stays inside, if one was used.
func (p *PointGeom) advance(velocity vec.Vec3, heading vec.Vec3i, time float32, s *span, axis int, plane int) {
	if time == 0 {
		return
	}
	p.position = vec.Add(p.position, velocity.Scale(time))
	if axis >= 0 {
		p.position.Set(axis, float32(plane))
	}
	if s != nil {
		p.reindex(heading, s)
	}

	for i := 0; i < 3; i++ {
		if heading.Idx(i) != 0 {
			p.state.leave(i)
		}
	}

	// Axes still aligned are the ones the point slides exactly along.
	// Moving in the plane can bring cells across it in and out of contact.
	for i := 0; i < 3; i++ {
		if p.state.Aligned[Negative][i] {
			p.state.Touching[Negative][i] = p.grid.Presence(p.index.With(i, p.index.Idx(i)-1))
		}
		if p.state.Aligned[Positive][i] {
			p.state.Touching[Positive][i] = p.grid.Presence(p.index.With(i, p.index.Idx(i)+1))
		}
	}
}

// reindex derives the cell index of every moving axis after a move across
// the empty region s. Only the axis the move was cut at can end on a plane,
// which is then the far face of s and stays uncrossed.
func (p *PointGeom) reindex(heading vec.Vec3i, s *span) {
	for i := 0; i < 3; i++ {
		h := heading.Idx(i)
		if h == 0 {
			continue
		}
		x := p.position.Idx(i)
		var n int
		if h > 0 {
			n = qmath.CeilInt(x) - 1
		} else {
			n = qmath.FloorInt(x)
		}
		p.index.Set(i, qmath.Clamp(s.lo.Idx(i), n, s.hi.Idx(i)))
	}
}

// SlideAlong moves the point for up to maxTime, sliding along every
// occupied cell it runs into: on each hit the velocity component of the
// hit axis is dropped and the move goes on with the time left. It returns
// the velocity left at the end.
func (p *PointGeom) SlideAlong(velocity vec.Vec3, maxTime float32) vec.Vec3 {
	var elapsed float32
	v := velocity
	for elapsed < maxTime && !v.IsZero() {
		var r firstHit
		p.Slide(v, maxTime-elapsed, &r)
		if !r.hit {
			return v
		}
		elapsed += r.elapsed
		v.Set(r.axis, 0)
	}
	return v
}
