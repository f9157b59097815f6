// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"github.com/trepidacious/hexahedron3/conlog"
	"github.com/trepidacious/hexahedron3/math/vec"
)

// Collision is one reported contact.
type Collision struct {
	Elapsed  float32
	Position vec.Vec3
	Axis     int
	Center   vec.Vec3
}

// firstHit remembers the first collision and stops the slide.
type firstHit struct {
	hit     bool
	elapsed float32
	axis    int
}

func (f *firstHit) AcceptCollision(elapsed float32, _ vec.Vec3, axis int, _ vec.Vec3) bool {
	f.hit = true
	f.elapsed = elapsed
	f.axis = axis
	return false
}

// Recorder keeps every collision it is given and stops the slide once it
// holds Limit of them. A Limit below 1 stops at the first collision. Below
// the limit the slide goes on along the walls hit so far.
type Recorder struct {
	Limit int
	Hits  []Collision
}

func (r *Recorder) AcceptCollision(elapsed float32, position vec.Vec3, axis int, center vec.Vec3) bool {
	r.Hits = append(r.Hits, Collision{
		Elapsed:  elapsed,
		Position: position,
		Axis:     axis,
		Center:   center,
	})
	return len(r.Hits) < r.Limit
}

// Reset drops the recorded collisions.
func (r *Recorder) Reset() {
	r.Hits = r.Hits[:0]
}

// LogReceiver prints the first collision to the console and stops.
type LogReceiver struct {
	Name string
}

func (l LogReceiver) AcceptCollision(elapsed float32, position vec.Vec3, axis int, center vec.Vec3) bool {
	conlog.Printf("%s: collision at %vs, point at %v, axis %d, center %v\n", l.Name, elapsed, position, axis, center)
	return false
}
