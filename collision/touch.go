// SPDX-License-Identifier: GPL-2.0-or-later

package collision

// TouchAlign tracks contact per direction and axis. Touching implies
// Aligned, never the other way around.
type TouchAlign struct {
	Touching [2][3]bool
	Aligned  [2][3]bool
}

// contact records that the point stopped exactly against an occupied cell.
func (s *TouchAlign) contact(dir, axis int) {
	s.Touching[dir][axis] = true
	s.Aligned[dir][axis] = true
}

// leave drops both directions of axis. Contact only exists while the point
// sits exactly on the plane, so any motion along the axis ends it.
func (s *TouchAlign) leave(axis int) {
	s.Touching[Negative][axis] = false
	s.Touching[Positive][axis] = false
	s.Aligned[Negative][axis] = false
	s.Aligned[Positive][axis] = false
}

// Any reports whether the point touches a cell in any direction.
func (s TouchAlign) Any() bool {
	for _, d := range s.Touching {
		for _, t := range d {
			if t {
				return true
			}
		}
	}
	return false
}
