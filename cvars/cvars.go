// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"github.com/trepidacious/hexahedron3/conlog"
	"github.com/trepidacious/hexahedron3/cvar"
)

var (
	Developer     *cvar.Cvar
	HostFrameRate *cvar.Cvar
	TraceMaxHits  *cvar.Cvar
	WalkGravity   *cvar.Cvar
	WalkJump      *cvar.Cvar
	WalkSpeed     *cvar.Cvar
)

func init() {
	Developer = cvar.MustRegister("developer", "0", cvar.NONE)
	Developer.SetCallback(func(cv *cvar.Cvar) {
		conlog.SetDeveloper(cv.Bool())
	})
	// seconds per tick
	HostFrameRate = cvar.MustRegister("host_framerate", "0.016666668", cvar.ARCHIVE)
	TraceMaxHits = cvar.MustRegister("trace_maxhits", "16", cvar.ARCHIVE)
	// cells per second, cells per second squared
	WalkGravity = cvar.MustRegister("walk_gravity", "12", cvar.ARCHIVE)
	WalkJump = cvar.MustRegister("walk_jump", "6", cvar.ARCHIVE)
	WalkSpeed = cvar.MustRegister("walk_speed", "3.5", cvar.ARCHIVE)
}
