// SPDX-License-Identifier: GPL-2.0-or-later

package host

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/trepidacious/hexahedron3/cmd"
	"github.com/trepidacious/hexahedron3/collision"
	"github.com/trepidacious/hexahedron3/conlog"
	"github.com/trepidacious/hexahedron3/cvar"
	"github.com/trepidacious/hexahedron3/cvars"
	"github.com/trepidacious/hexahedron3/grid"
	"github.com/trepidacious/hexahedron3/math/vec"
	"github.com/trepidacious/hexahedron3/snapshot"
	"github.com/trepidacious/hexahedron3/walker"
	"github.com/trepidacious/hexahedron3/world"
)

// errUsage marks a command called with the wrong arguments.
var errUsage = errors.New("usage")

func usage(u string) error {
	return errors.Wrap(errUsage, u)
}

func (h *Host) addCommands() error {
	for _, c := range []struct {
		name string
		f    cmd.QFunc
	}{
		{"cmdlist", h.commands.PrintList},
		{"echo", h.echo},
		{"exec", h.execCmd},
		{"grid", h.gridCmd},
		{"hit", h.hitCmd},
		{"load", h.loadCmd},
		{"pos", h.posCmd},
		{"quit", h.quitCmd},
		{"remove", h.removeCmd},
		{"save", h.saveCmd},
		{"slide", h.slideCmd},
		{"spawn", h.spawnCmd},
		{"stop", h.stopCmd},
		{"tick", h.tickCmd},
		{"touching", h.touchingCmd},
		{"trace", h.traceCmd},
		{"walk", h.walkCmd},
		{"writeconfig", h.writeConfig},
	} {
		if err := h.commands.Add(c.name, c.f); err != nil {
			return err
		}
	}
	return nil
}

func vec3Arg(a cmd.Arguments, first int) (vec.Vec3, error) {
	var v vec.Vec3
	for i := 0; i < 3; i++ {
		f, err := a.Argv(first + i).ParseFloat32()
		if err != nil {
			return v, errors.Wrapf(err, "argument %d", first+i)
		}
		v.Set(i, f)
	}
	return v, nil
}

func floatArg(a cmd.Arguments, i int) (float32, error) {
	f, err := a.Argv(i).ParseFloat32()
	return f, errors.Wrapf(err, "argument %d", i)
}

func (h *Host) echo(a cmd.Arguments) error {
	conlog.Printf("%s\n", a.ArgumentString())
	return nil
}

func (h *Host) execCmd(a cmd.Arguments) error {
	if a.Len() != 2 {
		return usage("exec <file>")
	}
	return h.Exec(a.Argv(1).String())
}

func (h *Host) quitCmd(_ cmd.Arguments) error {
	h.quit = true
	h.cbuf.Wait()
	return nil
}

func (h *Host) gridCmd(a cmd.Arguments) error {
	switch a.Argv(1).String() {
	case "load":
		if a.Len() != 3 {
			return usage("grid load <file>")
		}
		return h.LoadGrid(a.Argv(2).String())
	case "save":
		if a.Len() != 3 {
			return usage("grid save <file>")
		}
		return grid.Save(a.Argv(2).String(), h.world.Grid())
	case "gen":
		return h.gridGen(a)
	case "info":
		g := h.world.Grid()
		conlog.Printf("size %v, %d cells, digest %016x\n", grid.Bounds(g), grid.Count(g), grid.Digest(g))
		if c, ok := g.(*grid.Chunked); ok {
			conlog.Printf("chunked %d, %d chunks\n", c.ChunkSize(), c.Chunks())
		}
		return nil
	default:
		return usage("grid load|save|gen|info")
	}
}

func (h *Host) gridGen(a cmd.Arguments) error {
	const u = "grid gen <x> <y> <z> <fill> [seed] [chunk]"
	if a.Len() < 6 || a.Len() > 8 {
		return usage(u)
	}
	var size vec.Vec3i
	for i := 0; i < 3; i++ {
		n, err := a.Argv(2 + i).ParseInt()
		if err != nil || n <= 0 {
			return usage(u)
		}
		size.Set(i, n)
	}
	fill, err := floatArg(a, 5)
	if err != nil {
		return err
	}
	seed, chunk := 1, 0
	if a.Len() > 6 {
		if seed, err = a.Argv(6).ParseInt(); err != nil {
			return usage(u)
		}
	}
	if a.Len() > 7 {
		if chunk, err = a.Argv(7).ParseInt(); err != nil || chunk < 0 {
			return usage(u)
		}
	}
	var g grid.Writable
	if chunk > 0 {
		g = grid.NewChunked(size, chunk)
	} else {
		g = grid.NewDense(size)
	}
	grid.Generate(g, fill, uint32(seed))
	h.world.SetGrid(g)
	h.gridPath = ""
	conlog.Printf("generated %v, %d cells\n", size, grid.Count(g))
	return nil
}

func (h *Host) spawnCmd(a cmd.Arguments) error {
	if a.Len() != 5 {
		return usage("spawn <name> <x> <y> <z>")
	}
	pos, err := vec3Arg(a, 2)
	if err != nil {
		return err
	}
	m, err := h.world.Spawn(a.Argv(1).String(), pos)
	if err != nil {
		return err
	}
	conlog.Printf("%s %v\n", m.Name, m.ID)
	return nil
}

func (h *Host) removeCmd(a cmd.Arguments) error {
	if a.Len() != 2 {
		return usage("remove <name>")
	}
	return h.world.Remove(a.Argv(1).String())
}

func (h *Host) mover(a cmd.Arguments, u string, n int) (*world.Mover, error) {
	if a.Len() != n {
		return nil, usage(u)
	}
	return h.world.Mover(a.Argv(1).String())
}

// slide <name> <vx> <vy> <vz> <t> slides along everything in the way.
func (h *Host) slideCmd(a cmd.Arguments) error {
	m, err := h.mover(a, "slide <name> <vx> <vy> <vz> <t>", 6)
	if err != nil {
		return err
	}
	v, err := vec3Arg(a, 2)
	if err != nil {
		return err
	}
	t, err := floatArg(a, 5)
	if err != nil {
		return err
	}
	left := m.Point.SlideAlong(v, t)
	conlog.Printf("%s at %v velocity %v\n", m.Name, m.Point.Position(), left)
	return nil
}

// trace <name> <vx> <vy> <vz> <t> moves without deflection and prints
// every contact, up to trace_maxhits of them.
func (h *Host) traceCmd(a cmd.Arguments) error {
	m, err := h.mover(a, "trace <name> <vx> <vy> <vz> <t>", 6)
	if err != nil {
		return err
	}
	v, err := vec3Arg(a, 2)
	if err != nil {
		return err
	}
	t, err := floatArg(a, 5)
	if err != nil {
		return err
	}
	r := collision.Recorder{Limit: int(cvars.TraceMaxHits.Value())}
	m.Point.Slide(v, t, &r)
	for _, c := range r.Hits {
		conlog.Printf("  %.4f %v axis %d\n", c.Elapsed, c.Position, c.Axis)
	}
	conlog.Printf("%s at %v, %d hits\n", m.Name, m.Point.Position(), len(r.Hits))
	return nil
}

// hit <name> <vx> <vy> <vz> <t> moves until the first contact and prints
// it.
func (h *Host) hitCmd(a cmd.Arguments) error {
	m, err := h.mover(a, "hit <name> <vx> <vy> <vz> <t>", 6)
	if err != nil {
		return err
	}
	v, err := vec3Arg(a, 2)
	if err != nil {
		return err
	}
	t, err := floatArg(a, 5)
	if err != nil {
		return err
	}
	m.Point.Slide(v, t, collision.LogReceiver{Name: m.Name})
	return nil
}

// walk <name> <x> <z> [jump|up|down] sets the walk input and makes the
// mover step with tick. stop <name> ends it.
func (h *Host) walkCmd(a cmd.Arguments) error {
	const u = "walk <name> <x> <z> [jump|up|down]"
	if a.Len() < 4 || a.Len() > 5 {
		return usage(u)
	}
	m, err := h.world.Mover(a.Argv(1).String())
	if err != nil {
		return err
	}
	x, err := floatArg(a, 2)
	if err != nil {
		return err
	}
	z, err := floatArg(a, 3)
	if err != nil {
		return err
	}
	in := walker.Input{Move: vec.Vec3{X: x, Z: z}}
	switch a.Argv(4).String() {
	case "":
	case "jump":
		in.Jump = true
	case "up":
		in.Rise = 1
	case "down":
		in.Rise = -1
	default:
		return usage(u)
	}
	m.Walker.SetInput(in)
	m.Walking = true
	return nil
}

func (h *Host) stopCmd(a cmd.Arguments) error {
	m, err := h.mover(a, "stop <name>", 2)
	if err != nil {
		return err
	}
	m.Walking = false
	m.Walker.SetInput(walker.Input{})
	m.Walker.SetVelocity(vec.Vec3{})
	return nil
}

func (h *Host) tickCmd(a cmd.Arguments) error {
	n := 1
	if a.Len() > 2 {
		return usage("tick [n]")
	}
	if a.Len() == 2 {
		var err error
		if n, err = a.Argv(1).ParseInt(); err != nil || n < 0 {
			return usage("tick [n]")
		}
	}
	for i := 0; i < n; i++ {
		if err := h.world.Step(h.ctx); err != nil {
			return err
		}
	}
	return nil
}

func (h *Host) posCmd(a cmd.Arguments) error {
	m, err := h.mover(a, "pos <name>", 2)
	if err != nil {
		return err
	}
	conlog.Printf("%s at %v in %v velocity %v\n", m.Name, m.Point.Position(), m.Point.Index(), m.Walker.Velocity())
	return nil
}

var axisNames = [3]string{"x", "y", "z"}

func faces(s *[2][3]bool) string {
	var f []string
	for d, sign := range [2]string{"-", "+"} {
		for axis := 0; axis < 3; axis++ {
			if s[d][axis] {
				f = append(f, sign+axisNames[axis])
			}
		}
	}
	if len(f) == 0 {
		return "none"
	}
	return strings.Join(f, " ")
}

func (h *Host) touchingCmd(a cmd.Arguments) error {
	m, err := h.mover(a, "touching <name>", 2)
	if err != nil {
		return err
	}
	conlog.Printf("%s touching %s, aligned %s\n", m.Name, faces(m.Point.Touching()), faces(m.Point.Aligned()))
	return nil
}

func (h *Host) saveCmd(a cmd.Arguments) error {
	if a.Len() != 2 {
		return usage("save <file>")
	}
	return snapshot.Save(a.Argv(1).String(), h.world)
}

// writeconfig <file> writes a script restoring every changed archive
// variable.
func (h *Host) writeConfig(a cmd.Arguments) error {
	if a.Len() != 2 {
		return usage("writeconfig <file>")
	}
	lines := cvar.Archived()
	text := strings.Join(lines, "\n")
	if len(lines) > 0 {
		text += "\n"
	}
	if err := os.WriteFile(a.Argv(1).String(), []byte(text), 0660); err != nil {
		return errors.Wrap(err, "writeconfig")
	}
	return nil
}

func (h *Host) loadCmd(a cmd.Arguments) error {
	if a.Len() != 2 {
		return usage("load <file>")
	}
	return snapshot.Load(a.Argv(1).String(), h.world)
}
