// SPDX-License-Identifier: GPL-2.0-or-later

// Package host runs console scripts against a world. Each frame executes
// the command buffer up to the next "wait". Grid reloads from a watched
// file are applied between frames, never while movers step.
package host

import (
	"context"
	"os"

	"github.com/pkg/errors"

	"github.com/trepidacious/hexahedron3/cbuf"
	"github.com/trepidacious/hexahedron3/cmd"
	"github.com/trepidacious/hexahedron3/conlog"
	"github.com/trepidacious/hexahedron3/cvar"
	"github.com/trepidacious/hexahedron3/grid"
	"github.com/trepidacious/hexahedron3/world"
)

type Host struct {
	commands *cmd.Commands
	cbuf     cbuf.CommandBuffer
	world    *world.World
	ctx      context.Context
	gridPath string
	watcher  *Watcher
	quit     bool
}

// New creates a host around an empty world in g.
func New(g grid.Grid) (*Host, error) {
	h := &Host{
		commands: cmd.New(),
		world:    world.New(g),
		ctx:      context.Background(),
	}
	if err := h.addCommands(); err != nil {
		return nil, err
	}
	if err := cvar.AddCommands(h.commands); err != nil {
		return nil, err
	}
	h.cbuf.SetCommandExecutors([]cbuf.Efunc{
		func(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
			return h.commands.Execute(a)
		},
		func(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
			return cvar.Execute(a)
		},
	})
	return h, nil
}

func (h *Host) World() *world.World {
	return h.world
}

func (h *Host) Commands() *cmd.Commands {
	return h.commands
}

// AddText queues console text.
func (h *Host) AddText(text string) {
	h.cbuf.AddText(text)
}

// Exec queues the lines of a script file in front of everything queued.
func (h *Host) Exec(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "exec")
	}
	conlog.DPrintf("execing %s\n", path)
	h.cbuf.InsertText(string(b))
	return nil
}

// LoadGrid replaces the grid with the one in path and remembers path for
// Watch.
func (h *Host) LoadGrid(path string) error {
	g, err := grid.Load(path)
	if err != nil {
		return err
	}
	h.world.SetGrid(g)
	h.gridPath = path
	conlog.Printf("grid %s: %v, %d cells\n", path, grid.Bounds(g), grid.Count(g))
	return nil
}

// Frame applies pending grid reloads and runs the command buffer until it
// is empty or hits a wait.
func (h *Host) Frame(ctx context.Context) {
	h.ctx = ctx
	h.applyReloads()
	h.cbuf.Execute()
}

func (h *Host) applyReloads() {
	if h.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			h.reload(path)
		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			conlog.Warnf("watch: %v\n", err)
		default:
			return
		}
	}
}

func (h *Host) reload(path string) {
	if err := h.LoadGrid(path); err != nil {
		// keep the old grid until the file is valid again
		conlog.Warnf("reload %s: %v\n", path, err)
	}
}

// Run executes frames until the command buffer is empty. When watching it
// then keeps reloading the grid until ctx is done or "quit" is run.
func (h *Host) Run(ctx context.Context) error {
	for !h.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		h.Frame(ctx)
		if !h.cbuf.Empty() {
			continue
		}
		if h.watcher == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-h.watcher.Events:
			if !ok {
				return nil
			}
			h.reload(path)
		case err, ok := <-h.watcher.Errors:
			if !ok {
				return nil
			}
			conlog.Warnf("watch: %v\n", err)
		}
	}
	return nil
}

// Watch reloads the current grid file whenever it changes.
func (h *Host) Watch() error {
	if h.gridPath == "" {
		return errors.New("watch: no grid file loaded")
	}
	if h.watcher != nil {
		return nil
	}
	w, err := NewWatcher(h.gridPath)
	if err != nil {
		return err
	}
	h.watcher = w
	return nil
}

// Close stops watching.
func (h *Host) Close() error {
	if h.watcher == nil {
		return nil
	}
	err := h.watcher.Close()
	h.watcher = nil
	return err
}
