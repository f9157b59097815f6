// SPDX-License-Identifier: GPL-2.0-or-later

// Package world keeps named points in one grid and steps their walkers.
//
// Commands change the world between ticks. During Step every walking
// mover runs on its own goroutine; the grid is only read then.
package world

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/trepidacious/hexahedron3/collision"
	"github.com/trepidacious/hexahedron3/conlog"
	"github.com/trepidacious/hexahedron3/gametime"
	"github.com/trepidacious/hexahedron3/grid"
	"github.com/trepidacious/hexahedron3/math/vec"
	"github.com/trepidacious/hexahedron3/walker"
)

var (
	ErrExists   = errors.New("mover already exists")
	ErrNotFound = errors.New("no such mover")
	ErrOccupied = errors.New("cell is occupied")
)

type Mover struct {
	ID     uuid.UUID
	Name   string
	Point  *collision.PointGeom
	Walker *walker.Walker
	// Walking movers are stepped by Step.
	Walking bool
}

type World struct {
	mu     sync.RWMutex
	grid   grid.Grid
	movers map[string]*Mover
	clock  gametime.GameTime
}

func New(g grid.Grid) *World {
	return &World{
		grid:   g,
		movers: make(map[string]*Mover),
	}
}

func (w *World) Grid() grid.Grid {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid
}

// Clock is the simulation clock. It is only advanced by Step.
func (w *World) Clock() *gametime.GameTime {
	return &w.clock
}

// SetGrid swaps the grid. Every mover keeps its position and cell and gets
// its contacts surveyed again in the new grid. Velocities are kept.
func (w *World) SetGrid(g grid.Grid) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.grid = g
	for _, m := range w.movers {
		m.rebind(collision.NewPointAt(g, m.Point.Position(), m.Point.Index()))
	}
}

func (m *Mover) rebind(p *collision.PointGeom) {
	nw := walker.New(p)
	if m.Walker != nil {
		nw.SetVelocity(m.Walker.Velocity())
		nw.SetInput(m.Walker.Input())
	}
	m.Point = p
	m.Walker = nw
}

// Spawn adds a mover at position. The cell it starts in must be empty.
func (w *World) Spawn(name string, position vec.Vec3) (*Mover, error) {
	return w.SpawnAt(name, position, vec.Floor(position))
}

// SpawnAt is Spawn with an explicit cell, see collision.NewPointAt.
func (w *World) SpawnAt(name string, position vec.Vec3, index vec.Vec3i) (*Mover, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.movers[name]; ok {
		return nil, errors.Wrap(ErrExists, name)
	}
	if w.grid.Presence(index) {
		return nil, errors.Wrapf(ErrOccupied, "spawn %s at %v", name, index)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "mover id")
	}
	m := &Mover{ID: id, Name: name}
	m.rebind(collision.NewPointAt(w.grid, position, index))
	w.movers[name] = m
	conlog.DPrintf("spawned %s %v at %v\n", name, id, position)
	return m, nil
}

func (w *World) Remove(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.movers[name]; !ok {
		return errors.Wrap(ErrNotFound, name)
	}
	delete(w.movers, name)
	return nil
}

// Clear removes all movers and resets the clock.
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.movers = make(map[string]*Mover)
	w.clock.Reset()
}

func (w *World) Mover(name string) (*Mover, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	m, ok := w.movers[name]
	if !ok {
		return nil, errors.Wrap(ErrNotFound, name)
	}
	return m, nil
}

// Movers returns all movers sorted by name.
func (w *World) Movers() []*Mover {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ms := make([]*Mover, 0, len(w.movers))
	for _, m := range w.movers {
		ms = append(ms, m)
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i].Name < ms[j].Name })
	return ms
}

// Step advances the clock by one frame and moves every walking mover.
// A mover that runs into the slide step limit fails the step with an error
// naming it; the other movers still finish their frame.
func (w *World) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dt := w.clock.Advance()
	p := walker.ParamsFromCvars()

	w.mu.RLock()
	defer w.mu.RUnlock()

	var g errgroup.Group
	for _, m := range w.movers {
		if !m.Walking {
			continue
		}
		m := m
		g.Go(func() error {
			return m.step(dt, p)
		})
	}
	return g.Wait()
}

func (m *Mover) step(dt float32, p walker.Params) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				e = errors.New(fmt.Sprint(r))
			}
			err = errors.Wrapf(e, "mover %s", m.Name)
		}
	}()
	m.Walker.Step(dt, p)
	return nil
}
