// SPDX-License-Identifier: GPL-2.0-or-later

// Package snapshot saves and restores the movers of a world. The file is a
// protobuf encoded google.protobuf.Struct, so it can be inspected with any
// protobuf tool without a schema.
package snapshot

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/trepidacious/hexahedron3/collision"
	"github.com/trepidacious/hexahedron3/grid"
	"github.com/trepidacious/hexahedron3/math/vec"
	"github.com/trepidacious/hexahedron3/world"
)

// ErrGridMismatch is returned when a snapshot was taken in another grid.
var ErrGridMismatch = errors.New("snapshot belongs to a different grid")

type Mover struct {
	ID       uuid.UUID
	Name     string
	Position vec.Vec3
	Index    vec.Vec3i
	Velocity vec.Vec3
	Walking  bool
	State    collision.TouchAlign
}

type State struct {
	GridDigest uint64
	Tick       int
	Time       float64
	Movers     []Mover
}

// Capture reads the state of w.
func Capture(w *world.World) State {
	s := State{
		GridDigest: grid.Digest(w.Grid()),
		Tick:       w.Clock().FrameCount(),
		Time:       w.Clock().Time(),
	}
	for _, m := range w.Movers() {
		s.Movers = append(s.Movers, Mover{
			ID:       m.ID,
			Name:     m.Name,
			Position: m.Point.Position(),
			Index:    m.Point.Index(),
			Velocity: m.Walker.Velocity(),
			Walking:  m.Walking,
			State:    m.Point.State(),
		})
	}
	return s
}

// Apply replaces all movers of w with the ones in s. The grid of w must be
// the one s was captured in.
func (s State) Apply(w *world.World) error {
	if d := grid.Digest(w.Grid()); d != s.GridDigest {
		return errors.Wrapf(ErrGridMismatch, "digest %016x, want %016x", d, s.GridDigest)
	}
	w.Clear()
	for _, sm := range s.Movers {
		m, err := w.SpawnAt(sm.Name, sm.Position, sm.Index)
		if err != nil {
			return err
		}
		m.ID = sm.ID
		m.Walking = sm.Walking
		m.Point.SetState(sm.State)
		m.Walker.SetVelocity(sm.Velocity)
	}
	w.Clock().Set(s.Tick, s.Time)
	return nil
}

func floats(v vec.Vec3) []interface{} {
	return []interface{}{float64(v.X), float64(v.Y), float64(v.Z)}
}

func ints(v vec.Vec3i) []interface{} {
	return []interface{}{v.X, v.Y, v.Z}
}

func flags(b *[2][3]bool) []interface{} {
	r := make([]interface{}, 0, 6)
	for _, d := range b {
		for _, f := range d {
			r = append(r, f)
		}
	}
	return r
}

// Marshal encodes s.
func Marshal(s State) ([]byte, error) {
	movers := make([]interface{}, 0, len(s.Movers))
	for _, m := range s.Movers {
		movers = append(movers, map[string]interface{}{
			"id":       m.ID.String(),
			"name":     m.Name,
			"position": floats(m.Position),
			"index":    ints(m.Index),
			"velocity": floats(m.Velocity),
			"walking":  m.Walking,
			"touching": flags(&m.State.Touching),
			"aligned":  flags(&m.State.Aligned),
		})
	}
	st, err := structpb.NewStruct(map[string]interface{}{
		// numbers are doubles, too small for a 64 bit digest
		"grid_digest": strconv.FormatUint(s.GridDigest, 16),
		"tick":        s.Tick,
		"time":        s.Time,
		"movers":      movers,
	})
	if err != nil {
		return nil, errors.Wrap(err, "snapshot")
	}
	out, err := proto.Marshal(st)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot")
	}
	return out, nil
}

// Unmarshal decodes a snapshot written by Marshal.
func Unmarshal(data []byte) (State, error) {
	var s State
	st := &structpb.Struct{}
	if err := proto.Unmarshal(data, st); err != nil {
		return s, errors.Wrap(err, "decode snapshot")
	}
	f := st.GetFields()
	d, err := strconv.ParseUint(f["grid_digest"].GetStringValue(), 16, 64)
	if err != nil {
		return s, errors.Wrap(err, "grid_digest")
	}
	s.GridDigest = d
	s.Tick = int(f["tick"].GetNumberValue())
	s.Time = f["time"].GetNumberValue()

	for i, v := range f["movers"].GetListValue().GetValues() {
		m, err := decodeMover(v.GetStructValue())
		if err != nil {
			return s, errors.Wrapf(err, "mover %d", i)
		}
		s.Movers = append(s.Movers, m)
	}
	return s, nil
}

func decodeMover(st *structpb.Struct) (Mover, error) {
	var m Mover
	if st == nil {
		return m, errors.New("not a struct")
	}
	f := st.GetFields()
	id, err := uuid.Parse(f["id"].GetStringValue())
	if err != nil {
		return m, errors.Wrap(err, "id")
	}
	m.ID = id
	m.Name = f["name"].GetStringValue()
	if m.Name == "" {
		return m, errors.New("missing name")
	}
	m.Walking = f["walking"].GetBoolValue()

	pos, err := numbers(f["position"], 3)
	if err != nil {
		return m, errors.Wrap(err, "position")
	}
	idx, err := numbers(f["index"], 3)
	if err != nil {
		return m, errors.Wrap(err, "index")
	}
	vel, err := numbers(f["velocity"], 3)
	if err != nil {
		return m, errors.Wrap(err, "velocity")
	}
	for i := 0; i < 3; i++ {
		m.Position.Set(i, float32(pos[i]))
		m.Index.Set(i, int(idx[i]))
		m.Velocity.Set(i, float32(vel[i]))
	}
	if err := bools(f["touching"], &m.State.Touching); err != nil {
		return m, errors.Wrap(err, "touching")
	}
	if err := bools(f["aligned"], &m.State.Aligned); err != nil {
		return m, errors.Wrap(err, "aligned")
	}
	return m, nil
}

func numbers(v *structpb.Value, n int) ([]float64, error) {
	vs := v.GetListValue().GetValues()
	if len(vs) != n {
		return nil, errors.Errorf("%d values, want %d", len(vs), n)
	}
	r := make([]float64, n)
	for i, e := range vs {
		if _, ok := e.GetKind().(*structpb.Value_NumberValue); !ok {
			return nil, errors.Errorf("value %d is not a number", i)
		}
		r[i] = e.GetNumberValue()
	}
	return r, nil
}

func bools(v *structpb.Value, out *[2][3]bool) error {
	vs := v.GetListValue().GetValues()
	if len(vs) != 6 {
		return errors.Errorf("%d values, want 6", len(vs))
	}
	for i, e := range vs {
		out[i/3][i%3] = e.GetBoolValue()
	}
	return nil
}

// Save writes the state of w to path.
func Save(path string, w *world.World) error {
	out, err := Marshal(Capture(w))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0660); err != nil {
		return errors.Wrap(err, "write snapshot")
	}
	return nil
}

// Load reads path and applies it to w.
func Load(path string, w *world.World) error {
	in, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read snapshot")
	}
	s, err := Unmarshal(in)
	if err != nil {
		return err
	}
	return s.Apply(w)
}

func (m Mover) String() string {
	return fmt.Sprintf("%s %s at %v in %v", m.Name, m.ID, m.Position, m.Index)
}
