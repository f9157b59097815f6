// SPDX-License-Identifier: GPL-2.0-or-later

// Package cvar implements console variables. A variable is a string with a
// float view of it; setting either keeps both in sync.
package cvar

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trepidacious/hexahedron3/cmd"
	"github.com/trepidacious/hexahedron3/conlog"
)

var (
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
)

type flag uint64

const (
	NONE flag = 0
	// ARCHIVE variables are written by "save".
	ARCHIVE flag = 1
	// ROM variables can not be changed from the console.
	ROM flag = 1 << 6
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	archive  bool
	rom      bool
	user     bool
	callback CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
}

func All() []*Cvar {
	return cvarArray
}

func (cv *Cvar) Archive() bool     { return cv.archive }
func (cv *Cvar) ReadOnly() bool    { return cv.rom }
func (cv *Cvar) UserDefined() bool { return cv.user }
func (cv *Cvar) Name() string      { return cv.name }
func (cv *Cvar) String() string    { return cv.stringValue }
func (cv *Cvar) Value() float32    { return cv.value }
func (cv *Cvar) Default() string   { return cv.defaultValue }
func (cv *Cvar) Bool() bool        { return cv.stringValue != "0" && cv.stringValue != "" }

// SetCallback installs f to run after every change and runs it once now.
func (cv *Cvar) SetCallback(f CallbackFunc) {
	cv.callback = f
	if f != nil {
		f(cv)
	}
}

func (cv *Cvar) SetByString(s string) {
	if cv.rom {
		conlog.Printf("%s is read only\n", cv.name)
		return
	}
	cv.set(s)
}

func (cv *Cvar) set(s string) {
	cv.stringValue = s
	pf, _ := strconv.ParseFloat(s, 32)
	cv.value = float32(pf)
	if cv.callback != nil {
		cv.callback(cv)
	}
}

func (cv *Cvar) SetValue(value float32) {
	cv.SetByString(strconv.FormatFloat(float64(value), 'f', -1, 32))
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.defaultValue)
}

func (cv *Cvar) Toggle() {
	if cv.Bool() {
		cv.SetByString("0")
	} else {
		cv.SetByString("1")
	}
}

func Get(name string) (*Cvar, bool) {
	cv, ok := cvarByName[strings.ToLower(name)]
	return cv, ok
}

func create(name, value string) *Cvar {
	cv := &Cvar{name: strings.ToLower(name), defaultValue: value}
	cv.set(value)
	cvarArray = append(cvarArray, cv)
	cvarByName[cv.name] = cv
	return cv
}

func Register(name, value string, flags flag) (*Cvar, error) {
	if _, ok := Get(name); ok {
		return nil, errors.Errorf("can't register variable %s, already defined", name)
	}
	cv := create(name, value)
	cv.archive = flags&ARCHIVE != 0
	cv.rom = flags&ROM != 0
	return cv, nil
}

func MustRegister(name, value string, flags flag) *Cvar {
	cv, err := Register(name, value, flags)
	if err != nil {
		panic(err)
	}
	return cv
}

// Execute is a command buffer executor: a line starting with a variable
// name prints the variable, or sets it if a value follows.
func Execute(a cmd.Arguments) (bool, error) {
	if a.Len() == 0 {
		return false, nil
	}
	cv, ok := Get(a.Argv(0).String())
	if !ok {
		return false, nil
	}
	if a.Len() == 1 {
		conlog.Printf("\"%s\" is \"%s\"\n", cv.Name(), cv.String())
		return true, nil
	}
	cv.SetByString(a.Argv(1).String())
	return true, nil
}

// Archived returns "set" lines restoring every ARCHIVE variable that differs
// from its default, sorted by name.
func Archived() []string {
	var lines []string
	for _, cv := range cvarArray {
		if cv.archive && cv.stringValue != cv.defaultValue {
			lines = append(lines, "set "+cv.name+" \""+cv.stringValue+"\"")
		}
	}
	sort.Strings(lines)
	return lines
}

// AddCommands registers the variable commands with c.
func AddCommands(c *cmd.Commands) error {
	for _, e := range []struct {
		name string
		f    cmd.QFunc
	}{
		{"cvarlist", list},
		{"inc", inc},
		{"reset", reset},
		{"resetall", resetAll},
		{"set", set(c)},
		{"toggle", toggle},
	} {
		if err := c.Add(e.name, e.f); err != nil {
			return err
		}
	}
	return nil
}

func set(c *cmd.Commands) cmd.QFunc {
	return func(a cmd.Arguments) error {
		if a.Len() < 3 {
			conlog.Printf("set <cvar> <value>\n")
			return nil
		}
		name := a.Argv(1).String()
		if c.Exists(name) {
			return errors.Errorf("%s is a command", name)
		}
		if cv, ok := Get(name); ok {
			cv.SetByString(a.Argv(2).String())
			return nil
		}
		cv := create(name, a.Argv(2).String())
		cv.user = true
		return nil
	}
}

func toggle(a cmd.Arguments) error {
	if a.Len() != 2 {
		conlog.Printf("toggle <cvar> : toggle cvar\n")
		return nil
	}
	cv, ok := Get(a.Argv(1).String())
	if !ok {
		return errors.Errorf("variable %v not found", a.Argv(1).String())
	}
	cv.Toggle()
	return nil
}

func inc(a cmd.Arguments) error {
	var amount float32 = 1
	switch a.Len() {
	case 2:
	case 3:
		v, err := a.Argv(2).ParseFloat32()
		if err != nil {
			return errors.Wrap(err, "inc amount")
		}
		amount = v
	default:
		conlog.Printf("inc <cvar> [amount] : increment cvar\n")
		return nil
	}
	cv, ok := Get(a.Argv(1).String())
	if !ok {
		return errors.Errorf("variable %v not found", a.Argv(1).String())
	}
	cv.SetValue(cv.Value() + amount)
	return nil
}

func reset(a cmd.Arguments) error {
	if a.Len() != 2 {
		conlog.Printf("reset <cvar> : reset cvar to default\n")
		return nil
	}
	cv, ok := Get(a.Argv(1).String())
	if !ok {
		return errors.Errorf("variable %v not found", a.Argv(1).String())
	}
	cv.Reset()
	return nil
}

func resetAll(_ cmd.Arguments) error {
	for _, cv := range cvarArray {
		if !cv.rom {
			cv.Reset()
		}
	}
	return nil
}

func list(a cmd.Arguments) error {
	part := a.Argv(1).String()
	count := 0
	for _, v := range cvarArray {
		if !strings.HasPrefix(v.name, part) {
			continue
		}
		mark := " "
		if v.archive {
			mark = "*"
		}
		conlog.SafePrintf("%s %s \"%s\"\n", mark, v.name, v.stringValue)
		count++
	}
	if part == "" {
		conlog.SafePrintf("%v cvars\n", count)
	} else {
		conlog.SafePrintf("%v cvars beginning with \"%v\"\n", count, part)
	}
	return nil
}
