// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"reflect"
	"testing"

	"github.com/trepidacious/hexahedron3/cmd"
)

func run(t *testing.T, c *cmd.Commands, line string) error {
	t.Helper()
	a := cmd.Parse(line)
	ok, err := c.Execute(a)
	if !ok {
		if ok, err = Execute(a); !ok {
			t.Fatalf("%q not handled", line)
		}
	}
	return err
}

func commands(t *testing.T) *cmd.Commands {
	t.Helper()
	c := cmd.New()
	if err := AddCommands(c); err != nil {
		t.Fatalf("AddCommands: %v", err)
	}
	return c
}

func TestRegister(t *testing.T) {
	cv := MustRegister("test_speed", "3.5", ARCHIVE)
	if cv.Value() != 3.5 || cv.String() != "3.5" {
		t.Errorf("got %v %q, want 3.5", cv.Value(), cv.String())
	}
	if _, err := Register("TEST_SPEED", "1", NONE); err == nil {
		t.Errorf("duplicate Register succeeded")
	}
	if got, ok := Get("Test_Speed"); !ok || got != cv {
		t.Errorf("Get is not case insensitive")
	}
}

func TestCommandsChangeValues(t *testing.T) {
	c := commands(t)
	cv := MustRegister("test_cmds", "1", NONE)

	for _, tc := range []struct {
		line string
		want string
	}{
		{"test_cmds 4", "4"},
		{"inc test_cmds", "5"},
		{"inc test_cmds -0.5", "4.5"},
		{"toggle test_cmds", "0"},
		{"toggle test_cmds", "1"},
		{"set test_cmds 7", "7"},
		{"reset test_cmds", "1"},
	} {
		if err := run(t, c, tc.line); err != nil {
			t.Fatalf("%q: %v", tc.line, err)
		}
		if cv.String() != tc.want {
			t.Errorf("after %q value %q, want %q", tc.line, cv.String(), tc.want)
		}
	}
}

func TestErrors(t *testing.T) {
	c := commands(t)
	for _, line := range []string{
		"toggle no_such_var",
		"reset no_such_var",
		"inc no_such_var",
		"set cvarlist 1",
	} {
		if err := run(t, c, line); err == nil {
			t.Errorf("%q succeeded", line)
		}
	}
}

func TestReadOnly(t *testing.T) {
	c := commands(t)
	cv := MustRegister("test_rom", "2", ROM)
	if err := run(t, c, "set test_rom 9"); err != nil {
		t.Fatal(err)
	}
	if cv.String() != "2" {
		t.Errorf("read only variable changed to %q", cv.String())
	}
}

func TestCallbackAndUserVariables(t *testing.T) {
	c := commands(t)
	var seen []float32
	cv := MustRegister("test_cb", "1", NONE)
	cv.SetCallback(func(cv *Cvar) { seen = append(seen, cv.Value()) })
	cv.SetValue(2)
	if want := []float32{1, 2}; !reflect.DeepEqual(seen, want) {
		t.Errorf("callback saw %v, want %v", seen, want)
	}

	if err := run(t, c, "set test_user hello"); err != nil {
		t.Fatal(err)
	}
	u, ok := Get("test_user")
	if !ok || !u.UserDefined() || u.String() != "hello" {
		t.Errorf("user variable not created")
	}
}

func TestArchived(t *testing.T) {
	a := MustRegister("test_arch_a", "1", ARCHIVE)
	MustRegister("test_arch_b", "1", ARCHIVE)
	MustRegister("test_arch_c", "1", NONE).SetByString("2")
	a.SetByString("5")
	got := []string{}
	for _, l := range Archived() {
		if len(l) > 13 && l[:13] == "set test_arch" {
			got = append(got, l)
		}
	}
	if want := []string{`set test_arch_a "5"`}; !reflect.DeepEqual(got, want) {
		t.Errorf("Archived()=%q, want %q", got, want)
	}
}
