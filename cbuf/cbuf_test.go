// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"errors"
	"reflect"
	"testing"

	"github.com/trepidacious/hexahedron3/cmd"
)

func TestWait(t *testing.T) {
	c := CommandBuffer{}
	runCount := 0
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			runCount++
			return true, nil
		}})
	c.AddText("wait\n")
	c.AddText("test\n")
	c.AddText("test\n")
	c.AddText("wait\n")
	c.AddText("test\n")
	c.Execute()
	if runCount != 0 {
		t.Errorf("runCount=%v, want %v", runCount, 0)
	}
	c.Execute()
	if runCount != 2 {
		t.Errorf("runCount=%v, want %v", runCount, 2)
	}
	c.Execute()
	if runCount != 3 {
		t.Errorf("runCount=%v, want %v", runCount, 3)
	}
	if !c.Empty() {
		t.Errorf("buffer not empty after all lines ran")
	}
}

func record(got *[]string) Efunc {
	return func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
		*got = append(*got, a.Full())
		return true, nil
	}
}

func TestSplit(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []string
	}{
		{"a;b\nc", []string{"a", "b", "c"}},
		{`echo "x;y";z`, []string{`echo "x;y"`, "z"}},
		{"\n\n a \n", []string{"a"}},
		{"// note\nb", []string{"b"}},
	} {
		var got []string
		c := CommandBuffer{}
		c.SetCommandExecutors([]Efunc{record(&got)})
		c.AddText(tc.in)
		c.Execute()
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%q ran %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInsertText(t *testing.T) {
	var got []string
	c := CommandBuffer{}
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			if a.Argv(0).String() == "exec" {
				cb.InsertText("inner")
			}
			got = append(got, a.Full())
			return true, nil
		}})
	c.AddText("exec\nouter\n")
	c.Execute()
	if want := []string{"exec", "inner", "outer"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ran %q, want %q", got, want)
	}
}

func TestExecutorOrder(t *testing.T) {
	var got []string
	c := CommandBuffer{}
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			if a.Argv(0).String() == "bad" {
				return false, errors.New("bad")
			}
			return a.Argv(0).String() == "first", nil
		},
		record(&got),
	})
	c.AddText("first\nbad\nsecond\n")
	c.Execute()
	if want := []string{"second"}; !reflect.DeepEqual(got, want) {
		t.Errorf("second executor ran %q, want %q", got, want)
	}
}
