// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/trepidacious/hexahedron3/conlog"
)

type QFunc func(a Arguments) error

// Commands maps lower case command names to their functions.
type Commands map[string]QFunc

func New() *Commands {
	c := make(Commands)
	return &c
}

func (c *Commands) Add(name string, f QFunc) error {
	ln := strings.ToLower(name)
	if _, ok := (*c)[ln]; ok {
		return errors.Errorf("command %s already defined", ln)
	}
	(*c)[ln] = f
	return nil
}

func (c *Commands) Exists(cmdName string) bool {
	_, ok := (*c)[strings.ToLower(cmdName)]
	return ok
}

func (c *Commands) List() []string {
	cmds := make([]string, 0, len(*c))
	for cmd := range *c {
		cmds = append(cmds, cmd)
	}
	sort.Strings(cmds)
	return cmds
}

// Execute runs the command named by the first argument. It reports false if
// there is no such command.
func (c *Commands) Execute(a Arguments) (bool, error) {
	n := a.Args()
	if len(n) == 0 {
		return false, nil
	}
	name := strings.ToLower(n[0].String())
	cmd, ok := (*c)[name]
	if !ok {
		return false, nil
	}
	if err := cmd(a); err != nil {
		return true, errors.Wrap(err, name)
	}
	return true, nil
}

// PrintList is the cmdlist command. With an argument only commands starting
// with it are listed.
func (c *Commands) PrintList(a Arguments) error {
	cl := c.List()
	if a.Len() < 2 {
		for _, n := range cl {
			conlog.SafePrintf("  %s\n", n)
		}
		conlog.SafePrintf("%v commands\n", len(cl))
		return nil
	}
	part := a.Argv(1).String()
	count := 0
	for _, n := range cl {
		if strings.HasPrefix(n, part) {
			conlog.SafePrintf("  %s\n", n)
			count++
		}
	}
	conlog.SafePrintf("%v commands beginning with \"%v\"\n", count, part)
	return nil
}

func Must(err error) {
	if err != nil {
		panic(err.Error())
	}
}
