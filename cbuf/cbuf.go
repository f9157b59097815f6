// SPDX-License-Identifier: GPL-2.0-or-later

// Package cbuf holds console text until it is executed. Lines are split on
// newlines and on semicolons outside of quotes. A "wait" line stops
// execution until the next frame.
package cbuf

import (
	"strings"

	"github.com/trepidacious/hexahedron3/cmd"
	"github.com/trepidacious/hexahedron3/conlog"
)

// Efunc tries to execute a line. It reports whether it knew the command.
type Efunc func(*CommandBuffer, cmd.Arguments) (bool, error)

type CommandBuffer struct {
	buf       string
	wait      bool
	executors []Efunc
}

// SetCommandExecutors sets the executors asked in order for every line.
func (c *CommandBuffer) SetCommandExecutors(e []Efunc) {
	c.executors = e
}

// AddText appends text to the end of the buffer.
func (c *CommandBuffer) AddText(text string) {
	c.buf += text
}

// InsertText puts text in front of the buffer, so it runs next.
func (c *CommandBuffer) InsertText(text string) {
	c.buf = text + "\n" + c.buf
}

// Empty reports whether there is nothing left to execute.
func (c *CommandBuffer) Empty() bool {
	return strings.TrimSpace(c.buf) == ""
}

// Wait makes Execute return after the current line.
func (c *CommandBuffer) Wait() {
	c.wait = true
}

func (c *CommandBuffer) nextLine() string {
	quote := false
	i := 0
Loop:
	for ; i < len(c.buf); i++ {
		switch c.buf[i] {
		case '"':
			quote = !quote
		case ';':
			if !quote {
				break Loop
			}
		case '\n':
			break Loop
		}
	}
	line := c.buf[:i]
	if i < len(c.buf) {
		i++
	}
	c.buf = c.buf[i:]
	return line
}

// Execute runs lines until the buffer is empty or a wait is hit. Command
// errors are printed and do not stop the buffer.
func (c *CommandBuffer) Execute() {
	for len(c.buf) != 0 {
		c.execute(c.nextLine())
		if c.wait {
			c.wait = false
			return
		}
	}
}

func (c *CommandBuffer) execute(line string) {
	a := cmd.Parse(line)
	args := a.Args()
	if len(args) == 0 {
		return
	}
	if strings.EqualFold(args[0].String(), "wait") {
		c.wait = true
		return
	}
	for _, e := range c.executors {
		ok, err := e(c, a)
		if err != nil {
			conlog.Printf("%v\n", err)
			return
		}
		if ok {
			return
		}
	}
	conlog.Printf("Unknown command \"%s\"\n", args[0].String())
}
