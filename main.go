// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/trepidacious/hexahedron3/conlog"
	"github.com/trepidacious/hexahedron3/grid"
	"github.com/trepidacious/hexahedron3/host"
	"github.com/trepidacious/hexahedron3/math/vec"
)

var (
	execFile = flag.String("exec", "", "script to run, - reads stdin")
	gridFile = flag.String("grid", "", "grid file to load")
	watch    = flag.Bool("watch", false, "reload the grid file when it changes")
	verbose  = flag.Bool("v", false, "developer output")
)

func run(ctx context.Context) error {
	if err := conlog.Init(*verbose); err != nil {
		return err
	}
	defer conlog.Logger().Sync()

	h, err := host.New(grid.NewChunked(vec.Vec3i{X: 64, Y: 64, Z: 64}, grid.DefaultChunkSize))
	if err != nil {
		return err
	}
	defer h.Close()

	if *verbose {
		h.AddText("developer 1\n")
	}
	if *gridFile != "" {
		if err := h.LoadGrid(*gridFile); err != nil {
			return err
		}
		if *watch {
			if err := h.Watch(); err != nil {
				return err
			}
		}
	}
	switch *execFile {
	case "":
	case "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		h.AddText(string(b))
	default:
		if err := h.Exec(*execFile); err != nil {
			return err
		}
	}
	h.AddText(strings.Join(flag.Args(), " ") + "\n")
	return h.Run(ctx)
}

func main() {
	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "hexahedron3: %v\n", err)
		os.Exit(1)
	}
}
