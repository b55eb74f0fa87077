// SPDX-License-Identifier: Unlicense OR MIT

// Command canvaskit runs the widget demo and converts, measures, resizes
// and renders images with the canvas helpers.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gioui.org/app"

	"gioui.org/canvaskit/cmd/canvaskit/commands"
	"gioui.org/canvaskit/internal/demo"
)

func main() {
	go func() {
		os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
	}()
	app.Main()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli := commands.New(commands.DemoFunc(demo.Run))
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	return 0
}
