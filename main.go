package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/uptask/cmd"
	"github.com/thenoetrevino/uptask/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root := cmd.NewRootCmd()
	err := root.ExecuteContext(ctx)
	stop()

	// command errors were already reported by the formatter; anything else
	// came from cobra itself
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", root.CommandPath())
	}
	os.Exit(cli.CommandExitCode(err))
}
