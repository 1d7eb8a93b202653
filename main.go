package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/reportgrid/cmd"
	"github.com/thenoetrevino/reportgrid/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := cmd.Execute(ctx)
	if err == nil {
		return
	}

	// Commands report their own failures; anything else came from flag
	// or argument parsing
	var exitErr *cli.StatusError
	if errors.As(err, &exitErr) {
		cancel()
		os.Exit(exitErr.Code)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	fmt.Fprintln(os.Stderr, "Run 'reportgrid --help' for usage.")
	cancel()
	os.Exit(cli.ExitUsage)
}
