// Package main is the entry point for the nordmenu CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/nordmenu/internal/cli"
	"github.com/rshade/nordmenu/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps its outcome to an exit code.
func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ctrl+C anywhere exits the way choosing 0 from the main menu does.
	// Menu reads block on stdin, so a cancelled context alone would
	// leave the process waiting for one more line of input.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n\nExiting...")
		os.Exit(0)
	}()

	root := cli.NewRootCmd(version.GetVersion())
	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}
