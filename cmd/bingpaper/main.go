package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bingpaper/internal/faults"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			if faults.IsUserError(err) {
				fmt.Fprintln(os.Stderr, "Run `bingpaper --list` for cached pictures or `bingpaper screens` for screens.")
			}
		}
		stop()
		os.Exit(faults.ExitCode(err))
	}
}
