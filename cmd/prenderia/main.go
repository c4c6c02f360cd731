package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	Execute()
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := BuildRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
