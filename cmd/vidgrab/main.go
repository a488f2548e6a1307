// Package main is the entrypoint of vidgrab.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"vidgrab/internal/cfg"
)

// main is the program entrypoint.
func main() {
	// Interrupts cancel the current download; remaining batch items are skipped.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cfg.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Println()
		cancel()
		os.Exit(1)
	}
}
