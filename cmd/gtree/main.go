package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/gordian-engine/gtree/internal/gcmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := gcmd.NewRootCmd().ExecuteContext(ctx); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
