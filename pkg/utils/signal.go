package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalContext returns a context cancelled on SIGINT/SIGTERM.
func SetupSignalContext() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}
