// Package signal provides signal handling for graceful shutdown of the
// checksum-check CLI.
//
// The SetupSignalHandler function registers handlers for SIGINT and SIGTERM.
// The first signal calls the cleanup callback and cancels the provided
// context, letting files already being hashed finish. A second signal exits
// the process immediately.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Swatto86/checksum-check/internal/exitcode"
)

// exit is os.Exit, swapped out in tests.
var exit = os.Exit

// SetupSignalHandler registers SIGINT and SIGTERM handlers.
// When a signal is received, it calls the onInterrupt callback (if non-nil),
// then cancels the context. A second signal terminates the process with the
// Interrupted exit code without waiting for in-flight work.
//
// This function starts a goroutine that listens for signals. The goroutine
// terminates when the context is canceled before any signal arrives, or
// after the second signal.
//
// Example usage:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	signal.SetupSignalHandler(ctx, cancel, func() {
//	    fmt.Println("Received interrupt signal, finishing current file...")
//	})
func SetupSignalHandler(ctx context.Context, cancel context.CancelFunc, onInterrupt func()) {
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			if onInterrupt != nil {
				onInterrupt()
			}
			cancel()
		case <-ctx.Done():
			signal.Stop(sigCh)
			return
		}

		// The user is done waiting.
		<-sigCh
		exit(exitcode.Interrupted)
	}()
}
