// Command deckterm presents a markdown document as a slide deck in the
// terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"deckterm/internal/logging"
)

func main() {
	logging.ConfigureColor(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newCLI().execute(ctx, os.Args[1:])
	stop()

	if err != nil {
		printError(os.Stderr, err)
	}
	os.Exit(exitCodeFor(err))
}
