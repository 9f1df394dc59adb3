package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/guestlist/internal/cli"
	"github.com/katalvlaran/guestlist/internal/logging"
)

// main is the entry point for the guestlist command.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		logger, loggerErr := logging.NewApplicationLogger(false)
		if loggerErr != nil {
			panic(fmt.Errorf("initialize logger: %w", loggerErr))
		}
		stop()
		logger.Fatal("guestlist failed: " + err.Error())
	}
}
