// Command efind maps component values onto the nearest IEC 60063
// preferred-value series, escalating through E3, E6, E12, ... until the
// requested error bound is met.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmarvin/efind/internal/app"
	"github.com/mmarvin/efind/internal/config"
)

func main() {
	cfg, err := config.Parse("efind", os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(app.ExitOK)
		}
		// Flag errors were already written to stderr by the flag set.
		os.Exit(app.ExitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Run(ctx, cfg, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
