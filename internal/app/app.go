// Package app wires configuration, services and rendering into the runnable
// application. It owns process-level concerns such as the global log level,
// theme initialization and exit codes.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/mmarvin/efind/internal/cli"
	"github.com/mmarvin/efind/internal/config"
	"github.com/mmarvin/efind/internal/eseries"
	"github.com/mmarvin/efind/internal/logging"
	"github.com/mmarvin/efind/internal/service"
	"github.com/mmarvin/efind/internal/ui"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Run executes one search according to cfg and renders the result to out.
// Diagnostics go to errOut. The returned value is the process exit code.
func Run(ctx context.Context, cfg *config.Config, out, errOut io.Writer) int {
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	interactive := false
	if f, ok := out.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	ui.InitTheme(cfg.NoColor || !interactive)
	t := ui.GetCurrentTheme()

	if len(cfg.Values) == 0 {
		fmt.Fprintf(errOut, "%serror:%s at least one value is required\n", t.Error, t.Reset)
		return ExitUsage
	}
	if cfg.RatioMode && len(cfg.Values) != 1 {
		fmt.Fprintf(errOut, "%serror:%s ratio mode takes exactly one value, got %d\n", t.Error, t.Reset, len(cfg.Values))
		return ExitUsage
	}

	subject := eseries.NewProgressSubject()

	// The spinner is only worth showing on a live terminal.
	var spin *cli.SearchSpinner
	if interactive && !cfg.JSONOutput {
		spin = cli.NewSearchSpinner(errOut)
		subject.Register(spin)
		spin.Start()
	}

	svc := service.NewSearchService(eseries.GlobalFactory(), eseries.Options{}, subject).
		WithLogger(logging.NewLogger(errOut, "search"))

	var (
		res *eseries.Result
		err error
	)
	if cfg.RatioMode {
		res, err = svc.FindRatio(ctx, cfg.Values[0], cfg.MaxError)
	} else {
		res, err = svc.FindSeries(ctx, cfg.Values, cfg.MaxError)
	}

	if spin != nil {
		spin.Stop()
	}

	if err != nil {
		fmt.Fprintf(errOut, "%serror:%s %v\n", t.Error, t.Reset, err)
		if errors.Is(err, eseries.ErrInvalidInput) {
			return ExitUsage
		}
		return ExitError
	}

	renderer := cli.NewRenderer(out, cfg.JSONOutput)
	if cfg.RatioMode {
		err = renderer.RenderRatio(res)
	} else {
		err = renderer.RenderValues(res)
	}
	if err != nil {
		fmt.Fprintf(errOut, "%serror:%s rendering result: %v\n", t.Error, t.Reset, err)
		return ExitError
	}

	// An exhausted progression is a negative answer, not a failure.
	return ExitOK
}
