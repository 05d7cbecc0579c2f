package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/repbench/internal/cli"
	apperrors "github.com/agbru/repbench/internal/errors"
	"github.com/agbru/repbench/internal/metrics"
	"github.com/agbru/repbench/internal/orchestration"
	"github.com/agbru/repbench/internal/report"
	"github.com/agbru/repbench/internal/server"
	"github.com/agbru/repbench/internal/tui"
)

// runBench executes one benchmark run: payload acquisition, sink and
// optional stats server setup, then the console, quiet or TUI front-end
// around the shared orchestration entry point.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	cfg := a.Config

	if !cfg.Quiet && !cfg.TUI {
		cli.PrintBanner(out)
	}

	payload, code, ok := a.acquirePayload(out)
	if !ok {
		return code
	}

	sink, err := report.NewFileSink(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeForError(err)
	}
	defer sink.Close()

	// Interrupts are handled only from here on; during the prompt the OS
	// default applies. The registration is released as soon as the run
	// context ends, so a second interrupt during the drain kills the
	// process instead of wedging the terminal.
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()
	go func(c context.Context) {
		<-c.Done()
		stopSignals()
	}(ctx)

	bench := &orchestration.Benchmark{
		Config:  cfg,
		Payload: payload,
		Sink:    sink,
		Logger:  a.Logger,
	}

	if cfg.MetricsAddr != "" {
		srv := server.NewServer(cfg.MetricsAddr, cfg.Workers, a.Logger)
		if _, err := srv.Start(ctx); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitCodeForError(err)
		}
		bench.Observer = srv
	}

	if cfg.TUI {
		return a.runTUI(ctx, bench, out)
	}

	if cfg.Duration > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, cfg.Duration)
		defer cancelTimeout()
	}

	if cfg.Quiet {
		return a.runQuiet(ctx, bench, out)
	}

	cli.PrintRunConfig(cfg, payload, out)
	bench.Presenter = cli.CLISummaryPresenter{Verbose: cfg.Verbose}

	if _, err := bench.Run(ctx, out); err != nil {
		a.Logger.Error("benchmark failed", err)
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeForError(err)
	}

	if cfg.Verbose {
		cli.DisplayMemoryStats(metrics.NewMemoryCollector().Snapshot(), out)
	}
	return apperrors.ExitSuccess
}

// acquirePayload returns the payload from -string, or prompts for one. The
// boolean reports whether the run should proceed; when it is false the int
// is the process exit code.
func (a *Application) acquirePayload(out io.Writer) (string, int, bool) {
	if a.Config.Payload != "" {
		return a.Config.Payload, apperrors.ExitSuccess, true
	}

	reader := cli.NewPayloadReader()
	reader.SetInput(a.In)
	reader.SetOutput(out)

	payload, err := reader.ReadPayload()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", apperrors.ExitSuccess, false
		}
		fmt.Fprintf(a.ErrWriter, "\nError reading input: %v\n", err)
		return "", apperrors.ExitCodeForError(err), false
	}
	return payload, apperrors.ExitSuccess, true
}

// runQuiet runs with the reporter's console stream discarded. A spinner
// animates on the error stream with the live figures, and standard output
// carries only the final summary.
func (a *Application) runQuiet(ctx context.Context, bench *orchestration.Benchmark, out io.Writer) int {
	spin := cli.NewSpinnerProgress(a.ErrWriter, a.Config.Duration)
	if bench.Observer != nil {
		bench.Observer = report.MultiStatsObserver(bench.Observer, spin)
	} else {
		bench.Observer = spin
	}

	spin.Start()
	summary, err := bench.Run(ctx, io.Discard)
	spin.Stop()

	if err != nil {
		a.Logger.Error("benchmark failed", err)
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeForError(err)
	}

	cli.CLISummaryPresenter{Verbose: a.Config.Verbose}.PresentSummary(summary, out)
	return apperrors.ExitSuccess
}

// runTUI runs the dashboard and re-presents the summary on standard output
// afterwards, since tearing down the alternate screen wipes it.
func (a *Application) runTUI(ctx context.Context, bench *orchestration.Benchmark, out io.Writer) int {
	summary, code, err := tui.Run(ctx, bench, a.Config, Version)
	if err != nil {
		a.Logger.Error("benchmark failed", err)
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return code
	}

	cli.CLISummaryPresenter{Verbose: a.Config.Verbose}.PresentSummary(summary, out)
	if a.Config.Verbose {
		cli.DisplayMemoryStats(metrics.NewMemoryCollector().Snapshot(), out)
	}
	return code
}
