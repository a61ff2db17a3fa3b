// Package main provides the entry point for the clocky CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gorewood/clocky/internal/config"
	"github.com/gorewood/clocky/internal/logging"
	"github.com/gorewood/clocky/internal/output"
	"github.com/gorewood/clocky/internal/remote"
	"github.com/gorewood/clocky/internal/timew"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

// app carries what every command needs. Commands never read globals.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	runner *remote.Runner
	now    func() time.Time
}

// newApp loads the configuration and builds the logger and remote runner.
// The returned close function is always non-nil.
func newApp() (*app, func() error, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, func() error { return nil }, output.NewUserErrorWithCause("invalid configuration: "+err.Error(), err)
	}

	logger, closeLog, err := logging.New(logging.Config{
		Dir:    config.Dir(),
		Debug:  logging.DebugEnabled(),
		Stderr: os.Stderr,
	})
	if err != nil {
		// Time tracking must keep working when the log directory is unusable.
		logger = logging.Discard()
	}

	runner := remote.NewRunner(cfg.Host,
		remote.WithSSH(cfg.SSH),
		remote.WithTTY(cfg.TTY),
		remote.WithLogger(logger),
	)
	return &app{cfg: cfg, logger: logger, runner: runner, now: time.Now}, closeLog, nil
}

// client returns a timew client bound to the configured runner.
func (a *app) client() *timew.Client {
	return timew.NewClient(a.runner, a.cfg.Command, a.cfg.Report)
}

// printer returns a Printer for cmd honoring the configured color mode.
func (a *app) printer(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	isTTY := output.ResolveColorMode(a.cfg.Color, output.IsTTY(out))
	return output.NewPrinter(out, isTTY).WithStderr(cmd.ErrOrStderr())
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	a, closeLog, err := newApp()
	defer func() { _ = closeLog() }()
	if err != nil {
		output.NewPrinter(os.Stderr, false).Error(err)
		return output.GetExitCode(err)
	}

	cmd := newRootCmd(a)
	err = fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	)
	return output.GetExitCode(err)
}

// handleError renders errors through fang unless the remote tool already
// reported them.
func handleError(w io.Writer, styles fang.Styles, err error) {
	if output.IsSilent(err) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command. Any arguments that are not a clocky
// subcommand are forwarded to timew untouched, flags included.
func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clocky [timew arguments...]",
		Short: "Run Timewarrior on a remote host",
		Long: `Clocky runs Timewarrior (timew) on the machine that owns your time data.

Every argument is passed to timew over ssh, quoted so it arrives unchanged.
After the command finishes, today's report is shown.

  clocky start meeting        runs: timew start meeting
  clocky stop                 runs: timew stop
  clocky begin                prompts for tags and an annotation
  clocky add                  prompts for a past entry and records it

The host, remote command and report are read from config.yaml in the
clocky config directory ($CLOCKY_CONFIG_HOME or ~/.config/clocky).`,
		Version:            buildVersion(),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForward(cmd, a, args)
		},
	}

	// "help" belongs to timew: clocky help summary runs timew help summary.
	cmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	cmd.AddGroup(&cobra.Group{ID: "entries", Title: "Recording entries:"})
	cmd.AddGroup(&cobra.Group{ID: "agents", Title: "Agent integration:"})
	cmd.AddCommand(newBeginCmd(a))
	cmd.AddCommand(newAddCmd(a))
	cmd.AddCommand(newServeCmd(a))

	return cmd
}

// runForward runs timew with args, prints a blank line and then today's
// report. The exit code is the forwarded command's.
func runForward(cmd *cobra.Command, a *app, args []string) error {
	ctx := cmd.Context()
	client := a.client()

	err := client.Forward(ctx, args)
	if err != nil && !remote.IsStatusError(err) {
		return err
	}

	a.printer(cmd).Println()
	if reportErr := client.Report(ctx); reportErr != nil {
		a.logger.Warn("daily report failed", "err", reportErr)
	}

	if err != nil {
		// timew already printed its own diagnostics.
		return output.Quiet(err)
	}
	return nil
}
