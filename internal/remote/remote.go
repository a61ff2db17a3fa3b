package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gorewood/clocky/internal/output"
)

// Stdio wires the remote process to local streams.
// A nil Stdin reads from the null device.
type Stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Executor starts a local process and waits for it.
// The returned error should expose ExitCode() when the process ran but failed.
type Executor interface {
	Execute(ctx context.Context, name string, args []string, stdio Stdio) error
}

// ExecExecutor runs processes with os/exec.
type ExecExecutor struct{}

// Execute implements Executor.
func (ExecExecutor) Execute(ctx context.Context, name string, args []string, stdio Stdio) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdio.Stdin
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr
	return cmd.Run()
}

// StatusError reports a remote command that ran and exited non-zero.
type StatusError struct {
	Host        string
	CommandLine string
	Code        int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s on %s exited with status %d", e.CommandLine, e.Host, e.Code)
}

// exitCoder is satisfied by *exec.ExitError.
type exitCoder interface {
	ExitCode() int
}

// Runner executes command lines on one host.
type Runner struct {
	host     string
	ssh      string
	tty      bool
	stdio    Stdio
	executor Executor
	logger   *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithSSH sets the ssh binary (default "ssh").
func WithSSH(path string) Option {
	return func(r *Runner) {
		if path != "" {
			r.ssh = path
		}
	}
}

// WithTTY controls whether ssh is asked for a pseudo-terminal (-t).
func WithTTY(tty bool) Option {
	return func(r *Runner) { r.tty = tty }
}

// WithStdio replaces the process streams (default: the local terminal).
func WithStdio(stdio Stdio) Option {
	return func(r *Runner) { r.stdio = stdio }
}

// WithExecutor replaces process execution, for tests.
func WithExecutor(executor Executor) Option {
	return func(r *Runner) { r.executor = executor }
}

// WithLogger sets the logger for invocation records.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a Runner for host.
func NewRunner(host string, opts ...Option) *Runner {
	r := &Runner{
		host: host,
		ssh:  "ssh",
		tty:  true,
		stdio: Stdio{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
		executor: ExecExecutor{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// With returns a copy of r with opts applied.
func (r *Runner) With(opts ...Option) *Runner {
	clone := *r
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}

// Args returns the ssh argument vector for commandLine.
func (r *Runner) Args(commandLine string) []string {
	args := make([]string, 0, 3)
	if r.tty {
		args = append(args, "-t")
	}
	return append(args, r.host, commandLine)
}

// Run executes commandLine on the host and waits for it to finish.
func (r *Runner) Run(ctx context.Context, commandLine string) error {
	if r.host == "" {
		return output.NewUserError("no remote host configured: set host in config.yaml or CLOCKY_HOST")
	}

	started := time.Now()
	r.logger.Debug("running remote command", "host", r.host, "command", commandLine, "tty", r.tty)

	err := r.executor.Execute(ctx, r.ssh, r.Args(commandLine), r.stdio)
	elapsed := time.Since(started).Round(time.Millisecond)
	if err == nil {
		r.logger.Debug("remote command finished", "host", r.host, "code", 0, "elapsed", elapsed)
		return nil
	}

	var coder exitCoder
	if errors.As(err, &coder) && ctx.Err() == nil {
		code := coder.ExitCode()
		r.logger.Info("remote command failed", "host", r.host, "command", commandLine, "code", code, "elapsed", elapsed)
		status := &StatusError{Host: r.host, CommandLine: commandLine, Code: code}
		return output.NewRemoteError(code, status.Error(), status)
	}

	r.logger.Error("could not run ssh", "ssh", r.ssh, "err", err)
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return output.NewSystemErrorWithCause(r.ssh+" not found: ensure ssh is installed and in PATH", err)
	}
	return output.NewSystemErrorWithCause("error executing remote command: "+err.Error(), err)
}

// IsStatusError reports whether err came from a remote command that ran and
// exited non-zero, as opposed to ssh failing to launch.
func IsStatusError(err error) bool {
	var status *StatusError
	return errors.As(err, &status)
}
