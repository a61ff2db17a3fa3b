// Package timew builds Timewarrior command lines and submits them through a
// remote runner.
package timew

import (
	"context"
	"strings"

	"al.essio.dev/pkg/shellescape"

	"github.com/gorewood/clocky/internal/output"
	"github.com/gorewood/clocky/internal/remote"
)

// DefaultCommand is the remote Timewarrior executable.
const DefaultCommand = "timew"

// DefaultReport is what runs after every forwarded command.
var DefaultReport = []string{"report", "table", ":day"}

// Runner executes one shell command line remotely.
type Runner interface {
	Run(ctx context.Context, commandLine string) error
}

// StartRequest describes an entry that starts now.
type StartRequest struct {
	Tags       []string
	Annotation string
}

// TrackRequest describes a finished entry with resolved timestamps
// (YYYYMMDDTHHMMSS).
type TrackRequest struct {
	Tags       []string
	Annotation string
	Start      string
	End        string
}

// Client issues timew commands.
type Client struct {
	runner  Runner
	command string
	report  []string
}

// NewClient creates a Client. An empty command means DefaultCommand and an
// empty report means DefaultReport.
func NewClient(runner Runner, command string, report []string) *Client {
	if command == "" {
		command = DefaultCommand
	}
	if len(report) == 0 {
		report = DefaultReport
	}
	return &Client{runner: runner, command: command, report: report}
}

// CommandLine quotes each argument independently and prefixes the timew
// command. The command prefix is used verbatim so it may carry environment
// assignments or a path.
func (c *Client) CommandLine(args ...string) string {
	if len(args) == 0 {
		return c.command
	}
	return c.command + " " + shellescape.QuoteCommand(args)
}

// Forward runs timew with args exactly as the user typed them.
func (c *Client) Forward(ctx context.Context, args []string) error {
	return c.runner.Run(ctx, c.CommandLine(args...))
}

// Report runs the daily summary report.
func (c *Client) Report(ctx context.Context) error {
	return c.runner.Run(ctx, c.CommandLine(c.report...))
}

// Start begins tracking now with tags.
func (c *Client) Start(ctx context.Context, tags []string) error {
	return c.runner.Run(ctx, c.CommandLine(append([]string{"start"}, tags...)...))
}

// Track records a closed interval.
func (c *Client) Track(ctx context.Context, start, end string, tags []string) error {
	args := append([]string{"track", start, "-", end}, tags...)
	return c.runner.Run(ctx, c.CommandLine(args...))
}

// Annotate sets the annotation of the most recent entry (@1).
func (c *Client) Annotate(ctx context.Context, annotation string) error {
	return c.runner.Run(ctx, c.CommandLine("annotate", "@1", annotation))
}

// Begin starts an entry and annotates it when an annotation is given.
// The annotation is only attempted after a successful start.
func (c *Client) Begin(ctx context.Context, req StartRequest) error {
	if err := c.Start(ctx, req.Tags); err != nil {
		return failure(err, "failed to start time entry")
	}
	return c.annotate(ctx, req.Annotation)
}

// Record tracks a past entry and annotates it when an annotation is given.
// The annotation is only attempted after a successful track.
func (c *Client) Record(ctx context.Context, req TrackRequest) error {
	if err := c.Track(ctx, req.Start, req.End, req.Tags); err != nil {
		return failure(err, "failed to track time entry")
	}
	return c.annotate(ctx, req.Annotation)
}

func (c *Client) annotate(ctx context.Context, annotation string) error {
	if annotation == "" {
		return nil
	}
	if err := c.Annotate(ctx, annotation); err != nil {
		return failure(err, "failed to add annotation")
	}
	return nil
}

// failure keeps the exit code of err. Remote failures already printed their
// own diagnostics, so only launch failures get the cause appended.
func failure(err error, message string) error {
	if !remote.IsStatusError(err) {
		message += ": " + err.Error()
	}
	return output.Reword(err, message)
}

// SplitTags splits space-separated tag input. Blank input yields no tags.
func SplitTags(input string) []string {
	return strings.Fields(input)
}
