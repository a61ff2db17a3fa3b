// Package remote runs command lines on a named host over ssh.
//
// The command line is opaque text: callers quote their own arguments (see
// package timew) and the runner hands the string to ssh unchanged:
//
//	runner := remote.NewRunner("chum", remote.WithLogger(logger))
//	err := runner.Run(ctx, "timew report table :day")
//
// By default the remote process is attached to the local terminal with a
// forced pseudo-terminal (ssh -t), so timew can colorize and page its output.
// WithStdio and WithTTY(false) switch to captured, non-interactive runs.
//
// # Error Handling
//
// A non-zero remote exit becomes an *output.ExitError carrying the same code
// and wrapping a *StatusError. Failing to launch ssh at all is reported as a
// system error (exit code 1).
package remote
