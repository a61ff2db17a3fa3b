// Package output provides styled terminal output and exit-code carrying errors for clocky.
//
// # Printer
//
// The Printer writes human-readable lines with lipgloss styling that is
// disabled when output is piped:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), output.IsTTY(cmd.OutOrStdout())).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Success("Tracked 1h30m")
//	printer.KeyValue("Start", "20240501T090000")
//	printer.Error(err)
//
// # Exit Codes
//
// clocky exits 0 on success and 1 for its own failures (bad input, ssh not
// launchable). When the remote time tracker fails, clocky exits with the
// remote status instead:
//
//	output.NewUserError("malformed time input: \"25pm\"")      // exit 1
//	output.NewRemoteError(3, "failed to add annotation", err) // exit 3
//
// Quiet marks an error so the CLI exits with its code without printing it,
// for the case where the remote tool already explained the failure.
package output
