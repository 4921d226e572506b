// Package output provides structured output handling for the moodmark CLI.
//
// Every command can print for a person or for a program. The Printer switches
// between the two based on the --json flag and whether stdout is a terminal:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "3 notes created"})
//	printer.Error(err)
//
// In JSON mode, errors are written as {"error": "message", "code": N}.
// Human output is styled with lipgloss; styles are cleared when the output is
// piped or --color-output=never is given.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Bad arguments, unreadable or empty journal
//	output.ExitSystemError // 2: I/O failure while writing notes
//	output.ExitAborted     // 130: Interrupted at a prompt
//
// Commands convert domain errors into *ExitError values with NewUserError,
// NewSystemError, NewSystemErrorWithCause and NewAbortedError; GetExitCode
// turns the returned error into the process exit code.
package output
