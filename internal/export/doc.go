// Package export writes journal days into a vault as Markdown notes.
//
// Each non-empty day becomes one file:
//
//	<destination>/YYYY/MM/YYYY-MM-DD.md
//
// A Manager decides per file what to do:
//
//   - missing file: create it (and its directories)
//   - identical content: leave it alone
//   - different content: overwrite or keep it according to the force mode,
//     asking a Decider when no mode was given
//
// Files are written whole through a temporary file and a rename, so a note is
// never left half written. A failure on one file is counted and logged; the
// remaining days are still processed. Interrupting a prompt stops the run
// with ErrAborted.
//
// # JSON Views
//
// Views and FormatJSON give the machine-readable form of days used by
// `days --json`, `preview --json` and the MCP tools:
//
//	views, err := export.Views(j.Days(), destination, false)
//	if err != nil {
//		return err
//	}
//	return export.FormatJSON(printer, views)
package export
