// Package usererror renders errors for the people running a command-line program.
//
// An Error holds a one-line summary, an ordered list of reasons, an optional
// help line and the display text of any foreign errors it was built from.
// Any other error can be rendered as well: its summary is its own text and its
// reasons are the texts of its cause chain, nearest cause first.
//
// Rendered output always goes to standard error:
//
//	Error: Failed to build project
//	 - Database could not be parsed
//	 - File "main.db" not found
//	Try: touch main.db
//
// Color is applied only when standard error is a color-capable terminal. The
// check runs on every render, so a Renderer built with a fake ColorProbe is
// enough to test colored output.
//
// Example usage:
//
//	usererror.New("Failed to build project").
//		Reason("Database could not be parsed").
//		Reason(`File "main.db" not found`).
//		Help("Try: touch main.db").
//		PrintAndExit()
//
// PrintAndExit terminates the process with status 1. Deferred functions do not
// run and other goroutines are stopped mid-flight, so call it only as the last
// statement of a program's failure path.
package usererror
