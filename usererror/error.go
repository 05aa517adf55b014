package usererror

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrEmptySummary is the panic value of New and the error returned by TryNew
// when the summary is empty.
var ErrEmptySummary = errors.New("usererror: summary must not be empty")

// Error is a user-facing error with a summary, reasons and an optional help line.
//
// The zero value is not usable; construct with New, TryNew, Default or From.
// An Error is owned by its caller and is not safe for concurrent mutation.
type Error struct {
	summary   string
	reasons   []string
	help      *string
	causes    []string
	originals []error
}

// New creates an Error with the given summary.
// It panics with ErrEmptySummary if summary is empty.
func New(summary string) *Error {
	e, err := TryNew(summary)
	if err != nil {
		panic(err)
	}
	return e
}

// TryNew is New for summaries that come from untrusted input.
func TryNew(summary string) (*Error, error) {
	if summary == "" {
		return nil, ErrEmptySummary
	}
	return &Error{summary: summary}, nil
}

// Default creates an Error saying the running program failed for an unknown reason.
func Default() *Error {
	return &Error{summary: DefaultSummary()}
}

// DefaultSummary names the running program, taken from the first command-line
// argument, and says it encountered an unknown error.
func DefaultSummary() string {
	name := "The application"
	if len(os.Args) > 0 && os.Args[0] != "" {
		base := filepath.Base(os.Args[0])
		if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" && stem != "." {
			name = stem
		}
	}
	return fmt.Sprintf("%s encountered an unknown error.", name)
}

// Reason appends a reason and returns the receiver for chaining.
func (e *Error) Reason(text string) *Error {
	e.reasons = append(e.reasons, text)
	return e
}

// Help sets the help line, replacing any previous one, and returns the receiver.
func (e *Error) Help(text string) *Error {
	e.help = &text
	return e
}

// AddReason appends a reason.
func (e *Error) AddReason(text string) {
	e.Reason(text)
}

// SetHelp sets the help line, replacing any previous one.
func (e *Error) SetHelp(text string) {
	e.Help(text)
}

// Update replaces the summary. Reasons are left alone.
// An empty summary is ignored.
func (e *Error) Update(summary string) {
	if summary == "" {
		return
	}
	e.summary = summary
}

// Push replaces the summary and moves the previous one to the front of the
// reasons. Calling Push while an error travels up the call stack leaves a
// trail where Reasons()[0] is always the most recently replaced summary.
// An empty summary is ignored.
func (e *Error) Push(summary string) {
	if summary == "" {
		return
	}
	e.reasons = slices.Insert(e.reasons, 0, e.summary)
	e.summary = summary
}

// ClearReasons removes all reasons. Recorded causes are kept.
func (e *Error) ClearReasons() {
	e.reasons = nil
}

// ClearHelp removes the help line.
func (e *Error) ClearHelp() {
	e.help = nil
}

// Summary returns the headline without the "Error: " label.
func (e *Error) Summary() string {
	return e.summary
}

// Reasons returns a copy of the reasons in display order.
func (e *Error) Reasons() []string {
	return slices.Clone(e.reasons)
}

// HelpText returns the help line and whether one is set.
func (e *Error) HelpText() (string, bool) {
	if e.help == nil {
		return "", false
	}
	return *e.help, true
}

// Causes returns the display text of the foreign errors this Error was built from.
func (e *Error) Causes() []string {
	return slices.Clone(e.causes)
}

// Clone returns a deep copy that can be mutated independently.
func (e *Error) Clone() *Error {
	c := &Error{
		summary:   e.summary,
		reasons:   slices.Clone(e.reasons),
		causes:    slices.Clone(e.causes),
		originals: slices.Clone(e.originals),
	}
	if e.help != nil {
		h := *e.help
		c.help = &h
	}
	return c
}

// Error implements the error interface with the summary alone.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.summary
}

// Unwrap exposes the foreign errors absorbed by From so errors.Is and
// errors.As keep working after coercion.
func (e *Error) Unwrap() []error {
	return slices.Clone(e.originals)
}

// absorb records a foreign error as a cause.
func (e *Error) absorb(err error) *Error {
	e.causes = append(e.causes, err.Error())
	e.originals = append(e.originals, err)
	return e
}

// Render formats the error using the terminal state of standard error.
func (e *Error) Render() string {
	return NewRenderer().Render(e)
}

// Print writes the rendered error to standard error.
func (e *Error) Print() {
	NewRenderer().Print(e)
}

// PrintAndExit prints the error and terminates the process with ExitCode.
// It never returns.
func (e *Error) PrintAndExit() {
	NewRenderer().PrintAndExit(e)
}

// PrintCauses writes each recorded cause on its own line to standard error.
func (e *Error) PrintCauses() {
	NewRenderer().PrintCauses(e)
}
