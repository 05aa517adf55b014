package usererror

import (
	"errors"
	"iter"
	"slices"
)

// Summarizer lets an error supply its own summary instead of its Error text.
type Summarizer interface {
	Summary() string
}

// Reasoner lets an error supply its own reasons instead of its cause chain.
type Reasoner interface {
	Reasons() []string
}

// HelpTexter lets an error supply a help line. Errors have none by default.
type HelpTexter interface {
	HelpText() (string, bool)
}

// Chain yields the causes of err, nearest first, by following Unwrap.
// err itself is not yielded. Joined errors are walked depth-first in order
// and only their children are yielded.
// The sequence is computed lazily and walks from err again on every range.
// A chain that loops back on itself never ends; Chain does not detect cycles.
func Chain(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		if err == nil {
			return
		}
		walk(err, yield)
	}
}

type multiUnwrapper interface {
	Unwrap() []error
}

// walk yields the causes below err. A node wrapping several errors is not
// yielded itself: its text repeats its children across several lines.
func walk(err error, yield func(error) bool) bool {
	if u, ok := err.(multiUnwrapper); ok {
		for _, next := range u.Unwrap() {
			if next != nil && !visit(next, yield) {
				return false
			}
		}
		return true
	}
	if next := errors.Unwrap(err); next != nil {
		return visit(next, yield)
	}
	return true
}

func visit(err error, yield func(error) bool) bool {
	if _, ok := err.(multiUnwrapper); !ok && !yield(err) {
		return false
	}
	return walk(err, yield)
}

// Summary returns the uncolored headline for err: "Error: " followed by the
// Summarizer text when err implements it, or err.Error() otherwise.
func Summary(err error) string {
	return label + " " + summaryText(err)
}

func summaryText(err error) string {
	if s, ok := err.(Summarizer); ok {
		return s.Summary()
	}
	return err.Error()
}

// Reasons returns one line per cause of err, nearest cause first and root
// cause last. It returns nil when err has no cause. A Reasoner overrides this;
// its slice is copied.
func Reasons(err error) []string {
	if r, ok := err.(Reasoner); ok {
		return slices.Clone(r.Reasons())
	}
	var reasons []string
	for cause := range Chain(err) {
		reasons = append(reasons, cause.Error())
	}
	return reasons
}

// HelpText returns the help line of err when it implements HelpTexter.
func HelpText(err error) (string, bool) {
	if h, ok := err.(HelpTexter); ok {
		return h.HelpText()
	}
	return "", false
}

// IntoStructured materializes the summary, reasons and help of err into an
// Error that can be edited without affecting err. An *Error is cloned.
// It returns nil for a nil err.
func IntoStructured(err error) *Error {
	if err == nil {
		return nil
	}
	if ue, ok := err.(*Error); ok {
		return ue.Clone()
	}
	summary := summaryText(err)
	if summary == "" {
		summary = DefaultSummary()
	}
	e := &Error{summary: summary, reasons: Reasons(err)}
	if help, ok := HelpText(err); ok {
		e.Help(help)
	}
	return e
}

// Render formats any error the way Error.Render does.
func Render(err error) string {
	return NewRenderer().Render(IntoStructured(err))
}

// Print writes any error to standard error the way Error.Print does.
func Print(err error) {
	NewRenderer().Print(IntoStructured(err))
}

// PrintAndExit prints any error and terminates the process with ExitCode.
// A nil err prints Default() instead.
func PrintAndExit(err error) {
	NewRenderer().PrintAndExit(IntoStructured(err))
}
