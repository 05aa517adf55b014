package usererror

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"git.home.luguber.info/inful/usererror/internal/logfields"
)

// ExitCode is the only status PrintAndExit terminates with.
const ExitCode = 1

const (
	label  = "Error:"
	bullet = "-"
)

// Renderer formats errors and writes them to standard error.
type Renderer struct {
	probe  ColorProbe
	out    io.Writer
	exit   func(int)
	logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProbe sets the color capability probe. Defaults to a TerminalProbe on os.Stderr.
func WithProbe(p ColorProbe) Option {
	return func(r *Renderer) {
		if p != nil {
			r.probe = p
		}
	}
}

// WithOutput replaces os.Stderr as the destination. Intended for tests.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.out = w
		}
	}
}

// WithExit replaces os.Exit. Intended for tests.
func WithExit(exit func(int)) Option {
	return func(r *Renderer) {
		if exit != nil {
			r.exit = exit
		}
	}
}

// WithLogger sets the logger used for debug records. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRenderer creates a Renderer writing to os.Stderr.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		probe:  TerminalProbe{File: os.Stderr},
		out:    os.Stderr,
		exit:   os.Exit,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// palette holds the styles for one render call.
type palette struct {
	label   *color.Color
	summary *color.Color
	bullet  *color.Color
	help    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		label:   color.New(color.FgWhite, color.BgRed, color.Bold),
		summary: color.New(color.FgRed, color.Bold),
		bullet:  color.New(color.FgYellow),
		help:    color.New(color.FgWhite, color.Faint),
	}
	for _, c := range []*color.Color{p.label, p.summary, p.bullet, p.help} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Render returns the formatted error. The probe is consulted on every call.
// A nil error renders as the empty string.
func (r *Renderer) Render(e *Error) string {
	if e == nil {
		return ""
	}
	p := newPalette(r.probe.SupportsColor())

	var b strings.Builder
	b.WriteString(p.label.Sprint(label))
	b.WriteByte(' ')
	b.WriteString(p.summary.Sprint(e.summary))
	b.WriteByte('\n')
	for _, reason := range e.reasons {
		b.WriteByte(' ')
		b.WriteString(p.bullet.Sprint(bullet))
		b.WriteByte(' ')
		b.WriteString(reason)
		b.WriteByte('\n')
	}
	if e.help != nil {
		b.WriteString(p.help.Sprint(*e.help))
		b.WriteByte('\n')
	}
	return b.String()
}

// Print writes the rendered error in a single write. Write failures are ignored:
// there is nowhere left to report them.
func (r *Renderer) Print(e *Error) {
	if e == nil {
		return
	}
	_, _ = io.WriteString(r.out, r.Render(e))
	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "rendered user-facing error",
		logfields.Summary(e.summary),
		logfields.ReasonCount(len(e.reasons)),
		logfields.CauseCount(len(e.causes)),
	)
}

// PrintAndExit prints the error and terminates with ExitCode.
// A nil e prints Default() instead. With the default exit function it never returns.
func (r *Renderer) PrintAndExit(e *Error) {
	if e == nil {
		e = Default()
	}
	r.Print(e)
	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "terminating after user-facing error",
		logfields.ExitCode(ExitCode),
	)
	r.exit(ExitCode)
}

// PrintCauses writes each recorded cause of e on its own line.
func (r *Renderer) PrintCauses(e *Error) {
	if e == nil || len(e.causes) == 0 {
		return
	}
	var b strings.Builder
	for _, c := range e.causes {
		b.WriteString(c)
		b.WriteByte('\n')
	}
	_, _ = io.WriteString(r.out, b.String())
}
