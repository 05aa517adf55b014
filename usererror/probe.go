package usererror

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorProbe reports whether the render destination accepts ANSI colors.
type ColorProbe interface {
	SupportsColor() bool
}

// ColorProbeFunc adapts a function to ColorProbe.
type ColorProbeFunc func() bool

// SupportsColor calls f.
func (f ColorProbeFunc) SupportsColor() bool { return f() }

type staticProbe bool

func (s staticProbe) SupportsColor() bool { return bool(s) }

// AlwaysColor enables color unconditionally.
var AlwaysColor ColorProbe = staticProbe(true)

// NeverColor disables color unconditionally.
var NeverColor ColorProbe = staticProbe(false)

// TerminalProbe checks whether a file is an interactive terminal.
// NO_COLOR (any non-empty value) and TERM=dumb disable color.
type TerminalProbe struct {
	File *os.File
}

// SupportsColor inspects the environment and the file on every call.
func (p TerminalProbe) SupportsColor() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f := p.File
	if f == nil {
		f = os.Stderr
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Color modes accepted by ProbeForMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ProbeForMode maps a color mode to a probe. Unknown modes behave like "auto".
func ProbeForMode(mode string) ColorProbe {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAlways:
		return AlwaysColor
	case ColorNever:
		return NeverColor
	default:
		return TerminalProbe{File: os.Stderr}
	}
}
