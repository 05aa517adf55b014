package logfields

import "log/slog"

// Canonical log field names for records emitted while presenting errors.
const (
	KeySummary     = "summary"
	KeyReasonCount = "reason_count"
	KeyCauseCount  = "cause_count"
	KeyExitCode    = "exit_code"
	KeyColorMode   = "color_mode"
	KeyConfigPath  = "config_path"
	KeyCommand     = "command"
	KeyPath        = "path"
	KeyError       = "error"
)

func Summary(s string) slog.Attr    { return slog.String(KeySummary, s) }
func ReasonCount(n int) slog.Attr   { return slog.Int(KeyReasonCount, n) }
func CauseCount(n int) slog.Attr    { return slog.Int(KeyCauseCount, n) }
func ExitCode(code int) slog.Attr   { return slog.Int(KeyExitCode, code) }
func ColorMode(m string) slog.Attr  { return slog.String(KeyColorMode, m) }
func ConfigPath(p string) slog.Attr { return slog.String(KeyConfigPath, p) }
func Command(c string) slog.Attr    { return slog.String(KeyCommand, c) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
