package usererror

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// ioHints pairs I/O sentinels with the help line shown for them, in match order.
var ioHints = []struct {
	target error
	help   string
}{
	{fs.ErrNotExist, "Check that the path exists and is spelled correctly."},
	{fs.ErrPermission, "Check the permissions of the path or run the command as a user who can access it."},
	{fs.ErrExist, "Remove the existing file or choose a different path."},
	{os.ErrDeadlineExceeded, "The operation timed out. Try again."},
	{io.ErrUnexpectedEOF, "The input ended early. Check that it is complete."},
	{io.EOF, "The input ended early. Check that it is complete."},
}

func isIOError(err error) bool {
	var (
		pathErr    *fs.PathError
		linkErr    *os.LinkError
		syscallErr *os.SyscallError
	)
	if errors.As(err, &pathErr) || errors.As(err, &linkErr) || errors.As(err, &syscallErr) {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// fromIO applies the generic rule and adds a help line for well-known conditions.
func fromIO(err error) *Error {
	e := fromGeneric(err)
	if e.help != nil {
		return e
	}
	for _, h := range ioHints {
		if errors.Is(err, h.target) {
			e.SetHelp(h.help)
			break
		}
	}
	return e
}
