package usererror

// From converts a foreign error into an Error.
//
// The summary is the error's own text, the reasons are the texts of its cause
// chain and Causes records the original text, so it stays inspectable after the
// summary and reasons have been edited. I/O and SQLite errors get a help line
// and, for SQLite, a fixed summary; see fromIO and fromSQLite.
//
// From returns nil for nil and returns an *Error unchanged.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if ue, ok := err.(*Error); ok {
		return ue
	}
	if isSQLiteError(err) {
		return fromSQLite(err)
	}
	if isIOError(err) {
		return fromIO(err)
	}
	return fromGeneric(err)
}

// FromString converts a plain message into an Error.
// An empty message yields Default().
func FromString(msg string) *Error {
	if msg == "" {
		return Default()
	}
	return New(msg)
}

func fromGeneric(err error) *Error {
	return IntoStructured(err).absorb(err)
}
