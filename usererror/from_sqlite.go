package usererror

import (
	"database/sql"
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const sqliteSummary = "SQLite has encountered an issue"

// sqliteReasons describes each primary result code.
var sqliteReasons = map[int]string{
	sqlite3.SQLITE_ERROR:      "Underlying SQLite call failed",
	sqlite3.SQLITE_PERM:       "Access permission denied",
	sqlite3.SQLITE_ABORT:      "Operation was aborted",
	sqlite3.SQLITE_BUSY:       "The database file is locked by another connection",
	sqlite3.SQLITE_LOCKED:     "A table in the database is locked",
	sqlite3.SQLITE_NOMEM:      "SQLite ran out of memory",
	sqlite3.SQLITE_READONLY:   "Attempted to write to a read-only database",
	sqlite3.SQLITE_INTERRUPT:  "Operation was interrupted",
	sqlite3.SQLITE_IOERR:      "A disk I/O error occurred",
	sqlite3.SQLITE_CORRUPT:    "The database disk image is malformed",
	sqlite3.SQLITE_FULL:       "The database or disk is full",
	sqlite3.SQLITE_CANTOPEN:   "Unable to open the database file",
	sqlite3.SQLITE_CONSTRAINT: "A constraint was violated",
	sqlite3.SQLITE_MISMATCH:   "Data type mismatch",
	sqlite3.SQLITE_MISUSE:     "The SQLite library was used incorrectly",
	sqlite3.SQLITE_TOOBIG:     "String or blob exceeds the size limit",
	sqlite3.SQLITE_RANGE:      "Bind parameter index is out of range",
	sqlite3.SQLITE_NOTADB:     "The file is not a database",
	sqlite3.SQLITE_AUTH:       "Authorization denied",
}

var sqliteHelp = map[int]string{
	sqlite3.SQLITE_BUSY:       "Close other programs using the database and try again.",
	sqlite3.SQLITE_READONLY:   "Check the permissions of the database file and its directory.",
	sqlite3.SQLITE_CORRUPT:    "Restore the database from a backup or recreate it.",
	sqlite3.SQLITE_NOTADB:     "Restore the database from a backup or recreate it.",
	sqlite3.SQLITE_FULL:       "Free some disk space and try again.",
	sqlite3.SQLITE_CANTOPEN:   "Check that the database path exists and is writable.",
	sqlite3.SQLITE_CONSTRAINT: "Check the values for duplicates or missing required fields.",
}

// sqlSentinels covers database/sql errors that never reach the driver.
var sqlSentinels = []struct {
	target error
	reason string
	help   string
}{
	{sql.ErrNoRows, "Query returned no rows", "The query was expected to return at least one row but did not return any."},
	{sql.ErrConnDone, "The database connection is already closed", ""},
	{sql.ErrTxDone, "The transaction has already been committed or rolled back", ""},
}

func isSQLiteError(err error) bool {
	var sqlErr *sqlite.Error
	if errors.As(err, &sqlErr) {
		return true
	}
	for _, s := range sqlSentinels {
		if errors.Is(err, s.target) {
			return true
		}
	}
	return false
}

// fromSQLite uses a fixed summary. The first reason describes the result code,
// the second is the error text and the cause chain follows.
func fromSQLite(err error) *Error {
	e := &Error{summary: sqliteSummary}

	var sqlErr *sqlite.Error
	if errors.As(err, &sqlErr) {
		primary := sqlErr.Code() & 0xff
		reason, ok := sqliteReasons[primary]
		if !ok {
			reason = sqliteReasons[sqlite3.SQLITE_ERROR]
		}
		e.Reason(reason)
		if help, ok := sqliteHelp[primary]; ok {
			e.SetHelp(help)
		}
	} else {
		for _, s := range sqlSentinels {
			if errors.Is(err, s.target) {
				e.Reason(s.reason)
				if s.help != "" {
					e.SetHelp(s.help)
				}
				break
			}
		}
	}

	e.Reason(err.Error())
	e.reasons = append(e.reasons, Reasons(err)...)
	if help, ok := HelpText(err); ok {
		e.SetHelp(help)
	}
	return e.absorb(err)
}
