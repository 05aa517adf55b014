package commands

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"git.home.luguber.info/inful/usererror/internal/logfields"
	"git.home.luguber.info/inful/usererror/usererror"
)

// QueryCmd implements the 'query' command.
type QueryCmd struct {
	DB  string `name:"db" required:"" help:"SQLite database file (created if missing)"`
	SQL string `arg:"" name:"sql" help:"Statement to execute"`
}

var rowReturning = []string{"SELECT", "WITH", "PRAGMA", "VALUES", "EXPLAIN"}

func (q *QueryCmd) Run(ctx context.Context, g *Global) error {
	n, err := q.execute(ctx)
	if err != nil {
		g.Logger.Debug("query failed", logfields.Path(q.DB), logfields.Error(err))
		e := usererror.From(err)
		e.Push(fmt.Sprintf("Query against %q failed", q.DB))
		return e
	}
	_, _ = fmt.Fprintf(g.Stdout, "%d row(s)\n", n)
	return nil
}

// execute returns the number of rows read or affected.
func (q *QueryCmd) execute(ctx context.Context) (int64, error) {
	db, err := sql.Open("sqlite", q.DB)
	if err != nil {
		return 0, fmt.Errorf("open sqlite database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if !returnsRows(q.SQL) {
		res, err := db.ExecContext(ctx, q.SQL)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}

	rows, err := db.QueryContext(ctx, q.SQL)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var n int64
	for rows.Next() {
		n++
	}
	return n, rows.Err()
}

func returnsRows(stmt string) bool {
	upper := strings.ToUpper(strings.TrimSpace(stmt))
	for _, kw := range rowReturning {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}
