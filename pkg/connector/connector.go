// Package connector implements the thin async connector adapters named
// in SPEC_FULL.md §6: a dialect-agnostic Queryable/Transaction surface
// over database/sql, backed per-dialect by mattn/go-sqlite3,
// go-sql-driver/mysql and pgx's database/sql-compatible stdlib driver
// (SPEC_FULL.md §2 DOMAIN STACK). Each adapter package
// (sqliteconn/mysqlconn/pgconn) only supplies its DSN assembly and its
// visitor.Dialect; the execution path here is shared.
//
// Modeled on the axfor-aproxy proxy's single-handle-behind-a-mutex
// session shape (pkg/session/session.go), generalized from one pinned
// pgx.Conn per client session into one *sql.DB pool per Connector and a
// dedicated *sql.Conn per Transaction.
package connector

import (
	"context"
	"database/sql"
	"time"

	"sqlkit/pkg/ast"
	"sqlkit/pkg/value"
	"sqlkit/pkg/visitor"
)

// withTimeout bounds ctx by d when d is positive; a non-positive d leaves
// ctx unbounded, matching spec.md §5's "if no duration is configured the
// operation runs to completion".
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// Row is a single-row result, matching database/sql.Row's Scan surface.
type Row interface {
	Scan(dest ...any) error
}

// Rows is a multi-row result.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Columns() ([]string, error)
	Err() error
	Close() error

	// Values decodes the current row into the dialect-independent Value
	// model by best-effort inference from the driver's reported Go type
	// (SPEC_FULL.md §3). Callers that need exact variant fidelity (e.g.
	// distinguishing Enum from Text) should Scan into a typed destination
	// instead.
	Values() ([]value.Value, error)
}

// Result reports the outcome of a non-query statement.
type Result interface {
	LastInsertID() (int64, error)
	RowsAffected() (int64, error)
}

// Queryable is implemented by both Connector and Transaction, so callers
// can write code generic over "am I in a transaction or not".
type Queryable interface {
	Query(ctx context.Context, q ast.Query) (Rows, error)
	QueryRow(ctx context.Context, q ast.Query) Row
	Exec(ctx context.Context, q ast.Query) (Result, error)
}

// Transaction is a scoped, mutex-equivalent acquisition of a single
// underlying connection: every statement issued through it runs against
// the same backend session until Commit or Rollback (SPEC_FULL.md §5,
// grounded on pkg/session.Session's BeginTransaction/CommitTransaction).
type Transaction interface {
	Queryable
	Commit() error
	Rollback() error
}

// Connector is one dialect-bound pool: the entry point for one-shot
// queries and for starting transactions.
type Connector interface {
	Queryable
	Begin(ctx context.Context) (Transaction, error)
	Ping(ctx context.Context) error
	Close() error
}

// errorMapper normalizes a driver error into *errkind.Error; each adapter
// package supplies its own (pgconn wraps errkind.FromPostgres, etc.) so
// this package stays driver-agnostic.
type errorMapper func(error) error

// ConnBase is the shared *sql.DB/*sql.Tx execution path. Adapter packages
// build one via newConn and embed it behind their own exported type so
// godoc shows sqliteconn.Conn, mysqlconn.Conn, pgconn.Conn rather than a
// shared connector.ConnBase.
type ConnBase struct {
	db      *sql.DB
	dialect visitor.Dialect
	mapErr  errorMapper

	// socketTimeout bounds every driver-touching call (SPEC_FULL.md §5);
	// queryTimeout additionally bounds the query-shaped calls
	// (Query/QueryRow/Exec) on top of it. Either may be zero to disable.
	socketTimeout time.Duration
	queryTimeout  time.Duration

	// resetQuery, when non-empty, is executed against a transaction's
	// session immediately after Commit/Rollback — PgBouncer mode's
	// "DEALLOCATE ALL" (SPEC_FULL.md §5, spec.md §5).
	resetQuery string
}

// NewConnBase builds the shared execution path. socketTimeout and
// queryTimeout are internal/config.TimeoutConfig's SocketTimeout and
// QueryTimeout fields, threaded through by each adapter package's Open.
func NewConnBase(db *sql.DB, dialect visitor.Dialect, mapErr errorMapper, socketTimeout, queryTimeout time.Duration) *ConnBase {
	return &ConnBase{db: db, dialect: dialect, mapErr: mapErr, socketTimeout: socketTimeout, queryTimeout: queryTimeout}
}

// WithResetQuery returns c configured to issue query against a
// transaction's session right after every Commit/Rollback. Used by
// pgconn.Open's PgBouncer mode to issue "DEALLOCATE ALL".
func (c *ConnBase) WithResetQuery(query string) *ConnBase {
	c.resetQuery = query
	return c
}

func (c *ConnBase) render(q ast.Query) (string, []any, error) {
	sqlText, params, err := visitor.Visit(c.dialect, q)
	if err != nil {
		return "", nil, err
	}
	args, err := valuesToArgs(params)
	if err != nil {
		return "", nil, err
	}
	return sqlText, args, nil
}

func (c *ConnBase) Query(ctx context.Context, q ast.Query) (Rows, error) {
	sqlText, args, err := c.render(q)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx, c.queryTimeout)
	defer cancel()
	ctx, cancel2 := withTimeout(ctx, c.socketTimeout)
	defer cancel2()
	rows, err := c.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, c.mapErr(err)
	}
	return &rowsAdapter{rows: rows, mapErr: c.mapErr}, nil
}

func (c *ConnBase) QueryRow(ctx context.Context, q ast.Query) Row {
	sqlText, args, err := c.render(q)
	if err != nil {
		return errRow{err: err}
	}
	ctx, cancel := withTimeout(ctx, c.queryTimeout)
	defer cancel()
	ctx, cancel2 := withTimeout(ctx, c.socketTimeout)
	defer cancel2()
	return c.db.QueryRowContext(ctx, sqlText, args...)
}

func (c *ConnBase) Exec(ctx context.Context, q ast.Query) (Result, error) {
	sqlText, args, err := c.render(q)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx, c.queryTimeout)
	defer cancel()
	ctx, cancel2 := withTimeout(ctx, c.socketTimeout)
	defer cancel2()
	res, err := c.db.ExecContext(ctx, sqlText, args...)
	if err != nil {
		return nil, c.mapErr(err)
	}
	return resultAdapter{res}, nil
}

func (c *ConnBase) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, c.socketTimeout)
	defer cancel()
	return c.mapErr(c.db.PingContext(ctx))
}

func (c *ConnBase) Close() error {
	return c.db.Close()
}

// Begin pins a single physical connection for the lifetime of the
// transaction (rather than db.BeginTx's pool-managed connection) so that
// reset's post-Commit/Rollback query runs against the exact session the
// transaction ran on, not whatever connection the pool hands back next.
func (c *ConnBase) Begin(ctx context.Context) (Transaction, error) {
	ctx, cancel := withTimeout(ctx, c.socketTimeout)
	defer cancel()
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, c.mapErr(err)
	}
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		conn.Close()
		return nil, c.mapErr(err)
	}
	return &txConn{tx: tx, conn: conn, dialect: c.dialect, mapErr: c.mapErr, socketTimeout: c.socketTimeout, queryTimeout: c.queryTimeout, resetQuery: c.resetQuery}, nil
}

// txConn is the Transaction-side counterpart of conn, rendering against
// the same dialect but executing through *sql.Tx. conn is the pinned
// physical connection the transaction was started on, kept alive past
// Commit/Rollback so reset can run on the exact same session.
type txConn struct {
	tx      *sql.Tx
	conn    *sql.Conn
	dialect visitor.Dialect
	mapErr  errorMapper

	socketTimeout time.Duration
	queryTimeout  time.Duration
	resetQuery    string
}

func (t *txConn) render(q ast.Query) (string, []any, error) {
	sqlText, params, err := visitor.Visit(t.dialect, q)
	if err != nil {
		return "", nil, err
	}
	args, err := valuesToArgs(params)
	if err != nil {
		return "", nil, err
	}
	return sqlText, args, nil
}

func (t *txConn) Query(ctx context.Context, q ast.Query) (Rows, error) {
	sqlText, args, err := t.render(q)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx, t.queryTimeout)
	defer cancel()
	ctx, cancel2 := withTimeout(ctx, t.socketTimeout)
	defer cancel2()
	rows, err := t.tx.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, t.mapErr(err)
	}
	return &rowsAdapter{rows: rows, mapErr: t.mapErr}, nil
}

func (t *txConn) QueryRow(ctx context.Context, q ast.Query) Row {
	sqlText, args, err := t.render(q)
	if err != nil {
		return errRow{err: err}
	}
	ctx, cancel := withTimeout(ctx, t.queryTimeout)
	defer cancel()
	ctx, cancel2 := withTimeout(ctx, t.socketTimeout)
	defer cancel2()
	return t.tx.QueryRowContext(ctx, sqlText, args...)
}

func (t *txConn) Exec(ctx context.Context, q ast.Query) (Result, error) {
	sqlText, args, err := t.render(q)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx, t.queryTimeout)
	defer cancel()
	ctx, cancel2 := withTimeout(ctx, t.socketTimeout)
	defer cancel2()
	res, err := t.tx.ExecContext(ctx, sqlText, args...)
	if err != nil {
		return nil, t.mapErr(err)
	}
	return resultAdapter{res}, nil
}

// reset issues the PgBouncer "DEALLOCATE ALL" workaround (SPEC_FULL.md
// §5) against the transaction's pinned session after it ends, so a
// reused PgBouncer-pooled backend never serves a later client's queries
// against this session's cached prepared statements. It runs after
// Commit/Rollback rather than before: a failed statement earlier in the
// transaction leaves Postgres refusing every command but ROLLBACK until
// the transaction actually ends, so issuing it mid-transaction would
// itself fail on an aborted transaction. A no-op when resetQuery is
// empty (the non-PgBouncer case). conn is always released back to the
// pool regardless of the reset outcome.
func (t *txConn) reset() error {
	defer t.conn.Close()
	if t.resetQuery == "" {
		return nil
	}
	ctx, cancel := withTimeout(context.Background(), t.socketTimeout)
	defer cancel()
	_, err := t.conn.ExecContext(ctx, t.resetQuery)
	return err
}

func (t *txConn) Commit() error {
	if err := t.tx.Commit(); err != nil {
		t.conn.Close()
		return t.mapErr(err)
	}
	return t.mapErr(t.reset())
}

func (t *txConn) Rollback() error {
	if err := t.tx.Rollback(); err != nil {
		t.conn.Close()
		return t.mapErr(err)
	}
	return t.mapErr(t.reset())
}

type resultAdapter struct{ res sql.Result }

func (r resultAdapter) LastInsertID() (int64, error) { return r.res.LastInsertId() }
func (r resultAdapter) RowsAffected() (int64, error) { return r.res.RowsAffected() }

type errRow struct{ err error }

func (e errRow) Scan(...any) error { return e.err }

type rowsAdapter struct {
	rows   *sql.Rows
	mapErr errorMapper
}

func (r *rowsAdapter) Next() bool                   { return r.rows.Next() }
func (r *rowsAdapter) Scan(dest ...any) error        { return r.rows.Scan(dest...) }
func (r *rowsAdapter) Columns() ([]string, error)    { return r.rows.Columns() }
func (r *rowsAdapter) Err() error                    { return r.mapErr(r.rows.Err()) }
func (r *rowsAdapter) Close() error                  { return r.rows.Close() }

func (r *rowsAdapter) Values() ([]value.Value, error) {
	cols, err := r.rows.Columns()
	if err != nil {
		return nil, err
	}
	raw := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	if err := r.rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	out := make([]value.Value, len(cols))
	for i, v := range raw {
		out[i] = inferValue(v)
	}
	return out, nil
}
