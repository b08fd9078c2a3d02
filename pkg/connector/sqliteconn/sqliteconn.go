// Package sqliteconn adapts pkg/connector to SQLite via mattn/go-sqlite3,
// the database/sql driver named in SPEC_FULL.md's DOMAIN STACK.
package sqliteconn

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"sqlkit/pkg/connector"
	"sqlkit/pkg/dialect"
	"sqlkit/pkg/errkind"
)

// Conn is a SQLite-backed connector.Connector.
type Conn struct {
	*connector.ConnBase
}

// Open opens path (a filesystem path, or ":memory:") as a SQLite
// database. A single *sql.DB is used as the pool; SQLite serializes
// writers internally, so SetMaxOpenConns(1) avoids SQLITE_BUSY under
// concurrent writers. socketTimeout bounds every driver-touching call and
// queryTimeout additionally bounds Query/QueryRow/Exec (SPEC_FULL.md §5);
// either may be zero to disable.
func Open(dsn string, socketTimeout, queryTimeout time.Duration) (*Conn, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errkind.FromSQLite(err)
	}
	db.SetMaxOpenConns(1)
	return &Conn{ConnBase: connector.NewConnBase(db, dialect.SQLite{}, errkind.FromSQLite, socketTimeout, queryTimeout)}, nil
}
