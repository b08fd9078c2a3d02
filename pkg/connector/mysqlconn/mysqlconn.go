// Package mysqlconn adapts pkg/connector to MySQL via
// github.com/go-sql-driver/mysql, the database/sql driver named in
// SPEC_FULL.md's DOMAIN STACK. Error codes are normalized through
// pkg/errkind, which shares its MySQL error-number table with
// go-mysql-org/go-mysql.
package mysqlconn

import (
	"database/sql"
	"errors"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"

	"sqlkit/pkg/connector"
	"sqlkit/pkg/dialect"
	"sqlkit/pkg/errkind"
)

// Conn is a MySQL-backed connector.Connector.
type Conn struct {
	*connector.ConnBase
}

// Open opens dsn (a go-sql-driver/mysql DSN, e.g.
// "user:pass@tcp(host:3306)/dbname?parseTime=true") against MySQL.
// socketTimeout bounds every driver-touching call and queryTimeout
// additionally bounds Query/QueryRow/Exec (SPEC_FULL.md §5); either may
// be zero to disable.
func Open(dsn string, socketTimeout, queryTimeout time.Duration) (*Conn, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, mapErr(err)
	}
	return &Conn{ConnBase: connector.NewConnBase(db, dialect.MySQL{}, mapErr, socketTimeout, queryTimeout)}, nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return errkind.FromMySQL(myErr.Number, myErr.Message, err)
	}
	return errkind.FromMySQL(0, "", err)
}
