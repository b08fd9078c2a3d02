// Package errkind normalizes driver-specific error codes from SQLite,
// MySQL and PostgreSQL into the dialect-independent taxonomy named in
// SPEC_FULL.md §7, so callers can branch on
// `errkind.Of(err) == errkind.UniqueConstraintViolation` instead of
// matching driver-specific sentinel types.
//
// The classification tables are grounded on the SQLSTATE-to-MySQL-code
// mapping in the axfor-aproxy proxy's pkg/mapper/errors.go, generalized
// from a one-directional MySQL-error-number target into the Kind enum
// below and extended with MySQL's own native error numbers and SQLite's
// primary result codes.
package errkind

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"strings"

	"github.com/go-mysql-org/go-mysql/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Kind is a normalized error category, matching spec.md §7's taxonomy
// exactly. Codes with no direct equivalent (syntax errors, deadlocks,
// serialization failures, …) fall into QueryError, the spec's explicit
// "driver-specific" catchall.
type Kind int

const (
	Unknown Kind = iota
	DatabaseDoesNotExist
	DatabaseAccessDenied
	AuthenticationFailed
	UniqueConstraintViolation
	NullConstraintViolation
	ForeignKeyConstraintViolation
	TableDoesNotExist
	ColumnNotFound
	ConnectionClosed
	ConnectionError
	TlsError
	Timeout
	ValueOutOfRange
	ConversionError
	QueryError
	InvalidConnectionArguments
)

func (k Kind) String() string {
	switch k {
	case DatabaseDoesNotExist:
		return "DatabaseDoesNotExist"
	case DatabaseAccessDenied:
		return "DatabaseAccessDenied"
	case AuthenticationFailed:
		return "AuthenticationFailed"
	case UniqueConstraintViolation:
		return "UniqueConstraintViolation"
	case NullConstraintViolation:
		return "NullConstraintViolation"
	case ForeignKeyConstraintViolation:
		return "ForeignKeyConstraintViolation"
	case TableDoesNotExist:
		return "TableDoesNotExist"
	case ColumnNotFound:
		return "ColumnNotFound"
	case ConnectionClosed:
		return "ConnectionClosed"
	case ConnectionError:
		return "ConnectionError"
	case TlsError:
		return "TlsError"
	case Timeout:
		return "Timeout"
	case ValueOutOfRange:
		return "ValueOutOfRange"
	case ConversionError:
		return "ConversionError"
	case QueryError:
		return "QueryError"
	case InvalidConnectionArguments:
		return "InvalidConnectionArguments"
	default:
		return "Unknown"
	}
}

// ConstraintKind distinguishes the three shapes spec.md §7 allows a
// constraint-violation payload to take.
type ConstraintKind int

const (
	ConstraintUnspecified ConstraintKind = iota
	ConstraintFields
	ConstraintIndex
	ConstraintForeignKey
)

// Constraint identifies which constraint a UniqueConstraintViolation,
// NullConstraintViolation or ForeignKeyConstraintViolation came from,
// best-effort per driver: Postgres reports the constraint/column name
// directly, MySQL and SQLite only embed it in the error message text.
type Constraint struct {
	Kind   ConstraintKind
	Fields []string
	Index  string
}

// Error wraps a driver error with its normalized Kind, the dialect it came
// from, the driver's own code string for diagnostics, and (for constraint
// violations) the constraint identity.
type Error struct {
	Kind       Kind
	Dialect    string
	Code       string
	Constraint *Constraint
	Cause      error
}

func (e *Error) Error() string {
	return e.Dialect + " " + e.Code + " (" + e.Kind.String() + "): " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// Of unwraps err looking for an *Error and returns its Kind, or Unknown if
// err is nil or not one of ours.
func Of(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// classifyContext recognizes the context/database/sql/net sentinel errors
// common to all three drivers, ahead of any dialect-specific
// classification. Every driver-touching call in pkg/connector can fail
// this way once the socket-timeout race (SPEC_FULL.md §5) is wired in.
func classifyContext(err error) (Kind, bool) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return Timeout, true
	case errors.Is(err, sql.ErrConnDone), errors.Is(err, net.ErrClosed):
		return ConnectionClosed, true
	case errors.Is(err, context.Canceled), errors.Is(err, sql.ErrTxDone):
		return QueryError, true
	}
	return Unknown, false
}

// pgSQLStateKind classifies a PostgreSQL SQLSTATE code, mirroring the
// breadth of the teacher's sqlStateToMySQL table but keyed to Kind
// instead of a MySQL error number.
var pgSQLStateKind = map[string]Kind{
	"23505": UniqueConstraintViolation,
	"23502": NullConstraintViolation,
	"23503": ForeignKeyConstraintViolation,
	"23514": QueryError, // check_violation: no dedicated spec kind
	"23000": QueryError,
	"23001": QueryError,
	"42P01": TableDoesNotExist,
	"42P02": TableDoesNotExist,
	"42703": ColumnNotFound,
	"42704": ColumnNotFound,
	"42601": QueryError, // syntax_error
	"42P10": QueryError,
	"42846": QueryError,
	"42883": QueryError,
	"42501": DatabaseAccessDenied, // insufficient_privilege
	"42000": DatabaseAccessDenied,
	"42939": DatabaseAccessDenied,
	"28000": AuthenticationFailed, // invalid_authorization_specification
	"28P01": AuthenticationFailed, // invalid_password
	"3D000": DatabaseDoesNotExist, // invalid_catalog_name
	"40P01": QueryError, // deadlock_detected
	"40001": QueryError, // serialization_failure
	"57014": Timeout,    // query_canceled (statement_timeout)
	"53300": ConnectionError,
	"53400": ConnectionError,
	"53100": ConnectionError,
	"53200": ConnectionError,
	"08000": ConnectionError,
	"08003": ConnectionError,
	"08006": ConnectionError,
	"08001": ConnectionError,
	"08004": ConnectionError,
	"22001": ValueOutOfRange,
	"22003": ValueOutOfRange,
	"22007": ConversionError,
	"22008": ConversionError,
	"22P02": ConversionError, // invalid_text_representation
	"22012": QueryError,      // division_by_zero
}

// FromPostgres classifies a PostgreSQL driver error. Non-pgconn.PgError
// values (context cancellation, a closed pool, …) are classified through
// classifyContext first, falling back to Unknown.
func FromPostgres(err error) error {
	if err == nil {
		return nil
	}
	if kind, ok := classifyContext(err); ok {
		return &Error{Kind: kind, Dialect: "postgres", Cause: err}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		kind, ok := pgSQLStateKind[pgErr.Code]
		if !ok {
			kind = Unknown
		}
		e := &Error{Kind: kind, Dialect: "postgres", Code: pgErr.Code, Cause: err}
		if kind == UniqueConstraintViolation || kind == NullConstraintViolation || kind == ForeignKeyConstraintViolation {
			e.Constraint = &Constraint{Kind: ConstraintIndex, Index: pgErr.ConstraintName, Fields: columnField(pgErr.ColumnName)}
		}
		return e
	}
	return &Error{Kind: Unknown, Dialect: "postgres", Code: "", Cause: err}
}

func columnField(col string) []string {
	if col == "" {
		return nil
	}
	return []string{col}
}

// mysqlNumberKind classifies MySQL's native numeric error codes.
var mysqlNumberKind = map[uint16]Kind{
	mysql.ER_DUP_ENTRY:                 UniqueConstraintViolation,
	mysql.ER_DUP_ENTRY_WITH_KEY_NAME:   UniqueConstraintViolation,
	mysql.ER_NO_REFERENCED_ROW:         ForeignKeyConstraintViolation,
	mysql.ER_NO_REFERENCED_ROW_2:       ForeignKeyConstraintViolation,
	mysql.ER_ROW_IS_REFERENCED:         ForeignKeyConstraintViolation,
	mysql.ER_ROW_IS_REFERENCED_2:       ForeignKeyConstraintViolation,
	mysql.ER_BAD_NULL_ERROR:            NullConstraintViolation,
	mysql.ER_NO_SUCH_TABLE:             TableDoesNotExist,
	mysql.ER_BAD_TABLE_ERROR:           TableDoesNotExist,
	mysql.ER_BAD_DB_ERROR:              DatabaseDoesNotExist,
	mysql.ER_BAD_FIELD_ERROR:           ColumnNotFound,
	mysql.ER_PARSE_ERROR:               QueryError,
	mysql.ER_SYNTAX_ERROR:              QueryError,
	mysql.ER_ACCESS_DENIED_ERROR:       AuthenticationFailed,
	mysql.ER_TABLEACCESS_DENIED_ERROR:  DatabaseAccessDenied,
	mysql.ER_DBACCESS_DENIED_ERROR:     DatabaseAccessDenied,
	mysql.ER_LOCK_DEADLOCK:             QueryError,
	mysql.ER_LOCK_WAIT_TIMEOUT:         Timeout,
	mysql.ER_QUERY_INTERRUPTED:         QueryError,
	mysql.ER_CON_COUNT_ERROR:           ConnectionError,
	mysql.ER_TOO_MANY_USER_CONNECTIONS: ConnectionError,
	mysql.ER_DATA_TOO_LONG:             ValueOutOfRange,
	mysql.ER_WARN_DATA_OUT_OF_RANGE:    ValueOutOfRange,
	mysql.ER_TRUNCATED_WRONG_VALUE:     ConversionError,
	mysql.ER_DIVISION_BY_ZERO:          QueryError,
}

// mysqlKeyName extracts the index name MySQL embeds in a duplicate-entry
// message ("Duplicate entry 'x' for key 'widgets.name_idx'"), best effort.
func mysqlKeyName(msg string) string {
	const marker = "for key '"
	i := strings.LastIndex(msg, marker)
	if i < 0 {
		return ""
	}
	rest := msg[i+len(marker):]
	if j := strings.IndexByte(rest, '\''); j >= 0 {
		return rest[:j]
	}
	return ""
}

// FromMySQL classifies a go-sql-driver/mysql.MySQLError-shaped error by
// its numeric code, surfaced through the go-mysql-org/go-mysql constant
// set shared with the on-wire protocol implementation. number and msg are
// the driver error's Number and Message fields; callers that don't have a
// *mysql.MySQLError (e.g. a context error) pass 0 and "".
func FromMySQL(number uint16, msg string, err error) error {
	if err == nil {
		return nil
	}
	if kind, ok := classifyContext(err); ok {
		return &Error{Kind: kind, Dialect: "mysql", Cause: err}
	}
	kind, ok := mysqlNumberKind[number]
	if !ok {
		kind = Unknown
	}
	e := &Error{Kind: kind, Dialect: "mysql", Code: mysql.MySQLErrName[number], Cause: err}
	if kind == UniqueConstraintViolation || kind == NullConstraintViolation || kind == ForeignKeyConstraintViolation {
		if key := mysqlKeyName(msg); key != "" {
			e.Constraint = &Constraint{Kind: ConstraintIndex, Index: key}
		}
	}
	return e
}

// sqliteKind classifies sqlite3's extended result codes; FromSQLite falls
// back to the primary code for any extended code not listed here.
var sqliteKind = map[sqlite3.ErrNoExtended]Kind{
	sqlite3.ErrConstraintUnique:     UniqueConstraintViolation,
	sqlite3.ErrConstraintPrimaryKey: UniqueConstraintViolation,
	sqlite3.ErrConstraintForeignKey: ForeignKeyConstraintViolation,
	sqlite3.ErrConstraintNotNull:    NullConstraintViolation,
	sqlite3.ErrConstraintCheck:      QueryError,
	sqlite3.ErrConstraintTrigger:    QueryError,
}

// sqliteConstraintFields extracts the column list SQLite embeds in a
// constraint-failure message ("UNIQUE constraint failed: t.a, t.b").
func sqliteConstraintFields(msg string) []string {
	const marker = "failed: "
	i := strings.Index(msg, marker)
	if i < 0 {
		return nil
	}
	parts := strings.Split(msg[i+len(marker):], ", ")
	return parts
}

// FromSQLite classifies a mattn/go-sqlite3 driver error.
func FromSQLite(err error) error {
	if err == nil {
		return nil
	}
	if kind, ok := classifyContext(err); ok {
		return &Error{Kind: kind, Dialect: "sqlite", Cause: err}
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		msg := sqliteErr.Error()
		if kind, ok := sqliteKind[sqliteErr.ExtendedCode]; ok {
			e := &Error{Kind: kind, Dialect: "sqlite", Code: msg, Cause: err}
			if kind == UniqueConstraintViolation || kind == NullConstraintViolation || kind == ForeignKeyConstraintViolation {
				e.Constraint = &Constraint{Kind: ConstraintFields, Fields: sqliteConstraintFields(msg)}
			}
			return e
		}
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			return &Error{Kind: QueryError, Dialect: "sqlite", Code: msg, Cause: err}
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return &Error{Kind: Timeout, Dialect: "sqlite", Code: msg, Cause: err}
		case sqlite3.ErrPerm, sqlite3.ErrAuth:
			return &Error{Kind: DatabaseAccessDenied, Dialect: "sqlite", Code: msg, Cause: err}
		case sqlite3.ErrCantOpen:
			return &Error{Kind: DatabaseDoesNotExist, Dialect: "sqlite", Code: msg, Cause: err}
		case sqlite3.ErrMisuse:
			return &Error{Kind: InvalidConnectionArguments, Dialect: "sqlite", Code: msg, Cause: err}
		}
		return &Error{Kind: Unknown, Dialect: "sqlite", Code: msg, Cause: err}
	}
	return &Error{Kind: Unknown, Dialect: "sqlite", Code: "", Cause: err}
}
