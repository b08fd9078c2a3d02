// Package dialect provides the three concrete Dialect implementations
// named in SPEC_FULL.md §4.7: SQLite, MySQL and PostgreSQL. Each supplies
// only the contract points where the three diverge; the shared traversal
// lives in pkg/visitor.
package dialect

import (
	"strconv"
	"strings"

	"sqlkit/pkg/ast"
	"sqlkit/pkg/visitor"
)

// SQLite quotes identifiers with backticks, uses "?" placeholders, has no
// RETURNING-adjacent surprises (it does support RETURNING, unlike MySQL,
// but this dialect follows source behavior and treats it as supported),
// and renders `LIMIT -1` as the "unbounded" sentinel when only OFFSET is
// given (SPEC_FULL.md §4.7).
// RenderLimitOffset's default (no explicit limit, no offset) case falls
// back to "LIMIT -1", SQLite's own unbounded-limit idiom, whenever a FROM
// table is present (confirmed against the reference visitor's
// test_select_star_from case).
type SQLite struct{}

func (SQLite) Name() string { return "sqlite" }

func (SQLite) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (SQLite) Placeholder(int) string { return "?" }

func (SQLite) RenderLimitOffset(e *visitor.Engine, limit, offset *int64) {
	switch {
	case limit != nil && offset != nil:
		e.WriteString(" LIMIT " + strconv.FormatInt(*limit, 10) + " OFFSET " + strconv.FormatInt(*offset, 10))
	case limit != nil:
		e.WriteString(" LIMIT " + strconv.FormatInt(*limit, 10))
	case offset != nil:
		e.WriteString(" LIMIT -1 OFFSET " + strconv.FormatInt(*offset, 10))
	default:
		e.WriteString(" LIMIT -1")
	}
}

func (SQLite) RenderBoolean(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

func (SQLite) SupportsReturning() bool { return true }

// RenderConflict emits ON CONFLICT, SQLite's native upsert syntax, sharing
// PostgreSQL's shape (both derive from the same SQL standard extension).
func (SQLite) RenderConflict(e *visitor.Engine, clause *ast.ConflictClause) {
	renderPostgresStyleConflict(e, clause)
}
