package dialect

import (
	"strconv"
	"strings"

	"sqlkit/pkg/ast"
	"sqlkit/pkg/visitor"
)

// PostgreSQL quotes identifiers with double quotes, numbers placeholders
// $1,$2,… by append order, and supports RETURNING (SPEC_FULL.md §4.7).
type PostgreSQL struct{}

func (PostgreSQL) Name() string { return "postgres" }

func (PostgreSQL) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (PostgreSQL) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func (PostgreSQL) RenderLimitOffset(e *visitor.Engine, limit, offset *int64) {
	if limit != nil {
		e.WriteString(" LIMIT " + strconv.FormatInt(*limit, 10))
		if offset != nil {
			e.WriteString(" OFFSET " + strconv.FormatInt(*offset, 10))
		}
		return
	}
	if offset != nil {
		e.WriteString(" OFFSET " + strconv.FormatInt(*offset, 10))
	}
}

func (PostgreSQL) RenderBoolean(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

func (PostgreSQL) SupportsReturning() bool { return true }

func (PostgreSQL) RenderConflict(e *visitor.Engine, clause *ast.ConflictClause) {
	renderPostgresStyleConflict(e, clause)
}
