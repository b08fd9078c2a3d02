package dialect

import (
	"strconv"
	"strings"

	"sqlkit/pkg/ast"
	"sqlkit/pkg/visitor"
)

// MySQL quotes identifiers with backticks, uses "?" placeholders, has no
// RETURNING support, and renders booleans as 0/1 (SPEC_FULL.md §4.7).
type MySQL struct{}

func (MySQL) Name() string { return "mysql" }

func (MySQL) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (MySQL) Placeholder(int) string { return "?" }

func (MySQL) RenderLimitOffset(e *visitor.Engine, limit, offset *int64) {
	switch {
	case limit != nil && offset != nil:
		e.WriteString(" LIMIT " + strconv.FormatInt(*limit, 10) + " OFFSET " + strconv.FormatInt(*offset, 10))
	case limit != nil:
		e.WriteString(" LIMIT " + strconv.FormatInt(*limit, 10))
	case offset != nil:
		// MySQL requires a LIMIT when OFFSET is given; the maximum
		// unsigned BIGINT is its own unbounded-limit idiom.
		e.WriteString(" LIMIT 18446744073709551615 OFFSET " + strconv.FormatInt(*offset, 10))
	}
}

func (MySQL) RenderBoolean(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func (MySQL) SupportsReturning() bool { return false }

func (MySQL) RenderConflict(e *visitor.Engine, clause *ast.ConflictClause) {
	renderMySQLConflict(e, clause)
}
