package visitor

import "sqlkit/pkg/ast"

// writeSelect assembles a SELECT in the clause order fixed by
// SPEC_FULL.md §4.5: [WITH ctes] SELECT <columns> FROM <table> [JOINs]
// [WHERE] [GROUP BY] [HAVING] [ORDER BY] [LIMIT] [OFFSET] [FOR
// UPDATE|SHARE]. Missing clauses produce no output.
func (e *Engine) writeSelect(sel *ast.Select) {
	if e.failed() {
		return
	}
	e.writeCTEs(collectCTEs(sel))

	e.sb.WriteString("SELECT ")
	e.writeColumns(sel)

	if sel.Table != nil {
		e.sb.WriteString(" FROM ")
		e.writeTable(sel.Table)
	}

	e.writeWhereClause(" WHERE ", sel.Where)

	if len(sel.GroupBy) > 0 {
		e.sb.WriteString(" GROUP BY ")
		for i, g := range sel.GroupBy {
			if i > 0 {
				e.sb.WriteString(", ")
			}
			e.WriteExpression(g)
		}
	}

	e.writeWhereClause(" HAVING ", sel.Having)

	if len(sel.OrderBy) > 0 {
		e.sb.WriteString(" ORDER BY ")
		e.writeOrderBy(sel.OrderBy)
	}

	if sel.Table != nil || sel.Limit != nil || sel.Offset != nil {
		e.Dialect.RenderLimitOffset(e, sel.Limit, sel.Offset)
	}

	switch sel.Locking {
	case ast.LockForUpdate:
		e.sb.WriteString(" FOR UPDATE")
	case ast.LockForShare:
		e.sb.WriteString(" FOR SHARE")
	}
}

// writeColumns defaults to the qualified asterisk of the primary table
// when Columns is empty, or the bare asterisk if there is no table at all
// (SPEC_FULL.md §4.5).
func (e *Engine) writeColumns(sel *ast.Select) {
	if len(sel.Columns) == 0 {
		if sel.Table != nil && sel.Table.Alias != "" {
			e.WriteExpression(ast.AsteriskExpr{Table: sel.Table.Alias})
		} else if sel.Table != nil {
			e.WriteExpression(ast.AsteriskExpr{Table: sel.Table.Name})
		} else {
			e.WriteExpression(ast.AsteriskExpr{})
		}
		return
	}
	for i, c := range sel.Columns {
		if i > 0 {
			e.sb.WriteString(", ")
		}
		e.WriteExpression(c)
	}
}

var nullsOrderSQL = map[ast.NullsOrder]string{
	ast.NullsFirst: " NULLS FIRST",
	ast.NullsLast:  " NULLS LAST",
}

func (e *Engine) writeOrderBy(terms []ast.OrderByTerm) {
	for i, t := range terms {
		if i > 0 {
			e.sb.WriteString(", ")
		}
		e.WriteExpression(t.Expr)
		if t.Direction == ast.Desc {
			e.sb.WriteString(" DESC")
		} else {
			e.sb.WriteString(" ASC")
		}
		if sql, ok := nullsOrderSQL[t.Nulls]; ok {
			e.sb.WriteString(sql)
		}
	}
}
