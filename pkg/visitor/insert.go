package visitor

import (
	"fmt"

	"sqlkit/pkg/ast"
)

// writeInsert assembles an INSERT per SPEC_FULL.md §4.6: single- and
// multi-row VALUES, INSERT ... SELECT, DEFAULT VALUES when there are no
// columns and no source, conflict handling delegated to the dialect, and
// RETURNING dropped silently when unsupported.
func (e *Engine) writeInsert(ins *ast.Insert) {
	e.sb.WriteString("INSERT INTO ")
	e.writeInsertTarget(ins.Table)

	switch {
	case ins.Select != nil:
		e.writeInsertColumns(ins.Columns)
		e.sb.WriteString(" ")
		e.writeSelect(ins.Select)
	case len(ins.Columns) == 0 && len(ins.Rows) == 0:
		e.sb.WriteString(" DEFAULT VALUES")
	default:
		e.writeInsertColumns(ins.Columns)
		e.sb.WriteString(" VALUES ")
		e.writeInsertRows(ins.Columns, ins.Rows)
	}

	if ins.Conflict != nil {
		e.Dialect.RenderConflict(e, ins.Conflict)
	}

	e.writeReturning(ins.Returning)
}

func (e *Engine) writeInsertTarget(t ast.Table) {
	if t.Database != "" {
		e.WriteIdent(t.Database)
		e.sb.WriteString(".")
	}
	e.WriteIdent(t.Name)
}

func (e *Engine) writeInsertColumns(cols []ast.Column) {
	if len(cols) == 0 {
		return
	}
	e.sb.WriteString(" (")
	for i, c := range cols {
		if i > 0 {
			e.sb.WriteString(", ")
		}
		e.WriteIdent(c.Name)
	}
	e.sb.WriteString(")")
}

func (e *Engine) writeInsertRows(cols []ast.Column, rows []ast.Row) {
	for i, row := range rows {
		if len(row.Exprs) != len(cols) {
			e.Fail(fmt.Errorf("visitor: insert row has %d values, want %d", len(row.Exprs), len(cols)))
			return
		}
		if i > 0 {
			e.sb.WriteString(", ")
		}
		e.writeRow(row.Exprs)
	}
}

func (e *Engine) writeReturning(cols []ast.Expression) {
	if len(cols) == 0 {
		return
	}
	if !e.Dialect.SupportsReturning() {
		return
	}
	e.sb.WriteString(" RETURNING ")
	for i, c := range cols {
		if i > 0 {
			e.sb.WriteString(", ")
		}
		e.WriteExpression(c)
	}
}
