package visitor

import "sqlkit/pkg/ast"

// writeUpdate assembles `UPDATE <table> SET <assignments> [WHERE]
// [RETURNING]`.
func (e *Engine) writeUpdate(upd *ast.Update) {
	e.sb.WriteString("UPDATE ")
	e.writeInsertTarget(upd.Table)
	e.sb.WriteString(" SET ")
	e.writeAssignments(upd.Set)
	e.writeWhereClause(" WHERE ", upd.Where)
	e.writeReturning(upd.Returning)
}

func (e *Engine) writeAssignments(assigns []ast.Assignment) {
	for i, a := range assigns {
		if i > 0 {
			e.sb.WriteString(", ")
		}
		e.WriteIdent(a.Column.Name)
		e.sb.WriteString(" = ")
		e.WriteExpression(a.Value)
	}
}
