package visitor

import "sqlkit/pkg/ast"

// writeDelete assembles `DELETE FROM <table> [WHERE] [RETURNING]`.
func (e *Engine) writeDelete(del *ast.Delete) {
	e.sb.WriteString("DELETE FROM ")
	e.writeInsertTarget(del.Table)
	e.writeWhereClause(" WHERE ", del.Where)
	e.writeReturning(del.Returning)
}
