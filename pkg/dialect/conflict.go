package dialect

import (
	"fmt"

	"sqlkit/pkg/ast"
	"sqlkit/pkg/visitor"
)

// renderPostgresStyleConflict emits `ON CONFLICT (target) DO NOTHING` or
// `ON CONFLICT (target) DO UPDATE SET ...`, shared by SQLite and
// PostgreSQL (SPEC_FULL.md §4.6).
func renderPostgresStyleConflict(e *visitor.Engine, clause *ast.ConflictClause) {
	if clause.Action == ast.ConflictAbort {
		return
	}
	e.WriteString(" ON CONFLICT")
	if len(clause.Target) > 0 {
		e.WriteString(" (")
		for i, col := range clause.Target {
			if i > 0 {
				e.WriteString(", ")
			}
			e.WriteIdent(col)
		}
		e.WriteString(")")
	}
	switch clause.Action {
	case ast.ConflictDoNothing:
		e.WriteString(" DO NOTHING")
	case ast.ConflictDoUpdate:
		e.WriteString(" DO UPDATE SET ")
		writeConflictAssignments(e, clause.Updates)
	}
}

// renderMySQLConflict emits `ON DUPLICATE KEY UPDATE ...`. MySQL has no
// notion of a conflict target and no DO-NOTHING form distinct from
// `INSERT IGNORE`, which is a statement-level modifier this visitor does
// not model; ConflictDoNothing on MySQL is rendered as a no-op update of
// a column onto itself, the same trick go-sql-driver users reach for in
// the absence of INSERT IGNORE. The no-op column is the first update
// column if one was supplied, otherwise the first conflict target.
func renderMySQLConflict(e *visitor.Engine, clause *ast.ConflictClause) {
	if clause.Action == ast.ConflictAbort {
		return
	}
	e.WriteString(" ON DUPLICATE KEY UPDATE ")
	if clause.Action == ast.ConflictDoNothing {
		col, ok := mysqlNoOpColumn(clause)
		if !ok {
			e.Fail(fmt.Errorf("dialect: mysql ON DUPLICATE KEY UPDATE DO NOTHING requires an update column or a conflict target"))
			return
		}
		e.WriteIdent(col)
		e.WriteString(" = ")
		e.WriteIdent(col)
		return
	}
	writeConflictAssignments(e, clause.Updates)
}

func mysqlNoOpColumn(clause *ast.ConflictClause) (string, bool) {
	if len(clause.Updates) > 0 {
		return clause.Updates[0].Column.Name, true
	}
	if len(clause.Target) > 0 {
		return clause.Target[0], true
	}
	return "", false
}

func writeConflictAssignments(e *visitor.Engine, assigns []ast.Assignment) {
	for i, a := range assigns {
		if i > 0 {
			e.WriteString(", ")
		}
		e.WriteIdent(a.Column.Name)
		e.WriteString(" = ")
		e.WriteExpression(a.Value)
	}
}
