package visitor

import "sqlkit/pkg/ast"

// writeTable renders a FROM/JOIN source: its own CTEs first (scoped local
// WITH is not standard SQL, so table-level CTEs are hoisted to the
// statement's WITH clause by writeSelect before this is called), then the
// source itself, then its join chain.
func (e *Engine) writeTable(t *ast.Table) {
	switch {
	case t.Sub != nil:
		e.sb.WriteString("(")
		e.writeSelect(t.Sub)
		e.sb.WriteString(")")
	case t.ValuesRows != nil:
		e.sb.WriteString("(VALUES ")
		for i, row := range t.ValuesRows {
			if i > 0 {
				e.sb.WriteString(", ")
			}
			e.writeRow(row.Exprs)
		}
		e.sb.WriteString(")")
	default:
		if t.Database != "" {
			e.WriteIdent(t.Database)
			e.sb.WriteString(".")
		}
		e.WriteIdent(t.Name)
	}
	if t.Alias != "" {
		e.sb.WriteString(" AS ")
		e.WriteIdent(t.Alias)
	}
	for _, j := range t.Joins {
		e.writeJoin(j)
	}
}

var joinKeyword = map[ast.JoinType]string{
	ast.InnerJoin: "INNER JOIN",
	ast.LeftJoin:  "LEFT JOIN",
	ast.RightJoin: "RIGHT JOIN",
	ast.FullJoin:  "FULL JOIN",
	ast.CrossJoin: "CROSS JOIN",
}

func (e *Engine) writeJoin(j ast.Join) {
	e.sb.WriteString(" ")
	e.sb.WriteString(joinKeyword[j.Type])
	e.sb.WriteString(" ")
	joined := j.Table
	e.writeTable(&joined)
	if j.Type != ast.CrossJoin && !j.On.IsEmpty() {
		e.sb.WriteString(" ON ")
		e.writeCondition(j.On)
	}
}

// collectCTEs gathers a statement-level WITH list from the Select's own
// CTEs plus any carried on its primary table, in that order.
func collectCTEs(sel *ast.Select) []ast.CTE {
	var all []ast.CTE
	all = append(all, sel.CTEs...)
	if sel.Table != nil {
		all = append(all, sel.Table.CTEs...)
	}
	return all
}

func (e *Engine) writeCTEs(ctes []ast.CTE) {
	if len(ctes) == 0 {
		return
	}
	e.sb.WriteString("WITH ")
	for i, c := range ctes {
		if i > 0 {
			e.sb.WriteString(", ")
		}
		e.WriteIdent(c.Name)
		e.sb.WriteString(" AS (")
		e.writeSelect(c.Query)
		e.sb.WriteString(")")
	}
	e.sb.WriteString(" ")
}
