package visitor

import (
	"fmt"

	"sqlkit/pkg/ast"
)

// writeUnion assembles `(<t0>) UNION [ALL] (<t1>) UNION [ALL] (<t2>) ...`,
// each term parenthesized to keep ORDER BY/LIMIT scoping unambiguous. A
// term may itself be a *ast.Union, so callers that need an explicit
// grouping like "(A UNION B) UNION C" can nest rather than rely on the
// flat left-to-right chain this produces for a single Union's Selects.
func (e *Engine) writeUnion(u *ast.Union) {
	if len(u.Selects) < 2 {
		e.Fail(fmt.Errorf("visitor: union requires at least 2 terms, got %d", len(u.Selects)))
		return
	}
	for i, term := range u.Selects {
		if i > 0 {
			e.sb.WriteString(" UNION ")
			if u.All {
				e.sb.WriteString("ALL ")
			}
		}
		e.sb.WriteString("(")
		e.writeQuery(term)
		e.sb.WriteString(")")
	}
}
