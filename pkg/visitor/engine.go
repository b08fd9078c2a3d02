// Package visitor implements the dialect-independent recursive-descent
// traversal that turns an AST query into parameterized SQL text plus a
// bound-parameter list, per SPEC_FULL.md §4.3-§4.7. Dialect divergence is
// confined entirely to the Dialect interface in dialect.go; this file
// contains the traversal that is identical across SQLite, MySQL and
// PostgreSQL.
package visitor

import (
	"fmt"
	"strings"

	"sqlkit/pkg/ast"
	"sqlkit/pkg/value"
)

// Engine drives one traversal. It is not safe for concurrent use, and is
// discarded after a single Visit call — the AST and visitor are purely
// functional with respect to concurrency (SPEC_FULL.md §5); nothing here
// is retained or reused across calls.
type Engine struct {
	Dialect Dialect

	sb     strings.Builder
	params []value.Value
	err    error
}

// New returns an Engine targeting d.
func New(d Dialect) *Engine {
	return &Engine{Dialect: d}
}

// Visit renders q to SQL text and a bound-parameter list. The returned
// slice's order matches the left-to-right order placeholders appear in
// the text.
func Visit(d Dialect, q ast.Query) (string, []value.Value, error) {
	e := New(d)
	e.writeQuery(q)
	if e.err != nil {
		return "", nil, e.err
	}
	return e.sb.String(), e.params, nil
}

// Fail records the first error encountered; subsequent writes become
// no-ops once an error is set, so callers never need to check err after
// every step.
func (e *Engine) Fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *Engine) failed() bool { return e.err != nil }

// WriteString emits raw SQL text verbatim. Exported so dialect
// implementations (pkg/dialect) can use it from RenderLimitOffset,
// RenderConflict and friends.
func (e *Engine) WriteString(s string) {
	if e.failed() {
		return
	}
	e.sb.WriteString(s)
}

// BindParam appends v to the parameter list and writes its placeholder.
// Exported for dialect callbacks that need to bind a value outside the
// normal expression traversal.
func (e *Engine) BindParam(v value.Value) {
	if e.failed() {
		return
	}
	e.params = append(e.params, v)
	e.sb.WriteString(e.Dialect.Placeholder(len(e.params)))
}

// WriteIdent quotes and writes a single identifier segment. Exported for
// dialect callbacks.
func (e *Engine) WriteIdent(name string) {
	if e.failed() {
		return
	}
	e.sb.WriteString(e.Dialect.QuoteIdent(name))
}

// WriteExpression renders any Expression. Exported so dialect
// implementations can recurse back into the engine (e.g. rendering the
// Value side of an ON DUPLICATE KEY UPDATE assignment).
func (e *Engine) WriteExpression(expr ast.Expression) {
	if e.failed() || expr == nil {
		return
	}
	switch n := expr.(type) {
	case ast.ValueExpr:
		e.BindParam(n.Value)
	case ast.BoolLiteralExpr:
		e.sb.WriteString(e.Dialect.RenderBoolean(n.Value))
	case ast.Column:
		e.writeQualifiedColumn(n)
	case ast.AsteriskExpr:
		e.writeAsterisk(n)
	case ast.RowExpr:
		e.writeRow(n.Exprs)
	case ast.ArithExpr:
		e.writeArith(n)
	case ast.FuncExpr:
		e.writeFunc(n)
	case ast.SubSelectExpr:
		e.sb.WriteString("(")
		e.writeSelect(n.Select)
		e.sb.WriteString(")")
	case ast.AliasedExpr:
		e.WriteExpression(n.Inner)
		e.sb.WriteString(" AS ")
		e.WriteIdent(n.As)
	case ast.Compare:
		e.writeCompare(n)
	case ast.ConditionTree:
		e.writeCondition(n)
	default:
		e.Fail(fmt.Errorf("visitor: unsupported expression %T", expr))
	}
}

func (e *Engine) writeQualifiedColumn(c ast.Column) {
	first := true
	for _, part := range []string{c.Database, c.Table, c.Name} {
		if part == "" {
			continue
		}
		if !first {
			e.sb.WriteString(".")
		}
		e.WriteIdent(part)
		first = false
	}
}

func (e *Engine) writeAsterisk(a ast.AsteriskExpr) {
	if a.Table != "" {
		e.WriteIdent(a.Table)
		e.sb.WriteString(".")
	}
	e.sb.WriteString("*")
}

func (e *Engine) writeRow(exprs []ast.Expression) {
	e.sb.WriteString("(")
	for i, x := range exprs {
		if i > 0 {
			e.sb.WriteString(", ")
		}
		e.WriteExpression(x)
	}
	e.sb.WriteString(")")
}

var arithSymbol = map[ast.ArithOp]string{
	ast.OpAdd: "+",
	ast.OpSub: "-",
	ast.OpMul: "*",
	ast.OpDiv: "/",
}

func (e *Engine) writeArith(a ast.ArithExpr) {
	e.sb.WriteString("(")
	e.WriteExpression(a.Left)
	e.sb.WriteString(" ")
	e.sb.WriteString(arithSymbol[a.Op])
	e.sb.WriteString(" ")
	e.WriteExpression(a.Right)
	e.sb.WriteString(")")
}

func (e *Engine) writeFunc(f ast.FuncExpr) {
	e.sb.WriteString(f.Name)
	e.sb.WriteString("(")
	if f.Distinct {
		e.sb.WriteString("DISTINCT ")
	}
	for i, arg := range f.Args {
		if i > 0 {
			e.sb.WriteString(", ")
		}
		e.WriteExpression(arg)
	}
	e.sb.WriteString(")")
}

// writeCondition renders a ConditionTree per the invariants in
// SPEC_FULL.md §4.4: And/Or/Not are always parenthesized, Single is not,
// and NoCondition writes nothing at all.
func (e *Engine) writeCondition(t ast.ConditionTree) {
	if e.failed() {
		return
	}
	switch t.Op {
	case ast.TreeNone:
		// nothing
	case ast.TreeSingle:
		e.WriteExpression(t.Expr)
	case ast.TreeAnd:
		e.sb.WriteString("(")
		e.writeCondition(*t.Left)
		e.sb.WriteString(" AND ")
		e.writeCondition(*t.Right)
		e.sb.WriteString(")")
	case ast.TreeOr:
		e.sb.WriteString("(")
		e.writeCondition(*t.Left)
		e.sb.WriteString(" OR ")
		e.writeCondition(*t.Right)
		e.sb.WriteString(")")
	case ast.TreeNot:
		e.sb.WriteString("(NOT ")
		e.writeCondition(*t.Inner)
		e.sb.WriteString(")")
	default:
		e.Fail(fmt.Errorf("visitor: unknown condition op %v", t.Op))
	}
}

// writeWhereClause writes " WHERE <cond>" or nothing when cond is empty.
func (e *Engine) writeWhereClause(prefix string, cond ast.ConditionTree) {
	if cond.IsEmpty() {
		return
	}
	e.sb.WriteString(prefix)
	e.writeCondition(cond)
}

func (e *Engine) writeQuery(q ast.Query) {
	switch n := q.(type) {
	case *ast.Select:
		e.writeSelect(n)
	case *ast.Insert:
		e.writeInsert(n)
	case *ast.Update:
		e.writeUpdate(n)
	case *ast.Delete:
		e.writeDelete(n)
	case *ast.Union:
		e.writeUnion(n)
	case *ast.Raw:
		e.writeRaw(n)
	default:
		e.Fail(fmt.Errorf("visitor: unsupported query %T", q))
	}
}

// writeRaw emits r.Text verbatim — it already contains the dialect's own
// placeholder syntax, written by the caller — and appends r.Params
// directly to the bound-parameter list without rendering new
// placeholders, preserving the text/list position correspondence the
// caller established by hand.
func (e *Engine) writeRaw(r *ast.Raw) {
	e.sb.WriteString(r.Text)
	for _, p := range r.Params {
		lit, ok := p.(ast.ValueExpr)
		if !ok {
			e.Fail(fmt.Errorf("visitor: raw query param must be a literal value, got %T", p))
			return
		}
		e.params = append(e.params, lit.Value)
	}
}
