package visitor

import (
	"fmt"

	"sqlkit/pkg/ast"
	"sqlkit/pkg/value"
)

// writeCompare renders a single comparison. IS NULL / IS NOT NULL never
// bind a parameter — the operand is rendered inline per SPEC_FULL.md
// §4.3's NULL-lowering rule.
func (e *Engine) writeCompare(c ast.Compare) {
	switch c.Op {
	case ast.CmpEquals:
		e.writeBinaryCompare(c.Left, "=", c.Right)
	case ast.CmpNotEquals:
		e.writeBinaryCompare(c.Left, "<>", c.Right)
	case ast.CmpLess:
		e.writeBinaryCompare(c.Left, "<", c.Right)
	case ast.CmpLessOrEqual:
		e.writeBinaryCompare(c.Left, "<=", c.Right)
	case ast.CmpGreater:
		e.writeBinaryCompare(c.Left, ">", c.Right)
	case ast.CmpGreaterOrEqual:
		e.writeBinaryCompare(c.Left, ">=", c.Right)
	case ast.CmpLike:
		e.writePatternCompare(c.Left, "LIKE", c.Right, true, true)
	case ast.CmpNotLike:
		e.writePatternCompare(c.Left, "NOT LIKE", c.Right, true, true)
	case ast.CmpBeginsWith:
		e.writePatternCompare(c.Left, "LIKE", c.Right, false, true)
	case ast.CmpNotBeginsWith:
		e.writePatternCompare(c.Left, "NOT LIKE", c.Right, false, true)
	case ast.CmpEndsInto:
		e.writePatternCompare(c.Left, "LIKE", c.Right, true, false)
	case ast.CmpNotEndsInto:
		e.writePatternCompare(c.Left, "NOT LIKE", c.Right, true, false)
	case ast.CmpIsNull:
		e.WriteExpression(c.Left)
		e.sb.WriteString(" IS NULL")
	case ast.CmpIsNotNull:
		e.WriteExpression(c.Left)
		e.sb.WriteString(" IS NOT NULL")
	case ast.CmpBetween:
		e.writeBetween(c, "BETWEEN")
	case ast.CmpNotBetween:
		e.writeBetween(c, "NOT BETWEEN")
	case ast.CmpIn:
		e.writeIn(c, "IN")
	case ast.CmpNotIn:
		e.writeIn(c, "NOT IN")
	default:
		e.Fail(fmt.Errorf("visitor: unknown compare op %v", c.Op))
	}
}

func (e *Engine) writeBinaryCompare(left ast.Expression, op string, right ast.Expression) {
	e.WriteExpression(left)
	e.sb.WriteString(" ")
	e.sb.WriteString(op)
	e.sb.WriteString(" ")
	e.WriteExpression(right)
}

// writePatternCompare brackets the right-hand literal with '%' on the
// requested sides without escaping embedded '%'/'_' (SPEC_FULL.md §4.3's
// pattern-escaping rule). Right must be a ValueExpr carrying Text.
func (e *Engine) writePatternCompare(left ast.Expression, op string, right ast.Expression, leadingPct, trailingPct bool) {
	e.WriteExpression(left)
	e.sb.WriteString(" ")
	e.sb.WriteString(op)
	e.sb.WriteString(" ")

	lit, ok := right.(ast.ValueExpr)
	if !ok {
		e.Fail(fmt.Errorf("visitor: pattern comparison operand must be a literal, got %T", right))
		return
	}
	s, ok := lit.Value.AsText()
	if !ok {
		e.Fail(fmt.Errorf("visitor: pattern comparison operand must be Text"))
		return
	}
	if leadingPct {
		s = "%" + s
	}
	if trailingPct {
		s = s + "%"
	}
	e.BindParam(value.Text(s))
}

func (e *Engine) writeBetween(c ast.Compare, kw string) {
	e.WriteExpression(c.Left)
	e.sb.WriteString(" ")
	e.sb.WriteString(kw)
	e.sb.WriteString(" ")
	e.WriteExpression(c.Low)
	e.sb.WriteString(" AND ")
	e.WriteExpression(c.High)
}

func (e *Engine) writeIn(c ast.Compare, kw string) {
	e.WriteExpression(c.Left)
	e.sb.WriteString(" ")
	e.sb.WriteString(kw)
	e.sb.WriteString(" ")
	if c.Sub != nil {
		e.sb.WriteString("(")
		e.writeSelect(c.Sub)
		e.sb.WriteString(")")
		return
	}
	e.sb.WriteString("(")
	for i, v := range c.Values {
		if i > 0 {
			e.sb.WriteString(", ")
		}
		e.WriteExpression(v)
	}
	e.sb.WriteString(")")
}
