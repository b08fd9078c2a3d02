// Package ast implements the query abstract-syntax model: tables, columns,
// rows, expressions, comparisons, conjunctions, joins, ordering, grouping,
// selects, inserts, updates, deletes, unions and CTEs.
//
// Nodes are constructed bottom-up (normally through pkg/builder, never by
// parsing SQL text) and owned transitively by their parent node. A visitor
// (pkg/visitor) consumes a Query exactly once, producing SQL text and a
// bound-parameter list; the AST is never mutated or re-visited afterwards.
package ast

import "sqlkit/pkg/value"

// Expression is the sum type for anything that can appear where a SQL value
// expression is expected: a literal, a column reference, a row, a function
// call, an arithmetic combination, a comparison, a condition tree, an
// asterisk, or a sub-select.
type Expression interface {
	exprNode()
}

// Query is the sum type for a top-level statement: Select, Insert, Update,
// Delete, Union or Raw.
type Query interface {
	queryNode()
}

// ValueExpr carries a literal value.Value directly in the AST.
type ValueExpr struct {
	Value value.Value
}

func (ValueExpr) exprNode() {}

// BoolLiteralExpr is a structural TRUE/FALSE constant emitted inline by
// the visitor (dialect-rendered as 1/0 on MySQL) rather than bound as a
// parameter. It exists for guard predicates the query builder itself
// constructs — e.g. a join condition that is unconditionally true — and
// must never be used to carry user data; actual boolean column values
// always go through ValueExpr and the normal binding discipline.
type BoolLiteralExpr struct {
	Value bool
}

func (BoolLiteralExpr) exprNode() {}

// AsteriskExpr is `*` or `t.*`; Table is empty for the unqualified form.
type AsteriskExpr struct {
	Table string
}

func (AsteriskExpr) exprNode() {}

// RowExpr is an ordered tuple of expressions: `(a, b, c)`. Used both as a
// composite comparison operand and as one VALUES row in an Insert.
type RowExpr struct {
	Exprs []Expression
}

func (RowExpr) exprNode() {}

// ArithOp is an arithmetic operator.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
)

// ArithExpr is a binary arithmetic expression. The visitor always
// parenthesizes nested arithmetic expressions (SPEC_FULL.md §4.3).
type ArithExpr struct {
	Left  Expression
	Op    ArithOp
	Right Expression
}

func (ArithExpr) exprNode() {}

// FuncExpr is a function call: COUNT, SUM, AVG, MIN, MAX, ROW_NUMBER,
// LOWER, UPPER, COALESCE, or any other identifier-named function.
type FuncExpr struct {
	Name     string
	Args     []Expression
	Distinct bool
}

func (FuncExpr) exprNode() {}

// SubSelectExpr embeds a Select used as a scalar/row expression, e.g. the
// right-hand side of `col = (SELECT ...)` or inside EXISTS.
type SubSelectExpr struct {
	Select *Select
}

func (SubSelectExpr) exprNode() {}

// AliasedExpr attaches an alias to any Expression. Built by the Aliasable
// builder trait (pkg/builder).
type AliasedExpr struct {
	Inner Expression
	As    string
}

func (AliasedExpr) exprNode() {}

// Alias returns e's alias if it carries one via AliasedExpr, else "".
func Alias(e Expression) string {
	if a, ok := e.(AliasedExpr); ok {
		return a.As
	}
	return ""
}

// Unalias strips an AliasedExpr wrapper, returning the inner expression
// unchanged if e is not aliased.
func Unalias(e Expression) Expression {
	if a, ok := e.(AliasedExpr); ok {
		return a.Inner
	}
	return e
}
