// Package builder is the ergonomic construction layer over pkg/ast: a set
// of capability traits (SPEC_FULL.md §4.2) attached to small wrapper
// types so that `Col("age").GreaterOrEqual(18)` builds
// `ast.Compare{Op: ast.CmpGreaterOrEqual, ...}` without the caller ever
// naming an AST type directly.
//
// Go has no operator overloading and no way to retroactively attach
// methods to ast.Column from another package, so the traits are grounded
// on a small Field wrapper rather than literally extending primitive
// types — the same shape as other_examples/bokwoon95-sq's Field/Predicate
// split, adapted to this AST's Compare/ConditionTree types instead of
// sq's SQLExcludeWriter-based fields.
package builder

import (
	"time"

	"sqlkit/pkg/ast"
	"sqlkit/pkg/value"
)

// Field wraps any Expression and attaches the Comparable, Aliasable,
// Groupable and Orderable traits to it.
type Field struct {
	expr ast.Expression
}

// Wrap adapts an arbitrary Expression (e.g. a FuncExpr built by Count,
// Sum, ...) into a Field so the traits apply to it too.
func Wrap(e ast.Expression) Field { return Field{expr: e} }

// Col builds a Field over an unqualified column reference.
func Col(name string) Field {
	return Field{expr: ast.Column{Name: name}}
}

// TableCol builds a Field over a table-qualified column reference.
func TableCol(table, name string) Field {
	return Field{expr: ast.Column{Table: table, Name: name}}
}

// QualifiedCol builds a Field over a database-qualified column reference.
func QualifiedCol(database, table, name string) Field {
	return Field{expr: ast.Column{Database: database, Table: table, Name: name}}
}

// Expr returns the wrapped Expression, for callers assembling raw AST
// nodes (Select.Columns, GroupBy, ...) directly.
func (f Field) Expr() ast.Expression { return f.expr }

// toValueExpr converts an arbitrary Go value into a literal Expression.
// Expression and Field arguments pass through unchanged so comparisons
// against other columns or sub-expressions work without a separate
// overload set.
func toValueExpr(v any) ast.Expression {
	switch x := v.(type) {
	case ast.Expression:
		return x
	case Field:
		return x.expr
	case value.Value:
		return ast.ValueExpr{Value: x}
	case int:
		return ast.ValueExpr{Value: value.FromInt(x)}
	case int32:
		return ast.ValueExpr{Value: value.FromInt32(x)}
	case int64:
		return ast.ValueExpr{Value: value.FromInt64(x)}
	case float64:
		return ast.ValueExpr{Value: value.FromFloat64(x)}
	case string:
		return ast.ValueExpr{Value: value.FromString(x)}
	case []byte:
		return ast.ValueExpr{Value: value.FromBytes(x)}
	case bool:
		return ast.ValueExpr{Value: value.FromBool(x)}
	case time.Time:
		return ast.ValueExpr{Value: value.FromTime(x)}
	case nil:
		return ast.ValueExpr{Value: value.TextNull()}
	default:
		panic("builder: unsupported literal type in comparison")
	}
}

// Comparable trait: one method per CompareOp variant (SPEC_FULL.md §4.2).

func (f Field) Equals(v any) ast.Compare {
	return ast.Compare{Op: ast.CmpEquals, Left: f.expr, Right: toValueExpr(v)}
}

func (f Field) NotEquals(v any) ast.Compare {
	return ast.Compare{Op: ast.CmpNotEquals, Left: f.expr, Right: toValueExpr(v)}
}

func (f Field) Less(v any) ast.Compare {
	return ast.Compare{Op: ast.CmpLess, Left: f.expr, Right: toValueExpr(v)}
}

func (f Field) LessOrEqual(v any) ast.Compare {
	return ast.Compare{Op: ast.CmpLessOrEqual, Left: f.expr, Right: toValueExpr(v)}
}

func (f Field) Greater(v any) ast.Compare {
	return ast.Compare{Op: ast.CmpGreater, Left: f.expr, Right: toValueExpr(v)}
}

func (f Field) GreaterOrEqual(v any) ast.Compare {
	return ast.Compare{Op: ast.CmpGreaterOrEqual, Left: f.expr, Right: toValueExpr(v)}
}

func (f Field) Like(pattern string) ast.Compare {
	return ast.Compare{Op: ast.CmpLike, Left: f.expr, Right: ast.ValueExpr{Value: value.Text(pattern)}}
}

func (f Field) NotLike(pattern string) ast.Compare {
	return ast.Compare{Op: ast.CmpNotLike, Left: f.expr, Right: ast.ValueExpr{Value: value.Text(pattern)}}
}

func (f Field) BeginsWith(prefix string) ast.Compare {
	return ast.Compare{Op: ast.CmpBeginsWith, Left: f.expr, Right: ast.ValueExpr{Value: value.Text(prefix)}}
}

func (f Field) NotBeginsWith(prefix string) ast.Compare {
	return ast.Compare{Op: ast.CmpNotBeginsWith, Left: f.expr, Right: ast.ValueExpr{Value: value.Text(prefix)}}
}

func (f Field) EndsInto(suffix string) ast.Compare {
	return ast.Compare{Op: ast.CmpEndsInto, Left: f.expr, Right: ast.ValueExpr{Value: value.Text(suffix)}}
}

func (f Field) NotEndsInto(suffix string) ast.Compare {
	return ast.Compare{Op: ast.CmpNotEndsInto, Left: f.expr, Right: ast.ValueExpr{Value: value.Text(suffix)}}
}

func (f Field) IsNull() ast.Compare {
	return ast.Compare{Op: ast.CmpIsNull, Left: f.expr}
}

func (f Field) IsNotNull() ast.Compare {
	return ast.Compare{Op: ast.CmpIsNotNull, Left: f.expr}
}

func (f Field) Between(low, high any) ast.Compare {
	return ast.Compare{Op: ast.CmpBetween, Left: f.expr, Low: toValueExpr(low), High: toValueExpr(high)}
}

func (f Field) NotBetween(low, high any) ast.Compare {
	return ast.Compare{Op: ast.CmpNotBetween, Left: f.expr, Low: toValueExpr(low), High: toValueExpr(high)}
}

func (f Field) In(values ...any) ast.Compare {
	exprs := make([]ast.Expression, len(values))
	for i, v := range values {
		exprs[i] = toValueExpr(v)
	}
	return ast.Compare{Op: ast.CmpIn, Left: f.expr, Values: exprs}
}

func (f Field) NotIn(values ...any) ast.Compare {
	exprs := make([]ast.Expression, len(values))
	for i, v := range values {
		exprs[i] = toValueExpr(v)
	}
	return ast.Compare{Op: ast.CmpNotIn, Left: f.expr, Values: exprs}
}

// InSelect and NotInSelect round the Comparable trait out to 20 methods:
// the 18 above plus the subquery forms of In/NotIn, which the
// AST represents with Compare.Sub rather than Compare.Values.

func (f Field) InSelect(sub *ast.Select) ast.Compare {
	return ast.Compare{Op: ast.CmpIn, Left: f.expr, Sub: sub}
}

func (f Field) NotInSelect(sub *ast.Select) ast.Compare {
	return ast.Compare{Op: ast.CmpNotIn, Left: f.expr, Sub: sub}
}

// Aliasable trait.

func (f Field) As(alias string) ast.Expression {
	return ast.AliasedExpr{Inner: f.expr, As: alias}
}

// Orderable trait.

func (f Field) Asc() ast.OrderByTerm {
	return ast.OrderByTerm{Expr: f.expr, Direction: ast.Asc}
}

func (f Field) Desc() ast.OrderByTerm {
	return ast.OrderByTerm{Expr: f.expr, Direction: ast.Desc}
}

func (f Field) AscNullsFirst() ast.OrderByTerm {
	return ast.OrderByTerm{Expr: f.expr, Direction: ast.Asc, Nulls: ast.NullsFirst}
}

func (f Field) AscNullsLast() ast.OrderByTerm {
	return ast.OrderByTerm{Expr: f.expr, Direction: ast.Asc, Nulls: ast.NullsLast}
}

func (f Field) DescNullsFirst() ast.OrderByTerm {
	return ast.OrderByTerm{Expr: f.expr, Direction: ast.Desc, Nulls: ast.NullsFirst}
}

func (f Field) DescNullsLast() ast.OrderByTerm {
	return ast.OrderByTerm{Expr: f.expr, Direction: ast.Desc, Nulls: ast.NullsLast}
}

// Groupable trait: a GROUP BY list is just []ast.Expression, so grouping
// by a Field needs no wrapper beyond Expr(); Group is a convenience for
// building the list from several fields at once.
func Group(fields ...Field) []ast.Expression {
	exprs := make([]ast.Expression, len(fields))
	for i, f := range fields {
		exprs[i] = f.expr
	}
	return exprs
}
