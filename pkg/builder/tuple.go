package builder

import "sqlkit/pkg/ast"

// Tuple2 and Tuple3 extend part of the Comparable trait to composite keys
// (SPEC_FULL.md §4.2): a string-like tuple, interpreted as (table, column)
// or (database, table, column) depending on arity, offers Equals,
// NotEquals, In, NotIn, IsNull and IsNotNull, built as on a single Field.
// The ordering, pattern, BETWEEN and subquery comparisons are not
// available on tuples.

// Tuple2 is a (table, column) pair.
type Tuple2 struct {
	Table, Column string
}

// Col2 builds a Tuple2 over table.column.
func Col2(table, column string) Tuple2 {
	return Tuple2{Table: table, Column: column}
}

func (t Tuple2) field() Field {
	return Field{expr: ast.Column{Table: t.Table, Name: t.Column}}
}

func (t Tuple2) Equals(v any) ast.Compare       { return t.field().Equals(v) }
func (t Tuple2) NotEquals(v any) ast.Compare    { return t.field().NotEquals(v) }
func (t Tuple2) In(values ...any) ast.Compare   { return t.field().In(values...) }
func (t Tuple2) NotIn(values ...any) ast.Compare { return t.field().NotIn(values...) }
func (t Tuple2) IsNull() ast.Compare            { return t.field().IsNull() }
func (t Tuple2) IsNotNull() ast.Compare         { return t.field().IsNotNull() }

// Tuple3 is a (database, table, column) triple.
type Tuple3 struct {
	Database, Table, Column string
}

// Col3 builds a Tuple3 over database.table.column.
func Col3(database, table, column string) Tuple3 {
	return Tuple3{Database: database, Table: table, Column: column}
}

func (t Tuple3) field() Field {
	return Field{expr: ast.Column{Database: t.Database, Table: t.Table, Name: t.Column}}
}

func (t Tuple3) Equals(v any) ast.Compare        { return t.field().Equals(v) }
func (t Tuple3) NotEquals(v any) ast.Compare     { return t.field().NotEquals(v) }
func (t Tuple3) In(values ...any) ast.Compare    { return t.field().In(values...) }
func (t Tuple3) NotIn(values ...any) ast.Compare { return t.field().NotIn(values...) }
func (t Tuple3) IsNull() ast.Compare             { return t.field().IsNull() }
func (t Tuple3) IsNotNull() ast.Compare          { return t.field().IsNotNull() }

// RowTuple builds a composite Row comparison, `(a,b) IN (...)` or
// `(a,b) = (x,y)`, for callers that need true multi-column row
// comparisons rather than the (table,column)-addressing sugar above.
func RowTuple(fields ...Field) ast.Expression {
	exprs := make([]ast.Expression, len(fields))
	for i, f := range fields {
		exprs[i] = f.expr
	}
	return ast.RowExpr{Exprs: exprs}
}
