package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlkit/pkg/ast"
	"sqlkit/pkg/builder"
	"sqlkit/pkg/dialect"
	"sqlkit/pkg/visitor"
)

func TestField_ComparableConstructsCompare(t *testing.T) {
	c := builder.Col("age").GreaterOrEqual(18)
	assert.Equal(t, ast.CmpGreaterOrEqual, c.Op)
	assert.Equal(t, ast.Column{Name: "age"}, c.Left)
}

func TestField_ComparisonAgainstAnotherField(t *testing.T) {
	c := builder.TableCol("a", "id").Equals(builder.TableCol("b", "a_id"))
	left, ok := c.Left.(ast.Column)
	require.True(t, ok)
	right, ok := c.Right.(ast.Column)
	require.True(t, ok)
	assert.Equal(t, "a", left.Table)
	assert.Equal(t, "b", right.Table)
}

func TestField_AsAliases(t *testing.T) {
	e := builder.Col("id").As("widget_id")
	aliased, ok := e.(ast.AliasedExpr)
	require.True(t, ok)
	assert.Equal(t, "widget_id", aliased.As)
}

func TestField_UnsupportedLiteralPanics(t *testing.T) {
	assert.Panics(t, func() {
		builder.Col("x").Equals(struct{}{})
	})
}

func TestGroup_BuildsExpressionList(t *testing.T) {
	exprs := builder.Group(builder.Col("a"), builder.Col("b"))
	require.Len(t, exprs, 2)
	assert.Equal(t, ast.Column{Name: "a"}, exprs[0])
}

func TestConjunctive_AndAllSkipsEmpty(t *testing.T) {
	cond := builder.AndAll(
		ast.NoCondition(),
		builder.Cond(builder.Col("a").Equals(1)),
		ast.NoCondition(),
		builder.Cond(builder.Col("b").Equals(2)),
	)
	sel := ast.NewSelect(ast.From("t"), ast.AsteriskExpr{})
	sel.Where = cond

	sql, _, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t" WHERE ("a" = $1 AND "b" = $2)`, sql)
}

func TestConjunctive_AndAllAllEmptyYieldsNoCondition(t *testing.T) {
	cond := builder.AndAll(ast.NoCondition(), ast.NoCondition())
	assert.True(t, cond.IsEmpty())
}

func TestTuple2_Comparable(t *testing.T) {
	c := builder.Col2("orders", "customer_id").Equals(42)
	col, ok := c.Left.(ast.Column)
	require.True(t, ok)
	assert.Equal(t, "orders", col.Table)
	assert.Equal(t, "customer_id", col.Name)
}

func TestTuple3_Comparable(t *testing.T) {
	c := builder.Col3("shop", "orders", "id").IsNotNull()
	col, ok := c.Left.(ast.Column)
	require.True(t, ok)
	assert.Equal(t, "shop", col.Database)
}

func TestRowTuple_CompositeComparison(t *testing.T) {
	row := builder.RowTuple(builder.Col("a"), builder.Col("b"))
	r, ok := row.(ast.RowExpr)
	require.True(t, ok)
	assert.Len(t, r.Exprs, 2)
}

func TestOrderable_NullsOrdering(t *testing.T) {
	term := builder.Col("created_at").DescNullsLast()
	assert.Equal(t, ast.Desc, term.Direction)
	assert.Equal(t, ast.NullsLast, term.Nulls)
}
