package visitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlkit/pkg/ast"
	"sqlkit/pkg/builder"
	"sqlkit/pkg/dialect"
	"sqlkit/pkg/value"
	"sqlkit/pkg/visitor"
)

func intPtr(n int64) *int64 { return &n }

func TestSelect_Basic(t *testing.T) {
	sel := ast.NewSelect(ast.From("users"), builder.Col("id").Expr(), builder.Col("name").Expr())
	sel.Where = builder.Cond(builder.Col("age").GreaterOrEqual(18))

	sql, params, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id", "name" FROM "users" WHERE "age" >= $1`, sql)
	require.Len(t, params, 1)
	n, ok := params[0].AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(18), n)
}

func TestSelect_DefaultColumnsQualified(t *testing.T) {
	sel := ast.NewSelect(ast.From("users").As("u"))
	sql, _, err := visitor.Visit(dialect.MySQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, "SELECT `u`.* FROM `users` AS `u`", sql)
}

func TestSelect_NoTableAsterisk(t *testing.T) {
	sel := &ast.Select{}
	sql, _, err := visitor.Visit(dialect.SQLite{}, sel)
	require.NoError(t, err)
	assert.Equal(t, "SELECT *", sql)
}

func TestSelect_AndOrAlwaysParenthesized(t *testing.T) {
	cond := builder.And(
		builder.Cond(builder.Col("a").Equals(1)),
		builder.Or(
			builder.Cond(builder.Col("b").Equals(2)),
			builder.Cond(builder.Col("c").Equals(3)),
		),
	)
	sel := ast.NewSelect(ast.From("t"), ast.AsteriskExpr{})
	sel.Where = cond

	sql, params, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t" WHERE ("a" = $1 AND ("b" = $2 OR "c" = $3))`, sql)
	assert.Len(t, params, 3)
}

func TestSelect_NoConditionOmitsWhere(t *testing.T) {
	sel := ast.NewSelect(ast.From("t"), ast.AsteriskExpr{})
	sql, _, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t"`, sql)
}

func TestSelect_SingleNeverExtraParenthesized(t *testing.T) {
	sel := ast.NewSelect(ast.From("t"), ast.AsteriskExpr{})
	sel.Where = builder.Cond(builder.Col("a").Equals(1))
	sql, _, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t" WHERE "a" = $1`, sql)
}

func TestSelect_NotNegatesButEmptyStaysEmpty(t *testing.T) {
	negated := builder.Not(builder.Cond(builder.Col("a").Equals(1)))
	sel := ast.NewSelect(ast.From("t"), ast.AsteriskExpr{})
	sel.Where = negated
	sql, _, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t" WHERE (NOT "a" = $1)`, sql)

	sel.Where = builder.Not(ast.NoCondition())
	sql, _, err = visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t"`, sql)
}

func TestSelect_IsNullNeverBindsParam(t *testing.T) {
	sel := ast.NewSelect(ast.From("t"), ast.AsteriskExpr{})
	sel.Where = builder.Cond(builder.Col("deleted_at").IsNull())
	sql, params, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t" WHERE "deleted_at" IS NULL`, sql)
	assert.Empty(t, params)
}

func TestSelect_EqualsNullStillBindsPlaceholder(t *testing.T) {
	sel := ast.NewSelect(ast.From("t"), ast.AsteriskExpr{})
	sel.Where = builder.Cond(builder.Col("x").Equals(value.TextNull()))
	sql, params, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t" WHERE "x" = $1`, sql)
	require.Len(t, params, 1)
	assert.True(t, params[0].IsNull())
}

func TestSelect_LikePatternsBracketWithoutEscaping(t *testing.T) {
	sel := ast.NewSelect(ast.From("t"), ast.AsteriskExpr{})
	sel.Where = builder.Cond(builder.Col("name").BeginsWith("100%_off"))
	sql, params, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t" WHERE "name" LIKE $1`, sql)
	text, _ := params[0].AsText()
	assert.Equal(t, "100%_off%", text)
}

func TestSelect_LimitOffsetPerDialect(t *testing.T) {
	mk := func() *ast.Select {
		sel := ast.NewSelect(ast.From("t"), ast.AsteriskExpr{})
		sel.Offset = intPtr(5)
		return sel
	}

	sql, _, err := visitor.Visit(dialect.SQLite{}, mk())
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM `t` LIMIT -1 OFFSET 5", sql)

	sql, _, err = visitor.Visit(dialect.MySQL{}, mk())
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM `t` LIMIT 18446744073709551615 OFFSET 5", sql)

	sql, _, err = visitor.Visit(dialect.PostgreSQL{}, mk())
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t" OFFSET 5`, sql)
}

func TestSelect_SQLiteNoLimitNoOffsetStillRendersSentinel(t *testing.T) {
	sel := ast.NewSelect(ast.From("musti"), ast.AsteriskExpr{})
	sql, _, err := visitor.Visit(dialect.SQLite{}, sel)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM `musti` LIMIT -1", sql)

	sql, _, err = visitor.Visit(dialect.MySQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM `musti`", sql)

	sql, _, err = visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "musti"`, sql)
}

func TestSelect_JoinsAndGroupByHavingOrderBy(t *testing.T) {
	orders := ast.From("orders").As("o").Join(
		ast.InnerJoin,
		ast.From("customers").As("c"),
		builder.Cond(builder.TableCol("o", "customer_id").Equals(builder.TableCol("c", "id"))),
	)
	sel := ast.NewSelect(orders, builder.TableCol("c", "id").Expr(), ast.Count(ast.AsteriskExpr{}))
	sel.GroupBy = []ast.Expression{builder.TableCol("c", "id").Expr()}
	sel.Having = builder.Cond(builder.Wrap(ast.Count(ast.AsteriskExpr{})).Greater(1))
	sel.OrderBy = []ast.OrderByTerm{builder.TableCol("c", "id").Desc()}
	sel.Limit = intPtr(10)

	sql, _, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "c"."id", COUNT(*) FROM "orders" AS "o" INNER JOIN "customers" AS "c" ON "o"."customer_id" = "c"."id" GROUP BY "c"."id" HAVING COUNT(*) > $1 ORDER BY "c"."id" DESC LIMIT 10`, sql)
}

func TestSelect_CrossJoinOmitsOn(t *testing.T) {
	tbl := ast.From("a").Join(ast.CrossJoin, ast.From("b"), ast.NoCondition())
	sel := ast.NewSelect(tbl, ast.AsteriskExpr{})
	sql, _, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "a" CROSS JOIN "b"`, sql)
}

func TestSelect_CTE(t *testing.T) {
	inner := ast.NewSelect(ast.From("t"), ast.AsteriskExpr{})
	outer := ast.From("recent").With("recent", inner)
	sel := ast.NewSelect(outer, ast.AsteriskExpr{})

	sql, _, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `WITH "recent" AS (SELECT * FROM "t") SELECT * FROM "recent"`, sql)
}

func TestSelect_ForUpdateLocking(t *testing.T) {
	sel := ast.NewSelect(ast.From("t"), ast.AsteriskExpr{})
	sel.Locking = ast.LockForUpdate
	sql, _, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "t" FOR UPDATE`, sql)
}

func TestSelect_InSubquery(t *testing.T) {
	sub := ast.NewSelect(ast.From("banned"), builder.Col("user_id").Expr())
	sel := ast.NewSelect(ast.From("users"), ast.AsteriskExpr{})
	sel.Where = builder.Cond(builder.Col("id").InSelect(sub))

	sql, _, err := visitor.Visit(dialect.PostgreSQL{}, sel)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "users" WHERE "id" IN (SELECT "user_id" FROM "banned")`, sql)
}

func TestSelect_Raw(t *testing.T) {
	raw := &ast.Raw{Text: "SELECT 1 WHERE 1 = ?", Params: []ast.Expression{ast.ValueExpr{Value: value.Int(1)}}}
	sql, params, err := visitor.Visit(dialect.SQLite{}, raw)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1 WHERE 1 = ?", sql)
	require.Len(t, params, 1)
	n, _ := params[0].AsInt()
	assert.Equal(t, int64(1), n)
}

func TestSelect_RawRejectsNonLiteralParam(t *testing.T) {
	raw := &ast.Raw{Text: "SELECT ?", Params: []ast.Expression{builder.Col("x").Expr()}}
	_, _, err := visitor.Visit(dialect.SQLite{}, raw)
	assert.Error(t, err)
}
