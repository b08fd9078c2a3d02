package ast

// Select is a SELECT query. CTEs attached directly here apply to the
// statement as a whole; CTEs attached to a Table apply only within that
// table's scope (SPEC_FULL.md §3). Joins live on Table, not here, so a
// Select's FROM source already carries its full join chain.
type Select struct {
	CTEs    []CTE
	Table   *Table
	Columns []Expression
	Where   ConditionTree
	GroupBy []Expression
	Having  ConditionTree
	OrderBy []OrderByTerm
	Limit   *int64
	Offset  *int64
	Locking LockMode
}

func (*Select) queryNode() {}

// NewSelect builds a Select over the given table with the given projected
// columns.
func NewSelect(table Table, columns ...Expression) *Select {
	return &Select{Table: &table, Columns: columns}
}
