package ast

// Column is a (possibly qualified) column reference. It implements
// Expression so it can be used directly wherever a value expression is
// expected, and also appears unwrapped in column lists, SET clauses and
// ORDER/GROUP BY terms.
type Column struct {
	Database string // optional database/schema qualifier
	Table    string // optional table qualifier
	Name     string
	Default  Expression // optional default, used by schema-aware callers
}

func (Column) exprNode() {}

// Row is an ordered sequence of expressions: a composite LHS for `(a,b) IN
// (...)`, or one VALUES row in an Insert.
type Row struct {
	Exprs []Expression
}

// JoinType is the kind of table join.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
	FullJoin
	CrossJoin
)

// Join attaches a joined table to a FROM source.
type Join struct {
	Type  JoinType
	Table Table
	On    ConditionTree
}

// CTE is a named common table expression.
type CTE struct {
	Name  string
	Query *Select
}

// Table is a FROM/JOIN source: a named table, or a sub-SELECT, or a
// VALUES-row source, each optionally aliased and optionally carrying its
// own join chain and CTEs (SPEC_FULL.md §3).
type Table struct {
	Database string
	Name     string
	Alias    string

	Joins []Join
	CTEs  []CTE

	// Sub is set when the table is a derived table: FROM (SELECT ...) AS alias.
	Sub *Select

	// ValuesRows is set when the table is a VALUES(...) row source.
	ValuesRows []Row
}

// From builds an unaliased named-table source.
func From(name string) Table {
	return Table{Name: name}
}

// FromQualified builds a database-qualified named-table source.
func FromQualified(database, name string) Table {
	return Table{Database: database, Name: name}
}

// FromSelect builds a derived-table source from a sub-SELECT.
func FromSelect(sel *Select, alias string) Table {
	return Table{Sub: sel, Alias: alias}
}

// As returns a copy of t aliased as alias.
func (t Table) As(alias string) Table {
	t.Alias = alias
	return t
}

// Join appends a join clause to t and returns the updated table.
func (t Table) Join(kind JoinType, joined Table, on ConditionTree) Table {
	t.Joins = append(t.Joins, Join{Type: kind, Table: joined, On: on})
	return t
}

// With appends a CTE to t's CTE list.
func (t Table) With(name string, query *Select) Table {
	t.CTEs = append(t.CTEs, CTE{Name: name, Query: query})
	return t
}
