package ast

// Delete is a DELETE query.
type Delete struct {
	Table     Table
	Where     ConditionTree
	Returning []Expression
}

func (*Delete) queryNode() {}

// NewDelete builds a Delete against table.
func NewDelete(table Table) *Delete {
	return &Delete{Table: table}
}
