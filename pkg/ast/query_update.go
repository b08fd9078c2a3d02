package ast

// Update is an UPDATE query.
type Update struct {
	Table     Table
	Set       []Assignment
	Where     ConditionTree
	Returning []Expression
}

func (*Update) queryNode() {}

// NewUpdate builds an Update against table.
func NewUpdate(table Table) *Update {
	return &Update{Table: table}
}
