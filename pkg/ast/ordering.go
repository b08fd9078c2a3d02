package ast

// OrderDirection is the sort direction of an ORDER BY term.
type OrderDirection int

const (
	Asc OrderDirection = iota
	Desc
)

// NullsOrder controls NULLS FIRST/LAST placement. NullsDefault emits
// neither clause, leaving the dialect's native placement in effect.
type NullsOrder int

const (
	NullsDefault NullsOrder = iota
	NullsFirst
	NullsLast
)

// OrderByTerm is one term of an ORDER BY list.
type OrderByTerm struct {
	Expr      Expression
	Direction OrderDirection
	Nulls     NullsOrder
}

// LockMode is a row-locking clause appended to a SELECT.
type LockMode int

const (
	LockNone LockMode = iota
	LockForUpdate
	LockForShare
)
