package ast

// CompareOp enumerates every comparison operator in the superset merge of
// the source's two incompatible Compare revisions (SPEC_FULL.md §9):
// Equals/NotEquals/Less/LessOrEqual/Greater/GreaterOrEqual, In/NotIn,
// Like/NotLike, BeginsWith/NotBeginsWith, EndsInto/NotEndsInto,
// IsNull/IsNotNull, Between/NotBetween.
type CompareOp int

const (
	CmpEquals CompareOp = iota
	CmpNotEquals
	CmpLess
	CmpLessOrEqual
	CmpGreater
	CmpGreaterOrEqual
	CmpIn
	CmpNotIn
	CmpLike
	CmpNotLike
	CmpBeginsWith
	CmpNotBeginsWith
	CmpEndsInto
	CmpNotEndsInto
	CmpIsNull
	CmpIsNotNull
	CmpBetween
	CmpNotBetween
)

// Compare is a single comparison. Which fields are populated depends on Op:
//
//   - Equals..GreaterOrEqual, Like family: Left, Right
//   - In, NotIn: Left plus exactly one of Values or Sub
//   - IsNull, IsNotNull: Left only
//   - Between, NotBetween: Left, Low, High
//
// For Like/BeginsWith/EndsInto (and their Not forms) Right carries the raw
// pattern substring as a ValueExpr; the visitor — not this type — wraps it
// with the dialect's `%` bracketing (SPEC_FULL.md §4.3).
type Compare struct {
	Op     CompareOp
	Left   Expression
	Right  Expression
	Low    Expression
	High   Expression
	Values []Expression
	Sub    *Select
}

func (Compare) exprNode() {}
