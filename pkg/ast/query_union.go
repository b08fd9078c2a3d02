package ast

// Union combines an ordered list of Selects (or nested Unions) with
// UNION/UNION ALL. All combines without deduplicating (UNION ALL);
// otherwise the dialect emits plain UNION between every adjacent pair.
type Union struct {
	Selects []Query
	All     bool
}

func (*Union) queryNode() {}

// NewUnion builds a Union of two or more terms, rendered left to right in
// the order given. A term is typically a *Select, but a *Union is
// accepted too, so a caller can nest "(A UNION B) UNION C" explicitly
// rather than being limited to a flat chain.
func NewUnion(selects []Query, all bool) *Union {
	return &Union{Selects: selects, All: all}
}

// Raw is an escape hatch for a literal SQL fragment with positional
// parameters, bypassing the AST entirely. The visitor emits Text verbatim
// and appends Params to the bound-parameter list in order (SPEC_FULL.md
// §4.7). Text is never rewritten or validated; every Param must be an
// ast.ValueExpr, and any other expression fails the visit.
type Raw struct {
	Text   string
	Params []Expression
}

func (*Raw) queryNode() {}
