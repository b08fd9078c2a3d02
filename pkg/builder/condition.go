package builder

import "sqlkit/pkg/ast"

// Cond wraps any Compare (or other Expression-like boolean node) as a
// ConditionTree leaf, the entry point into the Conjunctive trait.
func Cond(e ast.Expression) ast.ConditionTree {
	return ast.Single(e)
}

// And, Or and Not round out the Conjunctive trait from SPEC_FULL.md §4.2.
// They are free functions rather than methods because Go cannot attach
// methods to the ast.ConditionTree value and a Compare simultaneously
// without an interface wrapper; taking ConditionTree arguments directly
// lets callers write And(Cond(a), Cond(b)) or chain And(existing,
// Cond(more)) identically.
func And(l, r ast.ConditionTree) ast.ConditionTree { return ast.And(l, r) }
func Or(l, r ast.ConditionTree) ast.ConditionTree  { return ast.Or(l, r) }
func Not(c ast.ConditionTree) ast.ConditionTree    { return ast.Not(c) }

// AndAll folds a variadic list of conditions into one conjunction,
// skipping empty ones, which makes building up an optional filter list
// (one term appended per active query parameter) a simple loop instead
// of repeated nil-checking.
func AndAll(conds ...ast.ConditionTree) ast.ConditionTree {
	result := ast.NoCondition()
	for _, c := range conds {
		result = ast.And(result, c)
	}
	return result
}

// OrAll is AndAll's disjunctive counterpart.
func OrAll(conds ...ast.ConditionTree) ast.ConditionTree {
	result := ast.NoCondition()
	for _, c := range conds {
		result = ast.Or(result, c)
	}
	return result
}
