package ast

// Helper constructors for the function expressions named in SPEC_FULL.md
// §4.4. Each is a thin wrapper over FuncExpr; dialect-specific rendering
// (e.g. whether COALESCE needs a cast) is a visitor concern, not a
// construction-time one.

func Count(arg Expression) FuncExpr {
	return FuncExpr{Name: "COUNT", Args: []Expression{arg}}
}

func CountDistinct(arg Expression) FuncExpr {
	return FuncExpr{Name: "COUNT", Args: []Expression{arg}, Distinct: true}
}

func Sum(arg Expression) FuncExpr {
	return FuncExpr{Name: "SUM", Args: []Expression{arg}}
}

func Avg(arg Expression) FuncExpr {
	return FuncExpr{Name: "AVG", Args: []Expression{arg}}
}

func Min(arg Expression) FuncExpr {
	return FuncExpr{Name: "MIN", Args: []Expression{arg}}
}

func Max(arg Expression) FuncExpr {
	return FuncExpr{Name: "MAX", Args: []Expression{arg}}
}

// RowNumber builds a bare ROW_NUMBER() call. FuncExpr carries no window
// specification, so the visitor renders no OVER (...) clause for it.
func RowNumber() FuncExpr {
	return FuncExpr{Name: "ROW_NUMBER"}
}

func Lower(arg Expression) FuncExpr {
	return FuncExpr{Name: "LOWER", Args: []Expression{arg}}
}

func Upper(arg Expression) FuncExpr {
	return FuncExpr{Name: "UPPER", Args: []Expression{arg}}
}

func Coalesce(args ...Expression) FuncExpr {
	return FuncExpr{Name: "COALESCE", Args: args}
}
