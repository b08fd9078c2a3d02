package visitor

import "sqlkit/pkg/ast"

// Dialect supplies every point at which SQLite, MySQL and PostgreSQL
// diverge (SPEC_FULL.md §4.3, §4.6). The Engine in engine.go drives the
// full traversal identically across dialects and calls out to these
// contract points only where the three disagree.
type Dialect interface {
	// Name identifies the dialect for error messages and logging.
	Name() string

	// QuoteIdent quotes a single identifier segment (not a dotted path).
	QuoteIdent(name string) string

	// Placeholder renders the bound-parameter marker for the n-th
	// parameter overall (1-based). SQLite and MySQL ignore n and always
	// return "?"; PostgreSQL returns "$n".
	Placeholder(n int) string

	// RenderLimitOffset writes a LIMIT/OFFSET clause (or the dialect's
	// equivalent) via e. SQLite writes a LIMIT -1 sentinel when only
	// Offset is set, and also when neither is set; MySQL writes its
	// maximum unsigned BIGINT as the LIMIT before a lone OFFSET;
	// PostgreSQL can express OFFSET alone.
	RenderLimitOffset(e *Engine, limit, offset *int64)

	// RenderBoolean renders a literal true/false for dialects without a
	// native boolean literal (MySQL renders 0/1).
	RenderBoolean(v bool) string

	// SupportsReturning reports whether RETURNING is valid on INSERT,
	// UPDATE and DELETE. MySQL does not support it.
	SupportsReturning() bool

	// RenderConflict writes the dialect's upsert clause via e. SQLite and
	// PostgreSQL share ON CONFLICT; MySQL uses ON DUPLICATE KEY UPDATE and
	// has no conflict target, so it reads clause.Target only as the no-op
	// column for ConflictDoNothing when clause.Updates is empty.
	RenderConflict(e *Engine, clause *ast.ConflictClause)
}
