// Package pool implements the outer connection pool described in
// SPEC_FULL.md §4.11: a fixed set of connector.Connector
// members, checked out round-robin and returned by the caller, generalized
// from the axfor-aproxy proxy's internal/pool.Pool (a pgxpool.Pool wrapper
// with an optional session-affinity map of dedicated *pgx.Conn). This
// package drops the PostgreSQL-specific session-affinity and Simple Query
// Protocol configuration entirely — those are pgconn.Open concerns now —
// and generalizes the wrapped handle from *pgx.Conn to connector.Connector
// so the same pool shape works over any of the three dialects.
package pool

import (
	"context"
	"fmt"
	"sync"

	"sqlkit/pkg/connector"
)

// Pool is a fixed-size round-robin set of Connectors opened against the
// same target. It does not itself open connections — callers supply an
// already-open Connector per slot via New, keeping this package free of
// any per-dialect DSN knowledge.
type Pool struct {
	members []connector.Connector
	mu      sync.Mutex
	next    int
	closed  bool
}

// New wraps members as a round-robin Pool. len(members) must be at least
// 1.
func New(members []connector.Connector) (*Pool, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("pool: at least one member connector is required")
	}
	return &Pool{members: members}, nil
}

// Acquire returns the next member in round-robin order. The returned
// Connector must not be closed by the caller; call Release (a no-op
// placeholder today, kept so callers can move to per-checkout health
// tracking later without an API break) when done.
func (p *Pool) Acquire(ctx context.Context) (connector.Connector, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, fmt.Errorf("pool: closed")
	}
	m := p.members[p.next]
	p.next = (p.next + 1) % len(p.members)
	return m, ctx.Err()
}

// Release is currently a no-op: members are shared, not exclusively
// checked out. It exists so call sites already read Acquire/Release in
// pairs, matching the proxy's AcquireForSession/ReleaseForSession shape.
func (p *Pool) Release(connector.Connector) {}

// Size reports the number of pooled members.
func (p *Pool) Size() int {
	return len(p.members)
}

// Ping pings every member and returns the first error encountered, if
// any.
func (p *Pool) Ping(ctx context.Context) error {
	for i, m := range p.members {
		if err := m.Ping(ctx); err != nil {
			return fmt.Errorf("pool: member %d: %w", i, err)
		}
	}
	return nil
}

// Close closes every member. It collects and returns the first error, but
// always attempts to close every member regardless of earlier failures.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true

	var firstErr error
	for _, m := range p.members {
		if err := m.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
