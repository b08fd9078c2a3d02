package pool_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlkit/pkg/ast"
	"sqlkit/pkg/connector"
	"sqlkit/pkg/pool"
)

type fakeConnector struct {
	name      string
	pingErr   error
	closeErr  error
	closed    bool
}

func (f *fakeConnector) Query(context.Context, ast.Query) (connector.Rows, error)   { return nil, nil }
func (f *fakeConnector) QueryRow(context.Context, ast.Query) connector.Row          { return nil }
func (f *fakeConnector) Exec(context.Context, ast.Query) (connector.Result, error)  { return nil, nil }
func (f *fakeConnector) Begin(context.Context) (connector.Transaction, error)       { return nil, nil }
func (f *fakeConnector) Ping(context.Context) error                                { return f.pingErr }
func (f *fakeConnector) Close() error {
	f.closed = true
	return f.closeErr
}

func TestPool_New_RejectsEmpty(t *testing.T) {
	_, err := pool.New(nil)
	assert.Error(t, err)
}

func TestPool_AcquireRoundRobins(t *testing.T) {
	a := &fakeConnector{name: "a"}
	b := &fakeConnector{name: "b"}
	p, err := pool.New([]connector.Connector{a, b})
	require.NoError(t, err)

	got1, err := p.Acquire(context.Background())
	require.NoError(t, err)
	got2, err := p.Acquire(context.Background())
	require.NoError(t, err)
	got3, err := p.Acquire(context.Background())
	require.NoError(t, err)

	assert.Same(t, connector.Connector(a), got1)
	assert.Same(t, connector.Connector(b), got2)
	assert.Same(t, connector.Connector(a), got3)
}

func TestPool_Size(t *testing.T) {
	p, err := pool.New([]connector.Connector{&fakeConnector{}, &fakeConnector{}, &fakeConnector{}})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Size())
}

func TestPool_PingReturnsFirstError(t *testing.T) {
	boom := errors.New("down")
	p, err := pool.New([]connector.Connector{&fakeConnector{}, &fakeConnector{pingErr: boom}})
	require.NoError(t, err)
	assert.ErrorIs(t, p.Ping(context.Background()), boom)
}

func TestPool_CloseClosesAllMembersAndRejectsFurtherAcquire(t *testing.T) {
	a := &fakeConnector{}
	b := &fakeConnector{}
	p, err := pool.New([]connector.Connector{a, b})
	require.NoError(t, err)

	require.NoError(t, p.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)

	_, err = p.Acquire(context.Background())
	assert.Error(t, err)
}

func TestPool_CloseReturnsFirstErrorButClosesAll(t *testing.T) {
	boom := errors.New("close failed")
	a := &fakeConnector{closeErr: boom}
	b := &fakeConnector{}
	p, err := pool.New([]connector.Connector{a, b})
	require.NoError(t, err)

	err = p.Close()
	assert.ErrorIs(t, err, boom)
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}
