package connector_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlkit/pkg/ast"
	"sqlkit/pkg/builder"
	"sqlkit/pkg/connector"
	"sqlkit/pkg/dialect"
	"sqlkit/pkg/value"
)

func identityMapErr(err error) error { return err }

func newMockConnector(t *testing.T) (*connector.ConnBase, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return connector.NewConnBase(db, dialect.PostgreSQL{}, identityMapErr, 0, 0), mock
}

func TestConnBase_Query(t *testing.T) {
	c, mock := newMockConnector(t)
	sel := ast.NewSelect(ast.From("widgets"), ast.Column{Name: "id"}, ast.Column{Name: "name"})
	sel.Where = builder.Cond(builder.Col("id").Equals(1))

	rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "gizmo")
	mock.ExpectQuery(`SELECT "id", "name" FROM "widgets" WHERE "id" = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	got, err := c.Query(context.Background(), sel)
	require.NoError(t, err)
	defer got.Close()

	require.True(t, got.Next())
	var id int64
	var name string
	require.NoError(t, got.Scan(&id, &name))
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "gizmo", name)
	assert.False(t, got.Next())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnBase_Exec(t *testing.T) {
	c, mock := newMockConnector(t)
	ins := ast.NewInsert(ast.From("widgets"), ast.Column{Name: "name"})
	ins.Rows = []ast.Row{{Exprs: []ast.Expression{ast.ValueExpr{Value: value.Text("gizmo")}}}}

	mock.ExpectExec(`INSERT INTO "widgets" \("name"\) VALUES \(\$1\)`).
		WithArgs("gizmo").
		WillReturnResult(sqlmock.NewResult(42, 1))

	res, err := c.Exec(context.Background(), ins)
	require.NoError(t, err)
	id, err := res.LastInsertID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	affected, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnBase_ExecMapsDriverError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sentinel := errors.New("duplicate key")
	mapped := errors.New("mapped: duplicate key")
	c := connector.NewConnBase(db, dialect.PostgreSQL{}, func(err error) error {
		if err == nil {
			return nil
		}
		return mapped
	}, 0, 0)

	ins := ast.NewInsert(ast.From("widgets"), ast.Column{Name: "name"})
	ins.Rows = []ast.Row{{Exprs: []ast.Expression{ast.ValueExpr{Value: value.Text("dup")}}}}

	mock.ExpectExec(`INSERT INTO "widgets"`).WillReturnError(sentinel)

	_, err = c.Exec(context.Background(), ins)
	assert.Equal(t, mapped, err)
}

func TestConnBase_Transaction_CommitAndRollback(t *testing.T) {
	c, mock := newMockConnector(t)

	mock.ExpectBegin()
	upd := ast.NewUpdate(ast.From("widgets"))
	upd.Set = []ast.Assignment{{Column: ast.Column{Name: "name"}, Value: ast.ValueExpr{Value: value.Text("x")}}}
	mock.ExpectExec(`UPDATE "widgets" SET "name" = \$1`).WithArgs("x").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := c.Begin(context.Background())
	require.NoError(t, err)
	_, err = tx.Exec(context.Background(), upd)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectBegin()
	mock.ExpectRollback()
	tx2, err := c.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx2.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnBase_Ping(t *testing.T) {
	c, mock := newMockConnector(t)
	mock.ExpectPing()
	assert.NoError(t, c.Ping(context.Background()))
}

func TestConnBase_QueryTimesOut(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sel := ast.NewSelect(ast.From("widgets"), ast.Column{Name: "id"})
	mock.ExpectQuery(`SELECT "id" FROM "widgets"`).
		WillDelayFor(50 * time.Millisecond).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	mapErrCalls := 0
	mapErr := func(err error) error {
		if err != nil {
			mapErrCalls++
		}
		return err
	}
	c := connector.NewConnBase(db, dialect.PostgreSQL{}, mapErr, time.Millisecond, 0)

	_, err = c.Query(context.Background(), sel)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, mapErrCalls)
}

func TestConnBase_QueryRow(t *testing.T) {
	c, mock := newMockConnector(t)
	sel := ast.NewSelect(ast.From("widgets"), ast.Column{Name: "id"})
	sel.Where = builder.Cond(builder.Col("id").Equals(1))

	mock.ExpectQuery(`SELECT "id" FROM "widgets" WHERE "id" = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	var id int64
	err := c.QueryRow(context.Background(), sel).Scan(&id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}
