package adapter

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"db-shift/internal/dialect"
)

func newTestConn(t *testing.T) (*Conn, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	conn, err := Wrap(context.Background(), db, &dialect.MSSQLDialect{}, dialect.DefaultSession(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
		db.Close()
	})
	return conn, mock
}

func TestCursorExecuteRewritesTemplate(t *testing.T) {
	conn, mock := newTestConn(t)

	mock.ExpectQuery("SELECT name FROM users WHERE id = @p1").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("ada"))

	cur := conn.Cursor()
	defer cur.Close()
	require.NoError(t, cur.Execute(context.Background(), "SELECT name FROM users WHERE id = %s", 7))

	cols, err := cur.Columns()
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, cols)

	row, err := cur.FetchOne()
	require.NoError(t, err)
	assert.Equal(t, Row{"ada"}, row)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCursorFetchOneExhaustion(t *testing.T) {
	conn, mock := newTestConn(t)

	mock.ExpectQuery("SELECT id FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	cur := conn.Cursor()
	defer cur.Close()
	require.NoError(t, cur.Execute(context.Background(), "SELECT id FROM users"))

	row, err := cur.FetchOne()
	require.NoError(t, err)
	assert.Equal(t, Row{int64(1)}, row)

	// Exhausted rowset: nil row, nil error.
	row, err = cur.FetchOne()
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestCursorFetchManyAndAll(t *testing.T) {
	conn, mock := newTestConn(t)

	rows := sqlmock.NewRows([]string{"id"}).
		AddRow(int64(1)).AddRow(int64(2)).AddRow(int64(3))
	mock.ExpectQuery("SELECT id FROM users").WillReturnRows(rows)

	cur := conn.Cursor()
	defer cur.Close()
	require.NoError(t, cur.Execute(context.Background(), "SELECT id FROM users"))

	got, err := cur.FetchMany(2)
	require.NoError(t, err)
	assert.Equal(t, []Row{{int64(1)}, {int64(2)}}, got)

	got, err = cur.FetchAll()
	require.NoError(t, err)
	assert.Equal(t, []Row{{int64(3)}}, got)

	// Drained completely: nil slice, nil error.
	got, err = cur.FetchAll()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCursorFetchBeforeExecute(t *testing.T) {
	conn, _ := newTestConn(t)

	cur := conn.Cursor()
	defer cur.Close()
	_, err := cur.FetchOne()
	assert.ErrorIs(t, err, ErrNoResultSet)
	_, err = cur.FetchAll()
	assert.ErrorIs(t, err, ErrNoResultSet)
}

func TestCursorCloseIsOneWay(t *testing.T) {
	conn, mock := newTestConn(t)

	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(int64(1)))

	cur := conn.Cursor()
	require.NoError(t, cur.Execute(context.Background(), "SELECT 1"))
	require.NoError(t, cur.Close())
	require.NoError(t, cur.Close())

	_, err := cur.FetchOne()
	assert.ErrorIs(t, err, ErrCursorClosed)
	err = cur.Execute(context.Background(), "SELECT 1")
	assert.ErrorIs(t, err, ErrCursorClosed)
}

func TestCursorEmptyStatementIsNoOp(t *testing.T) {
	conn, mock := newTestConn(t)

	cur := conn.Cursor()
	defer cur.Close()
	require.NoError(t, cur.Execute(context.Background(), ""))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCursorExecuteMany(t *testing.T) {
	conn, mock := newTestConn(t)

	mock.ExpectPrepare("INSERT INTO users (name) VALUES (@p1)")
	mock.ExpectExec("INSERT INTO users (name) VALUES (@p1)").
		WithArgs("ada").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users (name) VALUES (@p1)").
		WithArgs("lin").WillReturnResult(sqlmock.NewResult(0, 1))

	cur := conn.Cursor()
	defer cur.Close()
	err := cur.ExecuteMany(context.Background(), "INSERT INTO users (name) VALUES (%s)",
		[][]any{{"ada"}, {"lin"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), cur.RowsAffected())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCursorBadTemplate(t *testing.T) {
	conn, _ := newTestConn(t)

	cur := conn.Cursor()
	defer cur.Close()
	err := cur.Execute(context.Background(), "SELECT %d", 1)
	assert.ErrorIs(t, err, ErrBadTemplate)
}

func TestIsUsable(t *testing.T) {
	conn, mock := newTestConn(t)

	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(int64(1)))
	ok, err := conn.IsUsable(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery("SELECT 1").WillReturnError(assert.AnError)
	ok, err = conn.IsUsable(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLastInsertID(t *testing.T) {
	conn, _ := newTestConn(t)

	_, err := conn.LastInsertID("users", "id")
	assert.ErrorIs(t, err, ErrLastInsertID)
}
