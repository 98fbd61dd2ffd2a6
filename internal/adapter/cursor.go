package adapter

import (
	"context"
	"fmt"
)

// Row is the canonical ordered-field tuple every fetch returns, field
// order matching the originating column order. Rows are built fresh per
// fetch and never mutated afterwards; ownership transfers to the caller.
type Row []any

// Cursor wraps one live rowset on the pinned session. It has two states,
// open and closed; closing is one-way and idempotent, and every fetch or
// execute on a closed cursor is a usage error rather than a silent no-op.
type Cursor struct {
	conn         *Conn
	rows         rowset
	cols         []string
	closed       bool
	rowsAffected int64
}

// rowset is the slice of *sql.Rows the cursor needs; narrowed for tests.
type rowset interface {
	Next() bool
	Scan(dest ...any) error
	Columns() ([]string, error)
	Err() error
	Close() error
}

// Cursor opens a fresh cursor on the pinned session.
func (c *Conn) Cursor() *Cursor {
	return &Cursor{conn: c}
}

// Execute rewrites the template and runs it, holding the resulting rowset
// for the fetch calls. Statements without result sets yield an empty
// rowset.
func (cur *Cursor) Execute(ctx context.Context, query string, args ...any) error {
	if cur.closed {
		return ErrCursorClosed
	}
	if query == "" {
		return nil
	}
	q, err := formatSQL(query, len(args), cur.conn.d)
	if err != nil {
		return err
	}
	if cur.rows != nil {
		cur.rows.Close()
		cur.rows = nil
		cur.cols = nil
	}
	rows, err := cur.conn.queryer().QueryContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	cols, err := rows.Columns()
	if err != nil {
		rows.Close()
		return fmt.Errorf("execute: %w", err)
	}
	cur.rows = rows
	cur.cols = cols
	return nil
}

// ExecuteMany runs the template once per argument row on a single prepared
// statement. The template is rewritten using the arity of the first row
// only; uniform arity across rows is the caller's responsibility.
func (cur *Cursor) ExecuteMany(ctx context.Context, query string, argRows [][]any) error {
	if cur.closed {
		return ErrCursorClosed
	}
	if query == "" || len(argRows) == 0 {
		return nil
	}
	q, err := formatSQL(query, len(argRows[0]), cur.conn.d)
	if err != nil {
		return err
	}
	stmt, err := cur.conn.queryer().PrepareContext(ctx, q)
	if err != nil {
		return fmt.Errorf("executemany: %w", err)
	}
	defer stmt.Close()

	var affected int64
	for _, args := range argRows {
		res, err := stmt.ExecContext(ctx, args...)
		if err != nil {
			return fmt.Errorf("executemany: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil {
			affected += n
		}
	}
	cur.rowsAffected = affected
	return nil
}

// FetchOne returns the next row, or nil when the rowset is exhausted. The
// zero case passes through unwrapped so callers can distinguish "no rows"
// from an unknown shape.
func (cur *Cursor) FetchOne() (Row, error) {
	if cur.closed {
		return nil, ErrCursorClosed
	}
	if cur.rows == nil {
		return nil, ErrNoResultSet
	}
	if !cur.rows.Next() {
		if err := cur.rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return cur.scanRow()
}

// FetchMany returns up to n rows; nil when none remain.
func (cur *Cursor) FetchMany(n int) ([]Row, error) {
	if cur.closed {
		return nil, ErrCursorClosed
	}
	if cur.rows == nil {
		return nil, ErrNoResultSet
	}
	var out []Row
	for len(out) < n && cur.rows.Next() {
		row, err := cur.scanRow()
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := cur.rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchAll drains the rowset; nil when it was empty.
func (cur *Cursor) FetchAll() ([]Row, error) {
	if cur.closed {
		return nil, ErrCursorClosed
	}
	if cur.rows == nil {
		return nil, ErrNoResultSet
	}
	var out []Row
	for cur.rows.Next() {
		row, err := cur.scanRow()
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := cur.rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (cur *Cursor) scanRow() (Row, error) {
	row := make(Row, len(cur.cols))
	ptrs := make([]any, len(cur.cols))
	for i := range row {
		ptrs[i] = &row[i]
	}
	if err := cur.rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	return row, nil
}

// Columns is part of the enumerated delegation surface: the result shape
// of the last executed statement.
func (cur *Cursor) Columns() ([]string, error) {
	if cur.closed {
		return nil, ErrCursorClosed
	}
	return cur.cols, nil
}

// RowsAffected is part of the enumerated delegation surface: the row count
// accumulated by the last ExecuteMany.
func (cur *Cursor) RowsAffected() int64 {
	return cur.rowsAffected
}

// Close releases the rowset. Closing twice is a no-op.
func (cur *Cursor) Close() error {
	if cur.closed {
		return nil
	}
	cur.closed = true
	if cur.rows != nil {
		err := cur.rows.Close()
		cur.rows = nil
		return err
	}
	return nil
}
