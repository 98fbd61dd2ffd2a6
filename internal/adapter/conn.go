package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"db-shift/internal/dialect"

	mssql "github.com/microsoft/go-mssqldb"
)

// Server-side login failure; see sysmessages error 18456.
const loginFailedNumber = 18456

// Params is the configuration surface consumed, not owned, by this layer:
// connection parameters plus the session options applied once per new
// connection.
type Params struct {
	Host     string
	Database string
	User     string
	Password string
	Driver   string

	// Session options, applied via plain SET statements at connection
	// open. Zero values leave the server defaults untouched.
	Language  string
	DateFirst int
	WeekStart int
	TimeZone  string
	UseTZ     bool
}

// Session resolves the configured options into the translator-facing
// session state.
func (p Params) Session() dialect.Session {
	sess := dialect.DefaultSession()
	if p.Language != "" {
		sess.Language = p.Language
	}
	if p.DateFirst != 0 {
		sess.DateFirst = p.DateFirst
	}
	if p.WeekStart != 0 {
		sess.WeekStart = p.WeekStart
	}
	if p.TimeZone != "" {
		sess.TimeZone = p.TimeZone
	}
	sess.UseTZ = p.UseTZ
	return sess
}

// Conn pins exactly one driver session. The identity-insert toggle and the
// autocommit toggle are session-scoped, so callers must serialize access to
// one Conn; concurrent use from multiple goroutines is not supported.
type Conn struct {
	db     *sql.DB
	sc     *sql.Conn
	d      dialect.Dialect
	sess   dialect.Session
	logger *slog.Logger
	tx     *sql.Tx
	ownsDB bool
}

// Connect opens a pooled handle from the assembled connection string, pins
// one session and applies the configured session options.
func Connect(ctx context.Context, p Params, logger *slog.Logger) (*Conn, error) {
	d, err := dialect.Get(p.Driver)
	if err != nil {
		return nil, err
	}
	dsn := d.DSN(dialect.ConnParams{
		Host:     p.Host,
		Database: p.Database,
		User:     p.User,
		Password: p.Password,
	})
	db, err := sql.Open(p.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	c, err := Wrap(ctx, db, d, p.Session(), logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	c.ownsDB = true
	if err := c.initSessionState(ctx, p); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Wrap pins a session on an existing pool. The pool stays owned by the
// caller.
func Wrap(ctx context.Context, db *sql.DB, d dialect.Dialect, sess dialect.Session, logger *slog.Logger) (*Conn, error) {
	if logger == nil {
		logger = slog.Default()
	}
	sc, err := db.Conn(ctx)
	if err != nil {
		return nil, translateConnectError(err)
	}
	return &Conn{db: db, sc: sc, d: d, sess: sess, logger: logger}, nil
}

// translateConnectError converts a recognized driver authentication
// failure into the generic connectivity error; anything else propagates
// unchanged.
func translateConnectError(err error) error {
	var me mssql.Error
	if errors.As(err, &me) && me.Number == loginFailedNumber {
		return fmt.Errorf("%w: %v", ErrCouldNotConnect, err)
	}
	return err
}

// initSessionState applies the configured options with plain SET
// statements, once, on the pinned session.
func (c *Conn) initSessionState(ctx context.Context, p Params) error {
	if c.d.Vendor() != "sqlserver" {
		return nil
	}
	if p.Language != "" {
		if _, err := c.queryer().ExecContext(ctx, fmt.Sprintf("SET LANGUAGE %s", p.Language)); err != nil {
			return fmt.Errorf("failed to set LANGUAGE: %w", err)
		}
	}
	if p.DateFirst != 0 {
		if _, err := c.queryer().ExecContext(ctx, fmt.Sprintf("SET DATEFIRST %d", p.DateFirst)); err != nil {
			return fmt.Errorf("failed to set DATEFIRST: %w", err)
		}
	}
	return nil
}

// Dialect exposes the connection's dialect to translator callers.
func (c *Conn) Dialect() dialect.Dialect { return c.d }

// Session exposes the connection-scoped settings translators depend on.
func (c *Conn) Session() dialect.Session { return c.sess }

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

func (c *Conn) queryer() queryer {
	if c.tx != nil {
		return c.tx
	}
	return c.sc
}

// SetAutocommit toggles between per-statement commits and one explicit
// transaction held on the pinned session. Turning autocommit back on
// commits the open transaction.
func (c *Conn) SetAutocommit(ctx context.Context, on bool) error {
	if on {
		if c.tx == nil {
			return nil
		}
		err := c.tx.Commit()
		c.tx = nil
		return err
	}
	if c.tx != nil {
		return nil
	}
	tx, err := c.sc.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	c.tx = tx
	return nil
}

// Commit commits the explicit transaction, staying in manual-commit mode.
func (c *Conn) Commit(ctx context.Context) error {
	if c.tx == nil {
		return nil
	}
	err := c.tx.Commit()
	c.tx = nil
	if err != nil {
		return err
	}
	return c.SetAutocommit(ctx, false)
}

// Rollback rolls back the explicit transaction, staying in manual-commit
// mode.
func (c *Conn) Rollback(ctx context.Context) error {
	if c.tx == nil {
		return nil
	}
	err := c.tx.Rollback()
	c.tx = nil
	if err != nil {
		return err
	}
	return c.SetAutocommit(ctx, false)
}

func (c *Conn) mssql() (*dialect.MSSQLDialect, error) {
	ms, ok := c.d.(*dialect.MSSQLDialect)
	if !ok {
		return nil, fmt.Errorf("savepoints on %s: %w", c.d.Vendor(), dialect.ErrNotSupported)
	}
	return ms, nil
}

// SavepointCreate marks a named point in the current transaction. A
// savepoint must be released or rolled back before the enclosing
// transaction ends.
func (c *Conn) SavepointCreate(ctx context.Context, sid string) error {
	ms, err := c.mssql()
	if err != nil {
		return err
	}
	_, err = c.queryer().ExecContext(ctx, ms.SavepointCreateSQL(sid))
	return err
}

// SavepointCommit releases a savepoint. On this dialect that is the same
// operation as rolling back to it; there is no partial commit of a
// sub-transaction.
func (c *Conn) SavepointCommit(ctx context.Context, sid string) error {
	ms, err := c.mssql()
	if err != nil {
		return err
	}
	_, err = c.queryer().ExecContext(ctx, ms.SavepointCommitSQL(sid))
	return err
}

// SavepointRollback rolls the transaction back to a savepoint.
func (c *Conn) SavepointRollback(ctx context.Context, sid string) error {
	ms, err := c.mssql()
	if err != nil {
		return err
	}
	_, err = c.queryer().ExecContext(ctx, ms.SavepointRollbackSQL(sid))
	return err
}

// LastInsertID always fails loudly: this dialect's output-clause design
// makes the session-global identity lookup redundant and unreliable.
func (c *Conn) LastInsertID(table, pk string) (int64, error) {
	return 0, ErrLastInsertID
}

// IsUsable probes the session. Driver errors raised during the probe are
// converted to an unhealthy signal; any other error type is not swallowed.
func (c *Conn) IsUsable(ctx context.Context) (bool, error) {
	cur := c.Cursor()
	defer cur.Close()
	if err := cur.Execute(ctx, "SELECT 1"); err != nil {
		if errors.Is(err, ErrBadTemplate) || errors.Is(err, ErrCursorClosed) {
			return false, err
		}
		return false, nil
	}
	if _, err := cur.FetchAll(); err != nil {
		return false, nil
	}
	return true, nil
}

// Close releases the pinned session, rolling back any explicit
// transaction still open.
func (c *Conn) Close() error {
	if c.tx != nil {
		if err := c.tx.Rollback(); err != nil {
			c.logger.Debug("rollback on close failed", "error", err)
		}
		c.tx = nil
	}
	var err error
	if c.sc != nil {
		c.logger.Debug("closing pinned session")
		err = c.sc.Close()
		c.sc = nil
	}
	if c.ownsDB && c.db != nil {
		if cerr := c.db.Close(); err == nil {
			err = cerr
		}
		c.db = nil
	}
	return err
}
