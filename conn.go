package speql

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// FetchMode selects the connection-wide default materialization
// strategy for row-returning statements.
type FetchMode int

// FetchEager loads every row into memory before Exec returns.
// FetchDeferred keeps the cursor open and builds rows only as the
// result set is consumed; a deferred result set is single-pass.
const (
	FetchEager FetchMode = iota
	FetchDeferred
)

// Executor runs compiled statements. Conn and LazyConn implement it.
type Executor interface {
	Exec(stmt SQLStmt) (*ResultSet, error)
}

// Conn owns a single underlying database handle and the state of its
// transaction, which is either idle or in-transaction. A Conn is not
// safe for concurrent use; callers needing concurrency must use
// separate Conn instances.
type Conn struct {
	db    *sqlx.DB
	inTx  bool
	fetch FetchMode
}

// Connect opens a handle for the provided descriptor, restricts it to
// a single physical connection, and verifies it with a ping. Failure
// to connect is fatal: no Conn is returned.
func Connect(cfg *mysql.Config) (*Conn, error) {
	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("speql: opening connection: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("speql: connecting to %s: %w", cfg.Addr, err)
	}

	return &Conn{db: sqlx.NewDb(db, "mysql")}, nil
}

// New creates a Conn from an existing sql.DB handle. It requires the
// name of the SQL driver in order to use the correct placeholders
// when generating SQL.
func New(db *sql.DB, driverName string) *Conn {
	return &Conn{db: sqlx.NewDb(db, driverName)}
}

// SetFetchMode sets the connection-wide default materialization mode
// for row-returning statements. Statements built with OnDemand ignore
// the default.
func (c *Conn) SetFetchMode(mode FetchMode) {
	c.fetch = mode
}

// InTransaction reports whether a transaction is currently open on
// the connection.
func (c *Conn) InTransaction() bool {
	return c.inTx
}

// Close closes the underlying handle.
func (c *Conn) Close() error {
	return c.db.Close()
}

// Exec executes a statement and returns its results. Select
// statements are routed through Query; everything else runs through
// the driver's exec path and returns a row-less ResultSet carrying
// the affected-row and last-insert-id counters.
//
// Begin while a transaction is already open fails with
// ErrNestedTransaction; this layer does not defer nesting to the
// server. Commit and Rollback always reset the state flag. A failed
// statement inside a transaction is surfaced but the transaction is
// left open; rolling back is the caller's responsibility.
func (c *Conn) Exec(stmt SQLStmt) (*ResultSet, error) {
	if _, ok := stmt.(SelectStmt); ok {
		return c.Query(stmt)
	}

	if _, ok := stmt.(BeginStmt); ok && c.inTx {
		return nil, ErrNestedTransaction
	}

	asSQL, binds := stmt.ToSQL()
	asSQL = c.db.Rebind(asSQL)

	res, err := c.db.Exec(asSQL, bindings(binds)...)
	if err != nil {
		return nil, execError(asSQL, err)
	}

	switch stmt.(type) {
	case BeginStmt:
		c.inTx = true
	case CommitStmt, RollbackStmt:
		c.inTx = false
	}

	rs := &ResultSet{mode: resultNone}
	rs.affected, _ = res.RowsAffected()
	rs.lastID, _ = res.LastInsertId()

	return rs, nil
}

// Query executes a statement through the row-returning path. Exec
// already routes Select statements here; calling Query directly is
// needed only for Raw statements that return rows.
func (c *Conn) Query(stmt SQLStmt) (*ResultSet, error) {
	onDemand := false
	if sel, ok := stmt.(SelectStmt); ok {
		if sel.err != nil {
			return nil, sel.err
		}
		onDemand = sel.onDemand
	}

	asSQL, binds := stmt.ToSQL()
	asSQL = c.db.Rebind(asSQL)
	args := bindings(binds)

	run := func() (*sqlx.Rows, error) {
		rows, err := c.db.Queryx(asSQL, args...)
		if err != nil {
			return nil, execError(asSQL, err)
		}
		return rows, nil
	}

	if onDemand {
		return &ResultSet{mode: resultOnDemand, run: run}, nil
	}

	rows, err := run()
	if err != nil {
		return nil, err
	}

	if c.fetch == FetchDeferred {
		return &ResultSet{mode: resultDeferred, cursor: rows}, nil
	}

	return eagerResultSet(rows)
}

func eagerResultSet(rows *sqlx.Rows) (*ResultSet, error) {
	defer rows.Close()

	var all []Row
	for rows.Next() {
		row := make(Row)
		if err := rows.MapScan(row); err != nil {
			return nil, &FetchError{Err: err}
		}
		all = append(all, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &FetchError{Err: err}
	}

	return &ResultSet{mode: resultEager, rows: all}, nil
}

// Transactional runs the provided function inside a transaction. If
// the function returns an error, the transaction is rolled back and
// the error returned. Otherwise, the transaction is committed.
func (c *Conn) Transactional(f func(c *Conn) error) error {
	if _, err := c.Exec(Begin()); err != nil {
		return fmt.Errorf("speql: failed starting transaction: %w", err)
	}

	if err := f(c); err != nil {
		c.Exec(Rollback())
		return err
	}

	if _, err := c.Exec(Commit()); err != nil {
		return fmt.Errorf("speql: failed committing transaction: %w", err)
	}

	return nil
}

// LazyConn defers establishing the underlying connection until the
// first statement is executed. The factory is invoked at most once,
// even under concurrent first calls; its result, including an error,
// is cached for the lifetime of the LazyConn. Constructing a LazyConn
// never touches the database.
type LazyConn struct {
	factory func() (*Conn, error)
	once    sync.Once
	conn    *Conn
	err     error
}

// NewLazy creates a LazyConn around a factory producing the eventual
// Conn, typically a closure over Connect.
func NewLazy(factory func() (*Conn, error)) *LazyConn {
	return &LazyConn{factory: factory}
}

// Conn returns the underlying connection, establishing it on first
// use. A factory failure is sticky: every subsequent call returns the
// same error without re-dialing.
func (l *LazyConn) Conn() (*Conn, error) {
	l.once.Do(func() {
		l.conn, l.err = l.factory()
	})
	if l.err != nil {
		return nil, fmt.Errorf("speql: deferred connect: %w", l.err)
	}
	return l.conn, nil
}

// Exec establishes the underlying connection if needed, then
// delegates to it.
func (l *LazyConn) Exec(stmt SQLStmt) (*ResultSet, error) {
	conn, err := l.Conn()
	if err != nil {
		return nil, err
	}
	return conn.Exec(stmt)
}

// Query establishes the underlying connection if needed, then
// delegates to it.
func (l *LazyConn) Query(stmt SQLStmt) (*ResultSet, error) {
	conn, err := l.Conn()
	if err != nil {
		return nil, err
	}
	return conn.Query(stmt)
}

var (
	_ Executor = (*Conn)(nil)
	_ Executor = (*LazyConn)(nil)
)
