package speql

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// ErrNestedTransaction is returned by Exec when a Begin statement is
// executed while a transaction is already open. This layer does not
// support nested transactions; commit or roll back first.
var ErrNestedTransaction = errors.New("speql: transaction already in progress")

// BuildError reports a statement that could not be constructed from
// its inputs (mismatched insert rows, invalid limit or offset). It is
// always returned before any SQL is produced or sent.
type BuildError struct {
	Msg string
}

func (e *BuildError) Error() string {
	return "speql: " + e.Msg
}

func buildErrorf(format string, args ...interface{}) *BuildError {
	return &BuildError{Msg: fmt.Sprintf(format, args...)}
}

// ExecError reports a statement the database rejected. It wraps the
// driver's diagnostic; Code carries the server error code when the
// MySQL driver supplies one, and is zero otherwise.
type ExecError struct {
	SQL  string
	Code uint16
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("speql: executing %q: %s", e.SQL, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

func execError(sql string, err error) *ExecError {
	e := &ExecError{SQL: sql, Err: err}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		e.Code = myErr.Number
	}

	return e
}

// FetchError reports a failure while consuming a result set. A fetch
// failure terminates the iteration; it never silently truncates the
// sequence.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return "speql: fetching row: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
