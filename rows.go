package speql

import (
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
)

// Row is a single database record, mapping column names to values.
// A Row is constructed once per fetched record and never mutated
// afterwards. The same type is used as builder input for InsertInto
// and Update.
type Row map[string]interface{}

// String returns the named column as a string. MySQL drivers commonly
// return text columns as []byte; both forms are accepted.
func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Int returns the named column as an int64, parsing textual values if
// necessary. Missing or unconvertible values return zero.
func (r Row) Int(col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case uint64:
		return int64(v)
	case float64:
		return int64(v)
	case []byte:
		n, _ := strconv.ParseInt(string(v), 10, 64)
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}

// Float returns the named column as a float64, parsing textual values
// if necessary. Missing or unconvertible values return zero.
func (r Row) Float(col string) float64 {
	switch v := r[col].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case []byte:
		f, _ := strconv.ParseFloat(string(v), 64)
		return f
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

// Bool returns the named column as a bool. Numeric values are true
// when non-zero, matching MySQL's boolean representation.
func (r Row) Bool(col string) bool {
	switch v := r[col].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case int:
		return v != 0
	case []byte:
		b, _ := strconv.ParseBool(string(v))
		return b
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

// Bytes returns the named column as a raw byte string.
func (r Row) Bytes(col string) []byte {
	switch v := r[col].(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	case nil:
		return nil
	default:
		return []byte(fmt.Sprintf("%v", v))
	}
}

// Null reports whether the named column is present and NULL.
func (r Row) Null(col string) bool {
	v, ok := r[col]
	return ok && v == nil
}

type resultMode int

const (
	resultNone resultMode = iota
	resultEager
	resultDeferred
	resultOnDemand
)

// ResultSet wraps the rows returned by a statement under one of three
// materialization strategies. Eager result sets are fully in memory
// when Exec returns. Deferred result sets hold the cursor open and
// build each Row as it is consumed; they are single-pass. On-demand
// result sets re-issue the underlying query each time consumption
// starts: on the first call to Next, and again after Close.
//
// Rows are consumed in database return order:
//
//	for rs.Next() {
//		row := rs.Row()
//		...
//	}
//	if rs.Err() != nil {
//		...
//	}
//
// Statements that return no rows produce a ResultSet whose Next
// immediately reports false and whose Affected and LastInsertID
// expose the driver's counters.
type ResultSet struct {
	mode    resultMode
	rows    []Row
	cursor  *sqlx.Rows
	run     func() (*sqlx.Rows, error)
	pos     int
	current Row
	err     error
	done    bool

	affected int64
	lastID   int64
}

// Next advances to the next row, reporting whether one is available.
// Once Next has returned false, Err must be checked to distinguish
// normal exhaustion from a fetch failure.
func (rs *ResultSet) Next() bool {
	if rs.err != nil {
		return false
	}

	switch rs.mode {
	case resultEager:
		if rs.done || rs.pos >= len(rs.rows) {
			rs.current = nil
			return false
		}
		rs.current = rs.rows[rs.pos]
		rs.pos++
		return true
	case resultDeferred:
		if rs.done || rs.cursor == nil {
			return false
		}
		return rs.advance()
	case resultOnDemand:
		if rs.done {
			return false
		}
		if rs.cursor == nil {
			cursor, err := rs.run()
			if err != nil {
				rs.err = err
				return false
			}
			rs.cursor = cursor
		}
		return rs.advance()
	default:
		return false
	}
}

func (rs *ResultSet) advance() bool {
	if rs.cursor.Next() {
		row := make(Row)
		if err := rs.cursor.MapScan(row); err != nil {
			rs.fail(err)
			return false
		}
		rs.current = row
		return true
	}

	if err := rs.cursor.Err(); err != nil {
		rs.fail(err)
		return false
	}

	rs.cursor.Close()
	rs.cursor = nil
	rs.current = nil
	rs.done = true

	return false
}

func (rs *ResultSet) fail(err error) {
	rs.err = &FetchError{Err: err}
	rs.cursor.Close()
	rs.cursor = nil
	rs.current = nil
	rs.done = true
}

// Row returns the row Next advanced to, or nil when iteration is not
// positioned on a row.
func (rs *ResultSet) Row() Row {
	return rs.current
}

// Err returns the error that terminated iteration, if any.
func (rs *ResultSet) Err() error {
	return rs.err
}

// All consumes the remainder of the result set and returns its rows.
func (rs *ResultSet) All() ([]Row, error) {
	var rows []Row
	for rs.Next() {
		rows = append(rows, rs.Row())
	}
	if rs.err != nil {
		return nil, rs.err
	}
	return rows, nil
}

// Close releases the underlying cursor, if one is open. Closing an
// on-demand result set re-arms it: the next call to Next re-issues
// the query. Closing any other result set ends it.
func (rs *ResultSet) Close() error {
	var err error
	if rs.cursor != nil {
		err = rs.cursor.Close()
		rs.cursor = nil
	}
	rs.current = nil

	if rs.mode == resultOnDemand {
		rs.done = false
		rs.err = nil
	} else {
		rs.done = true
	}

	return err
}

// Affected returns the number of rows affected by a non-row
// statement, as reported by the driver.
func (rs *ResultSet) Affected() int64 {
	return rs.affected
}

// LastInsertID returns the driver's last-insert-id counter for a
// non-row statement.
func (rs *ResultSet) LastInsertID() int64 {
	return rs.lastID
}
