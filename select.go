package speql

import (
	"fmt"
	"strings"
)

// SelectStmt represents a SELECT statement. SelectStmt is a
// persistent value: every builder method returns a new statement and
// leaves its receiver untouched, so partially built statements can be
// shared and extended freely.
type SelectStmt struct {
	Table      string
	Cols       []string
	Filter     Condition
	Ordering   []OrderColumn
	IsDistinct bool

	limitTo    int64
	offsetFrom int64
	hasLimit   bool
	hasOffset  bool
	onDemand   bool
	err        error
}

// OrderColumn represents a column in an ORDER BY
// clause (with direction)
type OrderColumn struct {
	Prop string
	Desc bool
}

// ToSQL generates SQL for an OrderColumn
func (o OrderColumn) ToSQL() string {
	str := quoteProp(o.Prop)
	if o.Desc {
		str += " DESC"
	} else {
		str += " ASC"
	}
	return str
}

// Asc creates an OrderColumn for the provided
// column in ascending order
func Asc(prop string) OrderColumn {
	return OrderColumn{prop, false}
}

// Desc creates an OrderColumn for the provided
// column in descending order
func Desc(prop string) OrderColumn {
	return OrderColumn{prop, true}
}

// Select creates a new SelectStmt object for the provided table,
// selecting all columns unless Columns is called.
func Select(table string) SelectStmt {
	return SelectStmt{Table: table}
}

// Columns sets the columns to select. Columns may be plain names or
// qualified "table.column" references; they are quoted as
// identifiers in the generated SQL.
func (stmt SelectStmt) Columns(cols ...string) SelectStmt {
	stmt.Cols = append(append([]string{}, stmt.Cols...), cols...)
	return stmt
}

// Distinct marks the statement as a SELECT DISTINCT
// statement
func (stmt SelectStmt) Distinct() SelectStmt {
	stmt.IsDistinct = true
	return stmt
}

// Where sets the statement's filter condition. Calling Where again
// joins the new condition to the existing one with AND.
func (stmt SelectStmt) Where(cond Condition) SelectStmt {
	if stmt.Filter != nil {
		stmt.Filter = And(stmt.Filter, cond)
	} else {
		stmt.Filter = cond
	}
	return stmt
}

// OrderBy adds ORDER BY columns to the statement. Pass OrderColumn
// objects using the Asc and Desc functions.
func (stmt SelectStmt) OrderBy(cols ...OrderColumn) SelectStmt {
	stmt.Ordering = append(append([]OrderColumn{}, stmt.Ordering...), cols...)
	return stmt
}

// Limit limits the number of returned rows to the provided positive
// count. A non-positive count is a construction error, surfaced by
// Err and by Exec before any statement is sent to the database.
func (stmt SelectStmt) Limit(n int64) SelectStmt {
	if n <= 0 {
		stmt.err = buildErrorf("limit must be positive, got %d", n)
		return stmt
	}
	stmt.limitTo = n
	stmt.hasLimit = true
	return stmt
}

// LimitOffset limits the number of returned rows and skips the
// provided positive number of rows first. This is the only way to set
// an offset; an offset without a limit is not a supported
// combination.
func (stmt SelectStmt) LimitOffset(n, offset int64) SelectStmt {
	if n <= 0 {
		stmt.err = buildErrorf("limit must be positive, got %d", n)
		return stmt
	}
	if offset <= 0 {
		stmt.err = buildErrorf("offset must be positive, got %d", offset)
		return stmt
	}
	stmt.limitTo = n
	stmt.offsetFrom = offset
	stmt.hasLimit = true
	stmt.hasOffset = true
	return stmt
}

// OnDemand marks the statement for on-demand materialization: instead
// of fetching the result set once, the connection re-issues the query
// each time consumption of its ResultSet starts. This is meant for
// result sets too large or too volatile to snapshot, and is never the
// default. The flag does not change the generated SQL or bindings.
func (stmt SelectStmt) OnDemand() SelectStmt {
	stmt.onDemand = true
	return stmt
}

// Err returns the statement's construction error, if any builder
// method was called with invalid arguments.
func (stmt SelectStmt) Err() error {
	return stmt.err
}

// ToSQL generates the SELECT statement's SQL and returns a list of
// bindings. It is used internally by Exec, but is exported if you
// wish to use it directly.
func (stmt SelectStmt) ToSQL() (asSQL string, bindings []Param) {
	clauses := []string{"SELECT"}

	if stmt.IsDistinct {
		clauses = append(clauses, "DISTINCT")
	}

	if len(stmt.Cols) == 0 {
		clauses = append(clauses, "*")
	} else {
		quoted := make([]string, len(stmt.Cols))
		for i, col := range stmt.Cols {
			quoted[i] = quoteProp(col)
		}
		clauses = append(clauses, strings.Join(quoted, ", "))
	}

	clauses = append(clauses, "FROM "+quoteProp(stmt.Table))

	if stmt.Filter != nil {
		whereClause, whereBindings := stmt.Filter.Parse()
		bindings = append(bindings, whereBindings...)
		clauses = append(clauses, "WHERE "+whereClause)
	}

	if len(stmt.Ordering) > 0 {
		ordering := make([]string, len(stmt.Ordering))
		for i, order := range stmt.Ordering {
			ordering[i] = order.ToSQL()
		}
		clauses = append(clauses, "ORDER BY "+strings.Join(ordering, ", "))
	}

	if stmt.hasLimit {
		clauses = append(clauses, fmt.Sprintf("LIMIT %d", stmt.limitTo))
		if stmt.hasOffset {
			clauses = append(clauses, fmt.Sprintf("OFFSET %d", stmt.offsetFrom))
		}
	}

	return strings.Join(clauses, " "), bindings
}
