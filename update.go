package speql

import (
	"sort"
	"strings"
)

// UpdateStmt represents an UPDATE statement. Like the other builders
// it is a persistent value; Where returns a new statement.
type UpdateStmt struct {
	Table  string
	Cols   []string
	Vals   []Param
	Filter Condition
}

// Update creates a new UpdateStmt setting the provided row's columns
// on the specified table. Columns are set in sorted name order, so
// the same row always compiles to the same SQL.
func Update(table string, row Row) UpdateStmt {
	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	vals := make([]Param, len(cols))
	for i, col := range cols {
		vals[i] = asParam(row[col])
	}

	return UpdateStmt{Table: table, Cols: cols, Vals: vals}
}

// Where sets the statement's filter condition. Calling Where again
// joins the new condition to the existing one with AND.
func (stmt UpdateStmt) Where(cond Condition) UpdateStmt {
	if stmt.Filter != nil {
		stmt.Filter = And(stmt.Filter, cond)
	} else {
		stmt.Filter = cond
	}
	return stmt
}

// ToSQL generates the UPDATE statement's SQL and returns a list of
// bindings: the SET values in column order, then the filter's
// bindings.
func (stmt UpdateStmt) ToSQL() (asSQL string, bindings []Param) {
	clauses := []string{"UPDATE " + quoteProp(stmt.Table)}

	updates := make([]string, len(stmt.Cols))
	for i, col := range stmt.Cols {
		updates[i] = quoteIdent(col) + " = ?"
	}
	clauses = append(clauses, "SET "+strings.Join(updates, ", "))
	bindings = append(bindings, stmt.Vals...)

	if stmt.Filter != nil {
		whereClause, whereBindings := stmt.Filter.Parse()
		bindings = append(bindings, whereBindings...)
		clauses = append(clauses, "WHERE "+whereClause)
	}

	return strings.Join(clauses, " "), bindings
}
