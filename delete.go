package speql

import "strings"

// DeleteStmt represents a DELETE statement
type DeleteStmt struct {
	Table  string
	Filter Condition
}

// DeleteFrom creates a new DeleteStmt object for the
// provided table
func DeleteFrom(table string) DeleteStmt {
	return DeleteStmt{Table: table}
}

// Where sets the statement's filter condition. Calling Where again
// joins the new condition to the existing one with AND.
func (stmt DeleteStmt) Where(cond Condition) DeleteStmt {
	if stmt.Filter != nil {
		stmt.Filter = And(stmt.Filter, cond)
	} else {
		stmt.Filter = cond
	}
	return stmt
}

// ToSQL generates the DELETE statement's SQL and returns a list of
// bindings
func (stmt DeleteStmt) ToSQL() (asSQL string, bindings []Param) {
	clauses := []string{"DELETE FROM " + quoteProp(stmt.Table)}

	if stmt.Filter != nil {
		whereClause, whereBindings := stmt.Filter.Parse()
		bindings = append(bindings, whereBindings...)
		clauses = append(clauses, "WHERE "+whereClause)
	}

	return strings.Join(clauses, " "), bindings
}
