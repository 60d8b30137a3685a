package speql

import (
	"sort"
	"strings"
)

// InsertStmt represents a multi-row INSERT statement. All inserted
// rows share a single ordered column list, taken from the first row's
// keys in sorted order; InsertInto rejects any later row whose key
// set differs.
type InsertStmt struct {
	Table string
	Cols  []string
	Vals  []Param
}

// InsertInto creates a new InsertStmt object for the provided table
// and rows. It fails with a BuildError, before any SQL is produced,
// if a later row's column set differs from the first row's.
func InsertInto(table string, first Row, rest ...Row) (InsertStmt, error) {
	cols := make([]string, 0, len(first))
	for col := range first {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	stmt := InsertStmt{Table: table, Cols: cols}

	for i, row := range append([]Row{first}, rest...) {
		if !sameColumns(cols, row) {
			return InsertStmt{}, buildErrorf("insert into %s: row %d has a different column set than row 0", table, i)
		}
		for _, col := range cols {
			stmt.Vals = append(stmt.Vals, asParam(row[col]))
		}
	}

	return stmt, nil
}

func sameColumns(cols []string, row Row) bool {
	if len(row) != len(cols) {
		return false
	}
	for _, col := range cols {
		if _, ok := row[col]; !ok {
			return false
		}
	}
	return true
}

// ToSQL generates the INSERT statement's SQL and returns a list of
// bindings: each row's values in column order, concatenated row by
// row.
func (stmt InsertStmt) ToSQL() (asSQL string, bindings []Param) {
	clauses := []string{"INSERT INTO " + quoteProp(stmt.Table)}

	quoted := make([]string, len(stmt.Cols))
	for i, col := range stmt.Cols {
		quoted[i] = quoteIdent(col)
	}
	clauses = append(clauses, "("+strings.Join(quoted, ", ")+")")

	row := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(stmt.Cols)), ", ") + ")"

	var rows []string
	for i := 0; i < len(stmt.Vals); i += len(stmt.Cols) {
		rows = append(rows, row)
	}
	clauses = append(clauses, "VALUES "+strings.Join(rows, ", "))

	return strings.Join(clauses, " "), stmt.Vals
}
