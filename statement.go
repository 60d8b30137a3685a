package speql

// SQLStmt is an interface representing a general SQL statement. All
// specific statement types (e.g. SelectStmt, UpdateStmt, etc.)
// implement this interface. ToSQL returns the statement's SQL text
// and the Params bound to its placeholders, in placeholder order.
type SQLStmt interface {
	ToSQL() (asSQL string, bindings []Param)
}

// RawStmt is a statement written directly in SQL, with an explicit
// ordered Param list supplied by the caller. It is an escape hatch
// for queries the structured builders cannot express. The builder
// performs no validation of placeholder/Param counts; a mismatch
// surfaces only when the statement is executed.
type RawStmt struct {
	SQL   string
	Binds []Param
}

// Raw creates a statement from a literal SQL string and its bindings.
// Question marks must be used for placeholders regardless of the
// database driver.
func Raw(sql string, binds ...Param) RawStmt {
	return RawStmt{sql, binds}
}

// ToSQL returns the statement's literal SQL and bindings as supplied.
func (stmt RawStmt) ToSQL() (asSQL string, bindings []Param) {
	return stmt.SQL, stmt.Binds
}

// BeginStmt starts a transaction.
// CommitStmt commits the open transaction.
// RollbackStmt discards the open transaction.
// All three carry fixed SQL text and no bindings.
type (
	BeginStmt    struct{}
	CommitStmt   struct{}
	RollbackStmt struct{}
)

// Begin creates a statement that starts a transaction.
func Begin() BeginStmt { return BeginStmt{} }

// Commit creates a statement that commits the open transaction.
func Commit() CommitStmt { return CommitStmt{} }

// Rollback creates a statement that discards the open transaction.
func Rollback() RollbackStmt { return RollbackStmt{} }

// ToSQL returns the fixed transaction-start SQL.
func (BeginStmt) ToSQL() (asSQL string, bindings []Param) {
	return "START TRANSACTION", nil
}

// ToSQL returns the fixed commit SQL.
func (CommitStmt) ToSQL() (asSQL string, bindings []Param) {
	return "COMMIT", nil
}

// ToSQL returns the fixed rollback SQL.
func (RollbackStmt) ToSQL() (asSQL string, bindings []Param) {
	return "ROLLBACK", nil
}
