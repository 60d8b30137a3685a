package speql

import (
	"reflect"
	"strings"
	"testing"

	"gopkg.in/DATA-DOG/go-sqlmock.v1"
)

type test struct {
	name             string
	stmt             SQLStmt
	expectedSQL      string
	expectedBindings []Param
}

func runTests(t *testing.T, source func() []test) {
	for _, tst := range source() {
		t.Run(tst.name, func(t *testing.T) {
			resultingSQL, resultingBindings := tst.stmt.ToSQL()
			if resultingSQL != tst.expectedSQL {
				t.Errorf("Failed %s: expected %s, got %s", tst.name, tst.expectedSQL, resultingSQL)
			}

			if len(tst.expectedBindings) != len(resultingBindings) {
				t.Errorf("Failed %s: expected %d bindings, got %d", tst.name, len(tst.expectedBindings), len(resultingBindings))
			} else {
				for i := range tst.expectedBindings {
					if !reflect.DeepEqual(tst.expectedBindings[i], resultingBindings[i]) {
						t.Errorf("Failed %s: expected binding %d to be %v, got %v", tst.name, i+1, tst.expectedBindings[i], resultingBindings[i])
					}
				}
			}

			if n := strings.Count(resultingSQL, "?"); n != len(resultingBindings) {
				t.Errorf("Failed %s: %d placeholders for %d bindings", tst.name, n, len(resultingBindings))
			}

			againSQL, againBindings := tst.stmt.ToSQL()
			if againSQL != resultingSQL || !reflect.DeepEqual(againBindings, resultingBindings) {
				t.Errorf("Failed %s: compiling twice gave different results", tst.name)
			}
		})
	}
}

func testConn(t *testing.T) (*Conn, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed creating mock database: %s", err)
	}

	return New(db, "sqlmock"), mock
}
