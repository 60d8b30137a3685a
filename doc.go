// Package speql (pronounced "speckle") is a specification-based SQL query
// builder and executor for Go projects, based on github.com/jmoiron/sqlx.
//
// Application code describes queries declaratively: a table, optional
// columns, and a composable condition tree built from comparators
// (Eq, Gt, Contains, In, ...), binary And/Or composites and Not
// negations. speql compiles the description into parameterized SQL
// text plus an ordered binding list, guaranteeing that the n-th "?"
// placeholder in the text always binds the n-th parameter, no matter
// how deeply conditions are nested. Identifiers are always quoted, and
// the values of pattern conditions have their LIKE metacharacters
// escaped before binding.
//
// Statements are persistent values: builder methods return new
// statements rather than mutating their receivers, so partial queries
// can be shared and extended safely. A Conn (or a LazyConn, which
// dials only on first use) executes any statement and wraps the
// results as a ResultSet, materialized eagerly, deferred until
// consumption, or re-queried on demand.
//
//	import (
//		"fmt"
//
//		"github.com/go-sql-driver/mysql"
//		"github.com/speql/speql"
//	)
//
//	func main() {
//		cfg := mysql.NewConfig()
//		cfg.Addr = "localhost:3306"
//		cfg.User = "app"
//		cfg.DBName = "appdb"
//
//		conn, err := speql.Connect(cfg)
//		if err != nil {
//			panic(err)
//		}
//		defer conn.Close()
//
//		rs, err := conn.Exec(
//			speql.Select("users").
//				Columns("id", "name").
//				Where(speql.And(
//					speql.StartsWith("name", "jo"),
//					speql.Gte("age", 21),
//				)).
//				OrderBy(speql.Asc("name")).
//				Limit(10))
//		if err != nil {
//			panic(err)
//		}
//
//		for rs.Next() {
//			fmt.Println(rs.Row().String("name"))
//		}
//		if rs.Err() != nil {
//			panic(rs.Err())
//		}
//	}
package speql
