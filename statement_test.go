package speql

import "testing"

func TestFixedStatements(t *testing.T) {
	runTests(t, func() []test {
		return []test{
			{
				"start transaction",
				Begin(),
				"START TRANSACTION",
				nil,
			},

			{
				"commit",
				Commit(),
				"COMMIT",
				nil,
			},

			{
				"rollback",
				Rollback(),
				"ROLLBACK",
				nil,
			},

			{
				"raw statement passes sql and bindings through",
				Raw("SELECT COUNT(*) FROM `users` WHERE `age` > ?", Bind(21)),
				"SELECT COUNT(*) FROM `users` WHERE `age` > ?",
				[]Param{{Value: 21}},
			},
		}
	})
}
