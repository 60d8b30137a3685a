package speql

import "testing"

func TestUpdate(t *testing.T) {
	runTests(t, func() []test {
		return []test{
			{
				"update without condition",
				Update("users", Row{"name": "bob"}),
				"UPDATE `users` SET `name` = ?",
				[]Param{{Value: "bob"}},
			},

			{
				"update sets columns in sorted order",
				Update("users", Row{"name": "bob", "age": 30}).Where(Eq("id", 7)),
				"UPDATE `users` SET `age` = ?, `name` = ? WHERE `id` = ?",
				[]Param{{Value: 30}, {Value: "bob"}, {Value: 7}},
			},

			{
				"update bindings precede condition bindings",
				Update("users", Row{"active": false}).Where(And(Lt("last_seen", 1000), IsNotNull("email"))),
				"UPDATE `users` SET `active` = ? WHERE (`last_seen` < ? AND `email` IS NOT NULL)",
				[]Param{{Value: false}, {Value: 1000}},
			},
		}
	})
}
