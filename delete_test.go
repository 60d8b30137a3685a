package speql

import "testing"

func TestDelete(t *testing.T) {
	runTests(t, func() []test {
		return []test{
			{
				"delete all rows",
				DeleteFrom("users"),
				"DELETE FROM `users`",
				nil,
			},

			{
				"delete with condition",
				DeleteFrom("users").Where(Eq("id", 5)),
				"DELETE FROM `users` WHERE `id` = ?",
				[]Param{{Value: 5}},
			},

			{
				"delete with stacked conditions",
				DeleteFrom("sessions").Where(Lt("expires_at", 123)).Where(IsNull("pinned")),
				"DELETE FROM `sessions` WHERE (`expires_at` < ? AND `pinned` IS NULL)",
				[]Param{{Value: 123}},
			},
		}
	})
}
