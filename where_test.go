package speql

import (
	"reflect"
	"strings"
	"testing"
)

func TestWhere(t *testing.T) {
	for _, tst := range []struct {
		name             string
		cond             Condition
		expectedSQL      string
		expectedBindings []Param
	}{
		{
			"nil condition matches everything",
			nil,
			"",
			nil,
		},
		{
			"equality",
			Eq("name", "bob"),
			"`name` = ?",
			[]Param{{Value: "bob"}},
		},
		{
			"non-equality",
			Ne("name", "bob"),
			"`name` <> ?",
			[]Param{{Value: "bob"}},
		},
		{
			"less-than",
			Lt("age", 30),
			"`age` < ?",
			[]Param{{Value: 30}},
		},
		{
			"greater-than",
			Gt("age", 30),
			"`age` > ?",
			[]Param{{Value: 30}},
		},
		{
			"less-than-or-equals",
			Lte("age", 30),
			"`age` <= ?",
			[]Param{{Value: 30}},
		},
		{
			"greater-than-or-equals",
			Gte("age", 30),
			"`age` >= ?",
			[]Param{{Value: 30}},
		},
		{
			"nullity",
			IsNull("deleted_at"),
			"`deleted_at` IS NULL",
			nil,
		},
		{
			"non-nullity",
			IsNotNull("deleted_at"),
			"`deleted_at` IS NOT NULL",
			nil,
		},
		{
			"qualified column reference",
			Eq("users.id", 4),
			"`users`.`id` = ?",
			[]Param{{Value: 4}},
		},
		{
			"membership",
			In("id", 1, 2, 3),
			"`id` IN (?, ?, ?)",
			[]Param{{Value: 1}, {Value: 2}, {Value: 3}},
		},
		{
			"empty membership matches no rows",
			In("id"),
			"`id` IN ()",
			nil,
		},
		{
			"starts-with escapes underscore",
			StartsWith("code", "ab_c"),
			"`code` LIKE ?",
			[]Param{{Value: `ab\_c%`}},
		},
		{
			"contains escapes percent",
			Contains("label", "100%"),
			"`label` LIKE ?",
			[]Param{{Value: `%100\%%`}},
		},
		{
			"ends-with escapes backslash first",
			EndsWith("path", `dir\name`),
			"`path` LIKE ?",
			[]Param{{Value: `%dir\\name`}},
		},
		{
			"composite and",
			And(Eq("a", 1), Eq("b", 2)),
			"(`a` = ? AND `b` = ?)",
			[]Param{{Value: 1}, {Value: 2}},
		},
		{
			"composite or",
			Or(Eq("a", 1), Eq("b", 2)),
			"(`a` = ? OR `b` = ?)",
			[]Param{{Value: 1}, {Value: 2}},
		},
		{
			"negation",
			Not(Eq("a", 1)),
			"NOT(`a` = ?)",
			[]Param{{Value: 1}},
		},
		{
			"nested tree keeps left-to-right binding order",
			And(Or(Eq("a", 1), In("b", 2, 3)), Not(Contains("c", "x"))),
			"((`a` = ? OR `b` IN (?, ?)) AND NOT(`c` LIKE ?))",
			[]Param{{Value: 1}, {Value: 2}, {Value: 3}, {Value: "%x%"}},
		},
		{
			"explicit binding-type hint is carried",
			Eq("age", Typed(7, TypeInt)),
			"`age` = ?",
			[]Param{{Value: 7, Type: TypeInt}},
		},
		{
			"hint is carried through pattern escaping",
			StartsWith("code", Typed("ab", TypeString)),
			"`code` LIKE ?",
			[]Param{{Value: "ab%", Type: TypeString}},
		},
		{
			"quoting neutralizes backticks in identifiers",
			Eq("na`me", 1),
			"`na``me` = ?",
			[]Param{{Value: 1}},
		},
	} {
		t.Run(tst.name, func(t *testing.T) {
			asSQL, bindings := Where(tst.cond)
			if asSQL != tst.expectedSQL {
				t.Errorf("expected %s, got %s", tst.expectedSQL, asSQL)
			}

			if len(bindings) != len(tst.expectedBindings) {
				t.Errorf("expected %d bindings, got %d", len(tst.expectedBindings), len(bindings))
			} else {
				for i := range tst.expectedBindings {
					if !reflect.DeepEqual(bindings[i], tst.expectedBindings[i]) {
						t.Errorf("expected binding %d to be %v, got %v", i+1, tst.expectedBindings[i], bindings[i])
					}
				}
			}

			if n := strings.Count(asSQL, "?"); n != len(bindings) {
				t.Errorf("%d placeholders for %d bindings", n, len(bindings))
			}

			againSQL, againBindings := Where(tst.cond)
			if againSQL != asSQL || !reflect.DeepEqual(againBindings, bindings) {
				t.Errorf("compiling the same tree twice gave different results")
			}
		})
	}
}
