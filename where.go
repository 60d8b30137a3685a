package speql

import (
	"fmt"
	"strings"
)

// Condition is an interface describing nodes of a filter condition
// tree used inside an SQL WHERE clause. It defines the Parse function
// that generates SQL (with placeholders) from the node and returns
// the list of Params bound to those placeholders. Parse appends each
// placeholder and its Param in the same pass, so the i-th "?" in the
// generated fragment always corresponds to the i-th Param.
type Condition interface {
	Parse() (asSQL string, bindings []Param)
}

// Sign is an enumerated type representing the comparison performed by
// a Comparator.
type Sign int

// SignEq compares for equality ("=").
// SignNe compares for inequality ("<>").
// SignLt, SignGt, SignLte, SignGte are the ordering comparisons.
// SignIsNull and SignIsNotNull are the nullity checks.
// SignStartsWith, SignEndsWith and SignContains are the pattern
// comparisons, lowered to LIKE with an escaped, wildcarded value.
// SignIn checks membership in a value list.
const (
	SignEq Sign = iota
	SignNe
	SignLt
	SignGt
	SignLte
	SignGte
	SignIsNull
	SignIsNotNull
	SignStartsWith
	SignEndsWith
	SignContains
	SignIn
)

func (s Sign) operator() string {
	return []string{"=", "<>", "<", ">", "<=", ">="}[int(s)]
}

// Comparator is a leaf condition relating one column to one value via
// a sign. Prop may be a plain column name or a qualified
// "table.column" reference; both parts are quoted independently in
// the generated SQL.
type Comparator struct {
	Prop  string
	Sign  Sign
	Value interface{}
}

// Composite is a binary AND/OR combination of two condition subtrees.
type Composite struct {
	Left  Condition
	Right Condition
	Or    bool
}

// Negation negates a condition subtree.
type Negation struct {
	Inner Condition
}

// Eq represents a simple equality condition ("=" operator)
func Eq(prop string, value interface{}) Comparator {
	return Comparator{prop, SignEq, value}
}

// Ne represents a simple non-equality condition ("<>" operator)
func Ne(prop string, value interface{}) Comparator {
	return Comparator{prop, SignNe, value}
}

// Lt represents a simple less-than condition ("<" operator)
func Lt(prop string, value interface{}) Comparator {
	return Comparator{prop, SignLt, value}
}

// Gt represents a simple greater-than condition (">" operator)
func Gt(prop string, value interface{}) Comparator {
	return Comparator{prop, SignGt, value}
}

// Lte represents a simple less-than-or-equals condition ("<=" operator)
func Lte(prop string, value interface{}) Comparator {
	return Comparator{prop, SignLte, value}
}

// Gte represents a simple greater-than-or-equals condition (">=" operator)
func Gte(prop string, value interface{}) Comparator {
	return Comparator{prop, SignGte, value}
}

// IsNull represents a simple nullity condition ("IS NULL" operator)
func IsNull(prop string) Comparator {
	return Comparator{prop, SignIsNull, nil}
}

// IsNotNull represents a simple non-nullity condition ("IS NOT NULL" operator)
func IsNotNull(prop string) Comparator {
	return Comparator{prop, SignIsNotNull, nil}
}

// StartsWith represents a prefix pattern condition. The value is
// escaped and suffixed with a wildcard before binding.
func StartsWith(prop string, value interface{}) Comparator {
	return Comparator{prop, SignStartsWith, value}
}

// EndsWith represents a suffix pattern condition. The value is
// escaped and prefixed with a wildcard before binding.
func EndsWith(prop string, value interface{}) Comparator {
	return Comparator{prop, SignEndsWith, value}
}

// Contains represents a substring pattern condition. The value is
// escaped and surrounded with wildcards before binding.
func Contains(prop string, value interface{}) Comparator {
	return Comparator{prop, SignContains, value}
}

// In creates an IN condition for matching the value of a column
// against an array of possible values. An empty value list produces
// "IN ()", which matches no rows.
func In(prop string, values ...interface{}) Comparator {
	return Comparator{prop, SignIn, values}
}

// And joins two conditions into an AND composite.
func And(left, right Condition) Composite {
	return Composite{left, right, false}
}

// Or joins two conditions into an OR composite.
func Or(left, right Condition) Composite {
	return Composite{left, right, true}
}

// Not negates a condition.
func Not(inner Condition) Negation {
	return Negation{inner}
}

// Where compiles a condition tree into an SQL fragment and the Params
// bound to its placeholders. A nil condition matches everything and
// compiles to an empty fragment with no bindings.
func Where(cond Condition) (asSQL string, bindings []Param) {
	if cond == nil {
		return "", nil
	}
	return cond.Parse()
}

// Parse implements the Condition interface, generating SQL from
// the comparator
func (cmp Comparator) Parse() (asSQL string, bindings []Param) {
	col := quoteProp(cmp.Prop)

	switch cmp.Sign {
	case SignIsNull:
		return col + " IS NULL", nil
	case SignIsNotNull:
		return col + " IS NOT NULL", nil
	case SignIn:
		var placeholders []string
		for _, val := range cmp.valueList() {
			placeholders = append(placeholders, "?")
			bindings = append(bindings, asParam(val))
		}
		return col + " IN (" + strings.Join(placeholders, ", ") + ")", bindings
	case SignStartsWith, SignEndsWith, SignContains:
		p := asParam(cmp.Value)
		p.Value = likePattern(cmp.Sign, p.Value)
		return col + " LIKE ?", append(bindings, p)
	default:
		return col + " " + cmp.Sign.operator() + " ?", append(bindings, asParam(cmp.Value))
	}
}

// Parse implements the Condition interface, generating SQL from
// the composite. The right subtree's bindings follow the left's, in
// the same order their placeholders appear in the fragment.
func (c Composite) Parse() (asSQL string, bindings []Param) {
	leftSQL, leftBindings := c.Left.Parse()
	rightSQL, rightBindings := c.Right.Parse()

	op := " AND "
	if c.Or {
		op = " OR "
	}

	return "(" + leftSQL + op + rightSQL + ")", append(leftBindings, rightBindings...)
}

// Parse implements the Condition interface, generating SQL from
// the negation
func (n Negation) Parse() (asSQL string, bindings []Param) {
	innerSQL, innerBindings := n.Inner.Parse()
	return "NOT(" + innerSQL + ")", innerBindings
}

func (cmp Comparator) valueList() []interface{} {
	switch v := cmp.Value.(type) {
	case nil:
		return nil
	case []interface{}:
		return v
	default:
		return []interface{}{v}
	}
}

// likePattern derives the bound value for a pattern comparator:
// the LIKE metacharacters backslash, underscore and percent are
// escaped (backslash first, so the inserted escapes are not escaped
// again), then wildcards are added per the sign.
func likePattern(sign Sign, value interface{}) string {
	escaped := escapeLike(stringValue(value))

	switch sign {
	case SignStartsWith:
		return escaped + "%"
	case SignEndsWith:
		return "%" + escaped
	default:
		return "%" + escaped + "%"
	}
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return s
}

func stringValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// quoteProp quotes a property reference for use in SQL. A property
// may be "column" or "table.column"; each part is quoted as an
// identifier independently of how the reference was written.
func quoteProp(prop string) string {
	if table, col, ok := strings.Cut(prop, "."); ok {
		return quoteIdent(table) + "." + quoteIdent(col)
	}
	return quoteIdent(prop)
}

// quoteIdent wraps a single name in backticks, doubling any backtick
// inside it, so the name can never be parsed as anything but an
// identifier.
func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
