package speql

import (
	"fmt"
	"strconv"
)

// ParamType is an explicit binding-type hint for a Param. The zero
// value, TypeAuto, leaves type inference to the database driver.
type ParamType int

// TypeAuto lets the driver infer the binding type.
// TypeString binds the value as text.
// TypeInt binds the value as a 64-bit integer.
// TypeFloat binds the value as a 64-bit float.
// TypeBool binds the value as a boolean.
// TypeBytes binds the value as a raw byte string.
const (
	TypeAuto ParamType = iota
	TypeString
	TypeInt
	TypeFloat
	TypeBool
	TypeBytes
)

// Param is a single query parameter: a value plus an optional
// binding-type hint. Params bind to placeholders by ordinal
// position, so the i-th Param of a statement always binds the
// i-th "?" in its SQL text.
type Param struct {
	Value interface{}
	Type  ParamType
}

// Bind wraps a value as a Param with no explicit type hint.
func Bind(value interface{}) Param {
	return Param{Value: value}
}

// Typed wraps a value as a Param carrying an explicit binding-type
// hint, overriding driver inference at bind time.
func Typed(value interface{}, t ParamType) Param {
	return Param{Value: value, Type: t}
}

// asParam lifts condition and builder values into Params, keeping the
// explicit hint if the caller already supplied one via Typed.
func asParam(value interface{}) Param {
	if p, ok := value.(Param); ok {
		return p
	}
	return Param{Value: value}
}

// bindings lowers a Param list to driver arguments, applying explicit
// type hints where present.
func bindings(params []Param) []interface{} {
	args := make([]interface{}, len(params))
	for i, p := range params {
		args[i] = p.bind()
	}
	return args
}

func (p Param) bind() interface{} {
	if p.Value == nil {
		return nil
	}

	switch p.Type {
	case TypeString:
		switch v := p.Value.(type) {
		case string:
			return v
		case []byte:
			return string(v)
		default:
			return fmt.Sprintf("%v", v)
		}
	case TypeInt:
		switch v := p.Value.(type) {
		case int64:
			return v
		case int:
			return int64(v)
		case int32:
			return int64(v)
		case uint:
			return int64(v)
		case uint64:
			return int64(v)
		case float32:
			return int64(v)
		case float64:
			return int64(v)
		case bool:
			if v {
				return int64(1)
			}
			return int64(0)
		case string:
			n, _ := strconv.ParseInt(v, 10, 64)
			return n
		case []byte:
			n, _ := strconv.ParseInt(string(v), 10, 64)
			return n
		}
	case TypeFloat:
		switch v := p.Value.(type) {
		case float64:
			return v
		case float32:
			return float64(v)
		case int:
			return float64(v)
		case int64:
			return float64(v)
		case string:
			f, _ := strconv.ParseFloat(v, 64)
			return f
		case []byte:
			f, _ := strconv.ParseFloat(string(v), 64)
			return f
		}
	case TypeBool:
		switch v := p.Value.(type) {
		case bool:
			return v
		case int:
			return v != 0
		case int64:
			return v != 0
		case string:
			b, _ := strconv.ParseBool(v)
			return b
		}
	case TypeBytes:
		switch v := p.Value.(type) {
		case []byte:
			return v
		case string:
			return []byte(v)
		}
	}

	return p.Value
}
