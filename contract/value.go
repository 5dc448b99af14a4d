package contract

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Value is anything that can be captured in a [Snapshot].
// It's only implemented by the types in this package, so unsupported values are rejected at compile time when using [Capture] and [Verify].
type Value interface {
	token() token
}

var (
	_ Value = Bool(false)
	_ Value = Int(0)
	_ Value = Uint(0)
	_ Value = Float(0)
	_ Value = Rune(0)
	_ Value = Text("")
)

type (
	Bool  bool
	Int   int64
	Uint  uint64
	Float float64
	Rune  rune
	Text  string
)

// token is what a Snapshot holds for each value.
// Scalars are reduced to a hash of their bit pattern, text is kept as-is and compared by content.
type token struct {
	isText bool
	hash   uint64
	text   string
}

func (v Bool) token() token {
	if v {
		return token{hash: 1}
	}
	return token{hash: 0}
}

func (v Int) token() token {
	return token{hash: uint64(v)}
}

func (v Uint) token() token {
	return token{hash: uint64(v)}
}

func (v Float) token() token {
	return token{hash: math.Float64bits(float64(v))}
}

func (v Rune) token() token {
	return token{hash: uint64(int64(v))}
}

func (v Text) token() token {
	return token{isText: true, text: string(v)}
}

func (t token) equal(other token) bool {
	if t.isText != other.isText {
		return false
	}
	if t.isText {
		return t.text == other.text
	}
	return t.hash == other.hash
}

func (t token) String() string {
	if t.isText {
		return Quoted(t.text)
	}
	return strconv.FormatUint(t.hash, 10)
}

// ValueOf classifies an arbitrary value as a [Value].
// Booleans, integers, floats, and strings are supported, including named types with one of those as the underlying type.
//
// Anything else panics with an [*UnsupportedTypeError].
func ValueOf(value any) Value {
	if v, ok := value.(Value); ok {
		return v
	}
	if value == nil {
		panic(&UnsupportedTypeError{Type: "nil"})
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return Text(rv.String())
	default:
		panic(&UnsupportedTypeError{Type: fmt.Sprintf("%T", value)})
	}
}

func tokenOf(value Value) token {
	if value == nil {
		panic(&UnsupportedTypeError{Type: "nil"})
	}
	return value.token()
}

func valuesOf(values []any) []Value {
	converted := make([]Value, len(values))
	for i, v := range values {
		converted[i] = ValueOf(v)
	}
	return converted
}
