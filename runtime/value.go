package nruntime

import "strconv"

type ValueKind int

const (
	UnsetKind ValueKind = iota
	IntKind
	FloatKind
	TextKind
	BoolKind
)

// Value is the closed dynamic type of the language: a number (integral or
// floating), text, a boolean, or the unset marker a declaration without an
// initializer leaves behind.
type Value struct {
	kind ValueKind
	i    int64
	f    float64
	s    string
	b    bool
}

func Unset() Value {
	return Value{kind: UnsetKind}
}

func Int(v int64) Value {
	return Value{kind: IntKind, i: v}
}

func Float(v float64) Value {
	return Value{kind: FloatKind, f: v}
}

func Text(v string) Value {
	return Value{kind: TextKind, s: v}
}

func Bool(v bool) Value {
	return Value{kind: BoolKind, b: v}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsNumber() bool {
	return v.kind == IntKind || v.kind == FloatKind
}

// Float64 widens a numeric value. Zero for non-numbers; callers check
// IsNumber first.
func (v Value) Float64() float64 {
	switch v.kind {
	case IntKind:
		return float64(v.i)
	case FloatKind:
		return v.f
	default:
		return 0
	}
}

// String is the textual representation used by print and by "+" coercion.
func (v Value) String() string {
	switch v.kind {
	case IntKind:
		return strconv.FormatInt(v.i, 10)
	case FloatKind:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TextKind:
		return v.s
	case BoolKind:
		return strconv.FormatBool(v.b)
	default:
		return "unset"
	}
}

// Truthy is the binary test shared by when and while: everything is true
// except false, zero and unset.
func (v Value) Truthy() bool {
	switch v.kind {
	case BoolKind:
		return v.b
	case IntKind:
		return v.i != 0
	case FloatKind:
		return v.f != 0
	case UnsetKind:
		return false
	default:
		return true
	}
}
