package nruntime

// evalBinary applies one operator from the closed set. "+" coerces to text
// concatenation when either side is text; the other arithmetic operators
// are numeric only. Division always widens to float and fails the whole
// run on a zero divisor.
func evalBinary(op string, left, right Value) (Value, error) {
	switch op {
	case "+":
		if left.Kind() == TextKind || right.Kind() == TextKind {
			return Text(left.String() + right.String()), nil
		}
		l, r, err := numericPair(op, left, right)
		if err != nil {
			return Value{}, err
		}
		if bothInt(left, right) {
			return Int(int64(l) + int64(r)), nil
		}
		return Float(l + r), nil
	case "-":
		l, r, err := numericPair(op, left, right)
		if err != nil {
			return Value{}, err
		}
		if bothInt(left, right) {
			return Int(int64(l) - int64(r)), nil
		}
		return Float(l - r), nil
	case "*":
		l, r, err := numericPair(op, left, right)
		if err != nil {
			return Value{}, err
		}
		if bothInt(left, right) {
			return Int(int64(l) * int64(r)), nil
		}
		return Float(l * r), nil
	case "/":
		l, r, err := numericPair(op, left, right)
		if err != nil {
			return Value{}, err
		}
		if r == 0 {
			return Value{}, divisionByZero()
		}
		return Float(l / r), nil
	case "==":
		return Bool(valuesEqual(left, right)), nil
	case "<":
		return compareOrdered(op, left, right, func(l, r float64) bool { return l < r }, func(l, r string) bool { return l < r })
	case ">":
		return compareOrdered(op, left, right, func(l, r float64) bool { return l > r }, func(l, r string) bool { return l > r })
	default:
		return Value{}, undefined("unsupported operator %q", op)
	}
}

func numericPair(op string, left, right Value) (float64, float64, error) {
	if !left.IsNumber() || !right.IsNumber() {
		return 0, 0, undefined("operator %q needs numbers, got %s and %s", op, kindName(left.Kind()), kindName(right.Kind()))
	}
	return left.Float64(), right.Float64(), nil
}

func bothInt(left, right Value) bool {
	return left.Kind() == IntKind && right.Kind() == IntKind
}

func valuesEqual(left, right Value) bool {
	if left.IsNumber() && right.IsNumber() {
		return left.Float64() == right.Float64()
	}
	if left.Kind() != right.Kind() {
		return false
	}
	switch left.Kind() {
	case TextKind:
		return left.String() == right.String()
	case BoolKind:
		return left.Truthy() == right.Truthy()
	case UnsetKind:
		return true
	default:
		return false
	}
}

func compareOrdered(op string, left, right Value, num func(l, r float64) bool, text func(l, r string) bool) (Value, error) {
	if left.IsNumber() && right.IsNumber() {
		return Bool(num(left.Float64(), right.Float64())), nil
	}
	if left.Kind() == TextKind && right.Kind() == TextKind {
		return Bool(text(left.String(), right.String())), nil
	}
	return Value{}, undefined("operator %q cannot compare %s and %s", op, kindName(left.Kind()), kindName(right.Kind()))
}

func kindName(k ValueKind) string {
	switch k {
	case IntKind, FloatKind:
		return "number"
	case TextKind:
		return "text"
	case BoolKind:
		return "boolean"
	default:
		return "unset"
	}
}
