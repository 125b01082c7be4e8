package interpreter

import "strconv"

type ValueKind int

const (
	NumberValue ValueKind = iota
	BoolValue
)

func (k ValueKind) String() string {
	if k == BoolValue {
		return "boolean"
	}
	return "number"
}

// Value is the result of evaluating an expression. Arithmetic yields numbers,
// comparisons and AND/OR yield booleans.
type Value struct {
	Kind ValueKind
	Num  float64
	Bool bool
}

func Number(n float64) Value {
	return Value{Kind: NumberValue, Num: n}
}

func Bool(b bool) Value {
	return Value{Kind: BoolValue, Bool: b}
}

func (v Value) String() string {
	if v.Kind == BoolValue {
		return strconv.FormatBool(v.Bool)
	}
	return strconv.FormatFloat(v.Num, 'g', -1, 64)
}
