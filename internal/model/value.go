package model

// Value is one point of a derived series. Positions without enough history
// are explicitly undefined instead of carrying a placeholder number, so
// consumers cannot accidentally do arithmetic on a sentinel.
type Value struct {
	Val     float64
	Defined bool
}

// Defined wraps v into a defined Value.
func Defined(v float64) Value { return Value{Val: v, Defined: true} }

// Undefined is the marker for positions with insufficient history.
var Undefined = Value{}

// Series is a derived sequence aligned 1:1 with the source bars.
type Series []Value

// Last returns the most recent point, or Undefined for an empty series.
func (s Series) Last() Value {
	if len(s) == 0 {
		return Undefined
	}
	return s[len(s)-1]
}

// At returns the point at index i, or Undefined when i is out of range.
func (s Series) At(i int) Value {
	if i < 0 || i >= len(s) {
		return Undefined
	}
	return s[i]
}
