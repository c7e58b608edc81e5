package dformat

import (
	"fmt"
	"strconv"
)

// Value is what a TokenFunc renders: either a number (possibly zero-padded) or text.  Only
// numeric Values may carry an ordinal suffix.
type Value struct {
	text    string
	num     int64
	numeric bool
}

// Number is an unpadded numeric Value.
func Number(n int64) Value {
	return Value{text: strconv.FormatInt(n, 10), num: n, numeric: true}
}

// Padded is a numeric Value zero-padded to at least width digits.
func Padded(n int64, width int) Value {
	return Value{text: fmt.Sprintf("%0*d", width, n), num: n, numeric: true}
}

// Text is a non-numeric Value.
func Text(s string) Value {
	return Value{text: s}
}

// String returns the rendered form of v.
func (v Value) String() string { return v.text }

// Int returns v's number, and false if v is text.
func (v Value) Int() (int64, bool) { return v.num, v.numeric }
