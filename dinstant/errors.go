package dinstant

import "errors"

var (
	ErrInvalidValue      = errors.New("dinstant: invalid field value")
	ErrReadOnlyField     = errors.New("dinstant: field is read-only")
	ErrUnknownField      = errors.New("dinstant: unknown field")
	ErrInvalidExpression = errors.New("dinstant: invalid relative expression")
)
