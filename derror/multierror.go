// Package derror collects small error utilities: an aggregate of several errors, and a converter
// from a recovered panic value to an error.
package derror

import (
	"fmt"
	"strings"
)

// MultiError is a collection of errors that is itself an error.  It is what validation returns
// when it has more than one complaint, so that the caller sees all of them at once rather than
// fixing them one round-trip at a time.
type MultiError []error

// Error implements error.
func (e MultiError) Error() string {
	switch len(e) {
	case 0:
		return "no errors"
	case 1:
		return e[0].Error()
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "%d errors:", len(e))
	for i, err := range e {
		prefix := fmt.Sprintf(" %d. ", i+1)
		indent := "\n" + strings.Repeat(" ", len(prefix))
		buf.WriteString("\n")
		buf.WriteString(prefix)
		buf.WriteString(strings.ReplaceAll(err.Error(), "\n", indent))
	}
	return buf.String()
}

// Unwrap returns the wrapped errors, so that errors.Is and errors.As look inside a MultiError.
func (e MultiError) Unwrap() []error {
	return e
}

// ErrorOrNil returns nil if the MultiError is empty, and the MultiError itself otherwise.
func (e MultiError) ErrorOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
