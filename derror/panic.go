package derror

import (
	"fmt"

	"github.com/pkg/errors"
)

type panicError struct {
	err error
}

func (pe panicError) Error() string { return "PANIC: " + pe.err.Error() }
func (pe panicError) Unwrap() error { return pe.err }
func (pe panicError) Cause() error  { return errors.Cause(pe.err) }

// Format implements fmt.Formatter; "%+v" includes the stack of the point where the panic was
// recovered.
func (pe panicError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "PANIC: %+v", pe.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, pe.Error())
	case 'q':
		fmt.Fprintf(s, "%q", pe.Error())
	}
}

// PanicToError takes an arbitrary object returned from recover(), and returns an appropriate
// error.
//
// If the input is nil, then nil is returned.
//
// If the input is an error returned from a previous call to PanicToError, then it is returned
// verbatim, so that a re-panicked error is not wrapped twice.
//
// If the input is an error, it is wrapped with "PANIC: " and has a stack trace attached to it.
//
// If the input is anything else, it is formatted with "%+v" and returned as an error with "PANIC:
// " prepended and a stack trace attached.
func PanicToError(rec interface{}) error {
	if rec == nil {
		return nil
	}
	switch rec := rec.(type) {
	case panicError:
		return rec
	case error:
		return panicError{err: errors.WithStack(rec)}
	default:
		return panicError{err: errors.Errorf("%+v", rec)}
	}
}
