package dlang

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnknownLanguage = errors.New("dlang: unknown language")
	ErrInvalidPack     = errors.New("dlang: invalid language pack")
)

// InvalidPackError reports what is wrong with a pack.  It matches ErrInvalidPack via errors.Is.
type InvalidPackError struct {
	Key string
	Err error
}

func (e *InvalidPackError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrInvalidPack, e.Key, e.Err)
}

func (e *InvalidPackError) Is(target error) bool {
	return target == ErrInvalidPack
}

func (e *InvalidPackError) Unwrap() error {
	return e.Err
}
