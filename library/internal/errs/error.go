package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotImplemented  = errors.New("not implemented")

	ErrBlankFullName = fmt.Errorf("%w: full name cannot be blank", ErrInvalidArgument)
	ErrBlankTitle    = fmt.Errorf("%w: title cannot be blank", ErrInvalidArgument)
)
