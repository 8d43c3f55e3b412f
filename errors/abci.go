package errors

import (
	"errors"
	"fmt"
)

const (
	// SuccessABCICode is the code of a successful response.
	SuccessABCICode uint32 = 0

	// Errors without a registered root share this code and, outside of
	// debug mode, this log.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log to put in a response for err.
//
// Registered errors keep their code and message. Anything else is reported
// with code 1, and its message is replaced with "internal error" unless
// debug is set.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return internalABCICode, internalABCILog
	default:
		return code, err.Error()
	}
}

type coder interface {
	ABCICode() uint32
}

// abciCode unwraps err until it finds a code.
func abciCode(err error) uint32 {
	if errIsNil(err) {
		return SuccessABCICode
	}
	for {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			return internalABCICode
		}
		err = c.Cause()
	}
}

// Redact replaces err with a plain internal error when it has no registered
// root or comes from a recovered panic. In debug mode err is returned as it
// is.
func Redact(err error, debug bool) error {
	if debug {
		return err
	}
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return errors.New(internalABCILog)
	}
	return err
}
