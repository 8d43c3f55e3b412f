package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Root errors shared by all packages. Extensions register their own codes
// with Register.
var (
	ErrUnauthorized = Register(2, "unauthorized")
	ErrNotFound     = Register(3, "not found")
	// ErrMsg marks a message that fails validation.
	ErrMsg = Register(4, "invalid message")
	// ErrModel marks a model that fails validation and cannot be stored.
	ErrModel     = Register(5, "invalid model")
	ErrDuplicate = Register(6, "duplicate")
	// ErrHuman is a programming error, not something a user can cause.
	ErrHuman = Register(7, "coding error")
	ErrEmpty = Register(9, "value is empty")
	ErrState = Register(10, "invalid state")
	ErrType  = Register(11, "invalid type")
	ErrInput = Register(14, "invalid input")
	// ErrDatabase wraps failures of the underlying store.
	ErrDatabase = Register(17, "database")

	// ErrPanic is the root of recovered panics. Its details are not
	// exposed outside of debug mode.
	ErrPanic = Register(111222, "panic")
)

// Register declares a root error. It panics when the code is taken, so call
// it from package level variable declarations only.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{code: code, desc: description}
	usedCodes[code] = err
	return err
}

// usedCodes indexes registered errors by code. Code 1 is reserved for
// errors without a code.
var usedCodes = map[uint32]*Error{
	1: {code: 1, desc: "internal"},
}

// Error is a registered root error. Runtime errors wrap one of them, so
// callers can test the kind with Is and clients get a stable code.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// ABCICode is the code the error is reported with.
func (e Error) ABCICode() uint32 {
	return e.code
}

// New is a shortcut for Wrap(e, description).
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Is reports whether err is e or wraps it. A nil *Error matches only nil
// errors.
func (e *Error) Is(err error) bool {
	if e == nil {
		return errIsNil(err)
	}
	for {
		if err == e {
			return true
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
}

// Wrap adds description to err. A nil err stays nil. The innermost wrap
// records a stack trace. Errors without a registered root are reported as
// internal.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{parent: err, msg: description}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Recover turns a panic into an ErrPanic stored in err. Use it with defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

// stackTrace returns the innermost stack trace found while unwrapping err.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
}

// errIsNil also treats a typed nil pointer as nil.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}
