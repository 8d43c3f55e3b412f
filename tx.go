package mswallet

import (
	"reflect"

	"github.com/iov-one/mswallet/errors"
)

// Msg is a request to change wallet state. It carries no authentication;
// that lives in the wrapping Tx.
type Msg interface {
	Persistent

	// Path routes the message to its handler. Only [a-zA-Z0-9_/] are
	// allowed.
	Path() string
}

// Marshaller serializes to bytes, possibly validating first.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent is implemented by pointers to everything that is stored or
// sent over the wire.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Validater is any struct that can be validated.
type Validater interface {
	Validate() error
}

// Tx wraps a message together with whatever authenticates its sender.
type Tx interface {
	Persistent
	GetMsg() (Msg, error)
}

// GetPath returns the message path, or "(missing)" when there is no message.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg copies the transaction message into destination, which must
// point to a value of the message type, and validates it.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrMsg, "transaction without a message")
	}

	dst := reflect.ValueOf(destination)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return errors.Wrap(errors.ErrHuman, "destination must be a non nil pointer")
	}
	src := reflect.ValueOf(msg)
	if src.Kind() == reflect.Ptr {
		src = src.Elem()
	}
	if !src.Type().AssignableTo(dst.Elem().Type()) {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
	}
	dst.Elem().Set(src)

	if v, ok := destination.(Validater); ok {
		if err := v.Validate(); err != nil {
			return errors.Wrap(err, "invalid message")
		}
	}
	return nil
}
