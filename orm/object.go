package orm

import (
	"reflect"

	"github.com/iov-one/mswallet/errors"
)

// SimpleObj is the Object used by every bucket in this module.
type SimpleObj struct {
	key   []byte
	value Model
}

var _ Object = (*SimpleObj)(nil)

func NewSimpleObj(key []byte, value Model) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Key() []byte { return o.key }

func (o *SimpleObj) SetKey(key []byte) { o.key = key }

func (o SimpleObj) Value() Model { return o.value }

// Validate requires both key and value and then validates the value.
func (o SimpleObj) Validate() error {
	switch {
	case len(o.key) == 0:
		return errors.Wrap(errors.ErrEmpty, "object key")
	case o.value == nil:
		return errors.Wrap(errors.ErrEmpty, "object value")
	}
	return o.value.Validate()
}

// Clone returns an object with a copy of the key and a zero value of the
// same type, ready to be unmarshalled into.
func (o *SimpleObj) Clone() Object {
	zero := reflect.New(reflect.TypeOf(o.value).Elem()).Interface().(Model)
	var key []byte
	if len(o.key) != 0 {
		key = append(key, o.key...)
	}
	return &SimpleObj{key: key, value: zero}
}
