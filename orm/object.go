package orm

import (
	"reflect"

	"github.com/iov-one/weave-collect/errors"
)

// SimpleObj pairs a key with a model. Extensions without custom object
// logic store their models through it.
type SimpleObj struct {
	key   []byte
	value Model
}

var _ Object = (*SimpleObj)(nil)

func NewSimpleObj(key []byte, value Model) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Key() []byte      { return o.key }
func (o SimpleObj) Value() Model     { return o.value }
func (o *SimpleObj) SetKey(k []byte) { o.key = k }

// Validate requires both parts and validates the model.
func (o SimpleObj) Validate() error {
	switch {
	case len(o.key) == 0:
		return errors.Field("Key", errors.ErrEmpty, "required")
	case o.value == nil:
		return errors.Field("Value", errors.ErrEmpty, "required")
	}
	return errors.Field("Value", o.value.Validate(), "invalid")
}

// Clone returns an object with a copy of the key and a zero model of the
// same type, ready to be unmarshaled into.
func (o *SimpleObj) Clone() Object {
	zero := reflect.New(reflect.TypeOf(o.value).Elem()).Interface().(Model)
	var key []byte
	if len(o.key) != 0 {
		key = append(key, o.key...)
	}
	return &SimpleObj{key: key, value: zero}
}
