package weave

import (
	"reflect"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/weave-collect/errors"
)

// Msg is a request for a state transition. It carries no authentication
// data, which is found in the wrapping Tx.
type Msg interface {
	proto.Message

	// Path routes the message to its handler. Paths are in the form
	// "<extension>/<action>", for example "collect/collect".
	Path() string

	// Validate checks the message content without access to the state.
	Validate() error
}

// Tx is the payload sent by a client. Besides the message it holds what the
// decorators need, for example signatures and fees.
type Tx interface {
	proto.Message

	GetMsg() (Msg, error)
}

// TxDecoder parses raw transaction bytes.
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the tx message or "(missing)".
func GetPath(tx Tx) string {
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg validates the message of tx and copies it into dest, which must be
// a pointer to the message type.
//
//	var msg CollectMsg
//	if err := weave.LoadMsg(tx, &msg); err != nil {
//		return nil, err
//	}
func LoadMsg(tx Tx, dest interface{}) error {
	msg, err := tx.GetMsg()
	switch {
	case err != nil:
		return errors.Wrap(err, "tx message")
	case msg == nil:
		return errors.Wrap(errors.ErrState, "nil message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination %T is not a pointer", dest)
	}
	sv := reflect.ValueOf(msg)
	if sv.Kind() == reflect.Ptr {
		if sv.IsNil() {
			return errors.Wrap(errors.ErrState, "nil message")
		}
		sv = sv.Elem()
	}
	if sv.Type() != dv.Elem().Type() {
		return errors.Wrapf(errors.ErrType, "cannot load %T into %T", msg, dest)
	}
	dv.Elem().Set(sv)
	return nil
}
