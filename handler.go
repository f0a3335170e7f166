package weave

import (
	"bytes"
	"encoding/json"

	"github.com/iov-one/weave-collect/errors"
)

// Handler processes the messages of one or more paths. Check must not
// change anything the next block relies on, while Deliver applies the
// transition.
type Handler interface {
	Checker
	Deliverer
}

type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator runs code shared by many handlers around next, for example
// signature verification or fee deduction.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds message paths to handlers.
type Registry interface {
	Handle(path string, h Handler)
}

// Options is the app_state of the genesis file, keyed by extension.
type Options map[string]json.RawMessage

// ReadOptions decodes the JSON stored under key into obj. A missing key
// leaves obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot parse %q options: %s", key, err)
	}
	return nil
}

// Stream expects an array of json elements and allows to process them
// sequentially. Returns ErrEmpty if the key is missing or when all elements
// were consumed and ErrInput if the stored value cannot be decoded. Calling
// the returned function after ErrEmpty was returned results in ErrState.
func (o Options) Stream(key string) (func(obj interface{}) error, error) {
	data, ok := o[key]
	if !ok {
		return nil, errors.Wrapf(errors.ErrEmpty, "no %q key", key)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var opened, done bool
	return func(obj interface{}) error {
		if done {
			return errors.Wrap(errors.ErrState, "stream already consumed")
		}
		if !opened {
			tok, err := dec.Token()
			if err != nil {
				return errors.Wrap(errors.ErrInput, err.Error())
			}
			if d, ok := tok.(json.Delim); !ok || d != '[' {
				return errors.Wrapf(errors.ErrInput, "%q is not a list", key)
			}
			opened = true
		}
		if !dec.More() {
			done = true
			return errors.Wrap(errors.ErrEmpty, "end of stream")
		}
		if err := dec.Decode(obj); err != nil {
			return errors.Wrap(errors.ErrInput, err.Error())
		}
		return nil
	}, nil
}

// Initializer loads the genesis state of an extension.
type Initializer interface {
	FromGenesis(opts Options, params GenesisParams, kv KVStore) error
}

// GenesisParams holds the genesis values that are not part of app_state.
type GenesisParams struct {
	InitialHeight int64
}
