package orm

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-collect"
)

// Model is a protobuf message that can validate itself before it is stored.
type Model interface {
	proto.Message
	Validate() error
}

// Object is a keyed model as kept in a bucket. The bucket prefixes the key.
type Object interface {
	Keyed
	Cloneable
	Validate() error
	Value() Model
}

// Reader loads objects by key.
type Reader interface {
	Get(db weave.ReadOnlyKVStore, key []byte) (Object, error)
}

type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable returns an empty object of the same kind to unmarshal into.
type Cloneable interface {
	Clone() Object
}
