/*
Package orm stores protobuf models in prefixed sections of the key value
store called buckets.

A bucket holds a single model type under "<name>:<key>". Extensions wrap it
in a type safe bucket of their own, usually through NewModelBucket:

	type FeeConfigBucket struct {
		orm.ModelBucket
	}

	func NewFeeConfigBucket() *FeeConfigBucket {
		return &FeeConfigBucket{orm.NewModelBucket("feeconfig", &FeeConfig{})}
	}

Buckets also answer ABCI queries once registered with a query router.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
)

// SeqID names the sequence used to generate keys.
const SeqID = "id"

var isBucketName = regexp.MustCompile(`^[a-z_]{3,12}$`).MatchString

// Bucket reads and writes objects of the prototype type under its prefix.
type Bucket struct {
	name   string
	prefix []byte
	proto  Cloneable
}

var _ weave.QueryHandler = Bucket{}

// NewBucket panics on a name that is not 3 to 12 lowercase letters or
// underscores.
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("invalid bucket name: %q", name))
	}
	return Bucket{name: name, prefix: []byte(name + ":"), proto: proto}
}

// Register exposes the bucket content under "/<name>". An empty name uses
// the bucket name.
func (b Bucket) Register(name string, r weave.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query returns a single model for the key mod and all models sharing a key
// prefix for the prefix mod. Returned keys include the bucket prefix.
func (b Bucket) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	switch mod {
	case weave.KeyQueryMod:
		key := b.dbKey(data)
		value, err := db.Get(key)
		if err != nil || value == nil {
			return nil, err
		}
		return []weave.Model{weave.Pair(key, value)}, nil
	case weave.PrefixQueryMod:
		return queryPrefix(db, b.dbKey(data))
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
}

// dbKey returns a new slice holding the prefixed key.
func (b Bucket) dbKey(key []byte) []byte {
	out := make([]byte, 0, len(b.prefix)+len(key))
	return append(append(out, b.prefix...), key...)
}

// Get returns the object stored under key or nil.
func (b Bucket) Get(db weave.ReadOnlyKVStore, key []byte) (Object, error) {
	raw, err := db.Get(b.dbKey(key))
	if err != nil || raw == nil {
		return nil, err
	}
	obj := b.proto.Clone()
	if err := proto.Unmarshal(raw, obj.Value()); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "unmarshal %T: %s", obj.Value(), err)
	}
	obj.SetKey(key)
	return obj, nil
}

func (b Bucket) Has(db weave.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.dbKey(key))
}

// Save validates obj and writes it under its key.
func (b Bucket) Save(db weave.KVStore, obj Object) error {
	if err := obj.Validate(); err != nil {
		return err
	}
	raw, err := proto.Marshal(obj.Value())
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "marshal %T: %s", obj.Value(), err)
	}
	return db.Set(b.dbKey(obj.Key()), raw)
}

func (b Bucket) Delete(db weave.KVStore, key []byte) error {
	return db.Delete(b.dbKey(key))
}

// Sequence returns the named sequence of this bucket.
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}
