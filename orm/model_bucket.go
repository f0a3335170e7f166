package orm

import (
	"reflect"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
)

// ModelBucket stores models of a single type, keyed by a primary key.
type ModelBucket interface {
	// One loads the model stored under key into dest. It returns
	// ErrNotFound for a missing key and ErrType when dest is of another
	// type.
	One(db weave.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns ErrNotFound unless a model is stored under key.
	Has(db weave.ReadOnlyKVStore, key []byte) error

	// Put validates and stores m, replacing any model under key. An empty
	// key is generated from the bucket sequence. The used key is
	// returned.
	Put(db weave.KVStore, key []byte, m Model) ([]byte, error)

	// Delete returns ErrNotFound unless a model is stored under key.
	Delete(db weave.KVStore, key []byte) error

	Register(name string, r weave.QueryRouter)
}

// NewModelBucket returns a bucket for models of the type of m, which must be
// a struct pointer.
func NewModelBucket(name string, m Model) ModelBucket {
	b := NewBucket(name, NewSimpleObj(nil, m))
	return &modelBucket{
		bucket: b,
		ids:    b.Sequence(SeqID),
		typ:    reflect.TypeOf(m),
	}
}

type modelBucket struct {
	bucket Bucket
	ids    Sequence
	typ    reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) Register(name string, r weave.QueryRouter) {
	mb.bucket.Register(name, r)
}

func (mb *modelBucket) One(db weave.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != mb.typ {
		return errors.Wrapf(errors.ErrType, "%s bucket cannot load into %T", mb.bucket.name, dest)
	}
	obj, err := mb.bucket.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %x", mb.bucket.name, key)
	}
	reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(obj.Value()).Elem())
	return nil
}

func (mb *modelBucket) Has(db weave.ReadOnlyKVStore, key []byte) error {
	// The store panics on a nil key.
	if key == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s nil key", mb.bucket.name)
	}
	switch ok, err := mb.bucket.Has(db, key); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrapf(errors.ErrNotFound, "%s %x", mb.bucket.name, key)
	}
	return nil
}

func (mb *modelBucket) Put(db weave.KVStore, key []byte, m Model) ([]byte, error) {
	if reflect.TypeOf(m) != mb.typ {
		return nil, errors.Wrapf(errors.ErrType, "%s bucket cannot store %T", mb.bucket.name, m)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %T", m)
	}
	if len(key) == 0 {
		var err error
		if key, err = mb.ids.NextVal(db); err != nil {
			return nil, errors.Wrap(err, "id sequence")
		}
	}
	if err := mb.bucket.Save(db, NewSimpleObj(key, m)); err != nil {
		return nil, err
	}
	return key, nil
}

func (mb *modelBucket) Delete(db weave.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return mb.bucket.Delete(db, key)
}
