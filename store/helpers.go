package store

import (
	"github.com/iov-one/weave-collect/errors"
)

// sliceIterator iterates over an in memory, already ordered result.
type sliceIterator struct {
	data []Model
}

var _ Iterator = (*sliceIterator)(nil)

// NewSliceIterator returns an iterator over data in the given order.
func NewSliceIterator(data []Model) Iterator {
	return &sliceIterator{data: data}
}

func (s *sliceIterator) Next() (key, value []byte, err error) {
	if len(s.data) == 0 {
		return nil, nil, errors.Wrap(errors.ErrIteratorDone, "slice iterator")
	}
	m := s.data[0]
	s.data = s.data[1:]
	return m.Key, m.Value, nil
}

func (s *sliceIterator) Release() {
	s.data = nil
}

// EmptyKVStore holds no data and ignores writes. It is the bottom layer of
// MemStore.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get([]byte) ([]byte, error)                    { return nil, nil }
func (EmptyKVStore) Has([]byte) (bool, error)                      { return false, nil }
func (EmptyKVStore) Set(_, _ []byte) error                         { return nil }
func (EmptyKVStore) Delete([]byte) error                           { return nil }
func (EmptyKVStore) Iterator(_, _ []byte) (Iterator, error)        { return NewSliceIterator(nil), nil }
func (EmptyKVStore) ReverseIterator(_, _ []byte) (Iterator, error) { return NewSliceIterator(nil), nil }

func (e EmptyKVStore) NewBatch() Batch {
	return NewNonAtomicBatch(e)
}

// Op is a single recorded write.
type Op struct {
	key    []byte
	value  []byte
	delete bool
}

func SetOp(key, value []byte) Op {
	return Op{key: key, value: value}
}

func DelOp(key []byte) Op {
	return Op{key: key, delete: true}
}

// Apply performs the operation on out.
func (o Op) Apply(out SetDeleter) error {
	if o.delete {
		return out.Delete(o.key)
	}
	return out.Set(o.key, o.value)
}

// NonAtomicBatch records operations and replays them in order on Write. A
// failure leaves the earlier operations applied, so use it only over in
// memory stores.
type NonAtomicBatch struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*NonAtomicBatch)(nil)

func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, SetOp(key, value))
	return nil
}

func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, DelOp(key))
	return nil
}

// Write applies all recorded operations and resets the batch.
func (b *NonAtomicBatch) Write() error {
	for i, op := range b.ops {
		if err := op.Apply(b.out); err != nil {
			return errors.Wrapf(err, "batch operation %d", i)
		}
	}
	b.ops = nil
	return nil
}
