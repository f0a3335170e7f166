package store

// Recorder exposes every key written through a store. A nil value marks a
// deletion.
type Recorder interface {
	KVPairs() map[string][]byte
}

// RecordingStore is a KVStore that remembers what was written through it.
type RecordingStore interface {
	KVStore
	Recorder
}

// NewRecordingStore wraps db so that all successful writes are recorded.
// When db can be cache wrapped, so can the returned store, and writes
// flushed from such a cache are recorded as well.
func NewRecordingStore(db KVStore) RecordingStore {
	r := &recordingStore{KVStore: db, changes: make(changes)}
	if _, ok := db.(CacheableKVStore); ok {
		return cacheableRecordingStore{recordingStore: r}
	}
	return r
}

type changes map[string][]byte

func (c changes) KVPairs() map[string][]byte {
	return c
}

func (c changes) record(op Op) {
	if op.delete {
		c[string(op.key)] = nil
		return
	}
	c[string(op.key)] = append([]byte{}, op.value...)
}

type recordingStore struct {
	KVStore
	changes
}

var _ RecordingStore = (*recordingStore)(nil)

func (r *recordingStore) Set(key, value []byte) error {
	if err := r.KVStore.Set(key, value); err != nil {
		return err
	}
	r.record(SetOp(key, value))
	return nil
}

func (r *recordingStore) Delete(key []byte) error {
	if err := r.KVStore.Delete(key); err != nil {
		return err
	}
	r.record(DelOp(key))
	return nil
}

func (r *recordingStore) NewBatch() Batch {
	return &recordingBatch{Batch: r.KVStore.NewBatch(), changes: r.changes}
}

type cacheableRecordingStore struct {
	*recordingStore
}

var _ CacheableKVStore = cacheableRecordingStore{}

// CacheWrap returns a cache that flushes into the recording store.
func (r cacheableRecordingStore) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(r.recordingStore, r.NewBatch(), nil)
}

// recordingBatch records its operations only once they are written.
type recordingBatch struct {
	Batch
	changes changes
	ops     []Op
}

func (b *recordingBatch) Set(key, value []byte) error {
	if err := b.Batch.Set(key, value); err != nil {
		return err
	}
	b.ops = append(b.ops, SetOp(key, value))
	return nil
}

func (b *recordingBatch) Delete(key []byte) error {
	if err := b.Batch.Delete(key); err != nil {
		return err
	}
	b.ops = append(b.ops, DelOp(key))
	return nil
}

func (b *recordingBatch) Write() error {
	if err := b.Batch.Write(); err != nil {
		return err
	}
	for _, op := range b.ops {
		b.changes.record(op)
	}
	b.ops = nil
	return nil
}
