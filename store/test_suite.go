package store

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"sort"
	"testing"

	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/weavetest/assert"
)

// TestSuite runs the KVStore contract against any CacheableKVStore
// implementation. Each check receives a fresh store from the constructor.
type TestSuite struct {
	newStore TestStoreConstructor
}

// TestStoreConstructor returns an empty store and a function releasing it.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{newStore: constructor}
}

// GetSet walks a single store through write, cache, discard and commit.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.newStore()
	defer cleanup()

	owner := Pair([]byte("pub:0001"), []byte("price=10"))
	record := Pair([]byte("rec:0001"), []byte("collected"))
	dropped := Pair([]byte("tmp:0001"), []byte("dropped"))

	s.AssertGetHas(t, base, owner.Key, nil, false)
	assert.Nil(t, base.Set(owner.Key, owner.Value))
	s.AssertGetHas(t, base, owner.Key, owner.Value, true)

	pending := base.CacheWrap()
	s.AssertGetHas(t, pending, owner.Key, owner.Value, true)
	assert.Nil(t, pending.Set(record.Key, record.Value))
	s.AssertGetHas(t, pending, record.Key, record.Value, true)
	s.AssertGetHas(t, base, record.Key, nil, false)

	assert.Nil(t, pending.Write())
	s.AssertGetHas(t, base, record.Key, record.Value, true)

	discarded := base.CacheWrap()
	assert.Nil(t, discarded.Set(dropped.Key, dropped.Value))
	discarded.Discard()
	s.AssertGetHas(t, base, dropped.Key, nil, false)

	removal := base.CacheWrap()
	assert.Nil(t, removal.Delete(owner.Key))
	s.AssertGetHas(t, base, owner.Key, owner.Value, true)
	assert.Nil(t, removal.Write())
	s.AssertGetHas(t, base, owner.Key, nil, false)
	s.AssertGetHas(t, base, record.Key, record.Value, true)
}

// CacheConflicts checks that a cache layer can overwrite and delete values
// of the layer below it without leaking the change before Write.
func (s *TestSuite) CacheConflicts(t *testing.T) {
	keys := randKeys(4, 16)
	vals := randKeys(4, 32)

	below := []Op{SetOp(keys[0], vals[0]), SetOp(keys[1], vals[1])}
	above := []Op{SetOp(keys[0], vals[2]), DelOp(keys[1]), SetOp(keys[2], vals[3])}

	before := []Model{Pair(keys[0], vals[0]), Pair(keys[1], vals[1]), Pair(keys[2], nil)}
	after := []Model{Pair(keys[0], vals[2]), Pair(keys[1], nil), Pair(keys[2], vals[3])}

	parent, cleanup := s.newStore()
	defer cleanup()
	applyOps(t, parent, below)

	child := parent.CacheWrap()
	applyOps(t, child, above)

	for _, m := range before {
		s.AssertGetHas(t, parent, m.Key, m.Value, m.Value != nil)
	}
	for _, m := range after {
		s.AssertGetHas(t, child, m.Key, m.Value, m.Value != nil)
	}

	assert.Nil(t, child.Write())
	for _, m := range after {
		s.AssertGetHas(t, parent, m.Key, m.Value, m.Value != nil)
	}
}

// FuzzIterator compares iteration over random data against a sorted
// expectation, both with and without data in the parent layer.
func (s *TestSuite) FuzzIterator(t *testing.T) {
	const size = 40

	childData := randModels(size, 8, 24)
	parentData := randModels(size, 8, 24)
	noise := randModels(size/2, 8, 24)

	childOps := append(setOps(childData), delOps(noise)...)
	parentOps := append(setOps(parentData), delOps(noise)...)

	t.Run("child only", func(t *testing.T) {
		base, cleanup := s.newStore()
		defer cleanup()
		checkRanges(t, base, nil, childOps, sortedByKey(childData))
	})
	t.Run("child over parent", func(t *testing.T) {
		base, cleanup := s.newStore()
		defer cleanup()
		all := sortedByKey(append(append([]Model{}, childData...), parentData...))
		checkRanges(t, base, parentOps, childOps, all)
	})
}

// IteratorWithConflicts iterates over layers that shadow each other.
func (s *TestSuite) IteratorWithConflicts(t *testing.T) {
	ms := randModels(4, 16, 32)
	a, b, c, d := ms[0], ms[1], ms[2], ms[3]
	a2 := Pair(a.Key, []byte("replaced a"))
	b2 := Pair(b.Key, []byte("replaced b"))

	cases := map[string]struct {
		parent []Op
		child  []Op
		want   []Model
	}{
		"values only in the cache": {
			child: setOps([]Model{a, b, c}),
			want:  sortedByKey([]Model{a, b, c}),
		},
		"values only in the parent": {
			parent: setOps([]Model{a, b, c}),
			want:   sortedByKey([]Model{a, b, c}),
		},
		"values split across layers": {
			parent: setOps([]Model{a, b}),
			child:  setOps([]Model{c}),
			want:   sortedByKey([]Model{a, b, c}),
		},
		"cache overrides parent values": {
			parent: setOps([]Model{a, b, c}),
			child:  setOps([]Model{a2, b2, d}),
			want:   sortedByKey([]Model{a2, b2, c, d}),
		},
		"cache deletes hide parent values": {
			parent: setOps([]Model{a, c, d}),
			child:  delOps([]Model{a, b, d}),
			want:   []Model{c},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			base, cleanup := s.newStore()
			defer cleanup()
			checkRanges(t, base, tc.parent, tc.child, tc.want)
		})
	}
}

// AssertGetHas checks Get and Has agree on the expected value of key.
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

// checkRanges applies parent ops to base and child ops to a cache on top of
// it, then iterates the cache over several bounds in both directions.
// want must be sorted by key.
func checkRanges(t *testing.T, base CacheableKVStore, parent, child []Op, want []Model) {
	t.Helper()
	applyOps(t, base, parent)
	cache := base.CacheWrap()
	applyOps(t, cache, child)

	type bound struct {
		start, end []byte
		want       []Model
	}
	bounds := []bound{{nil, nil, want}}
	if n := len(want); n >= 3 {
		lo, hi := n/4, n-n/4
		bounds = append(bounds,
			bound{want[lo].Key, nil, want[lo:]},
			bound{nil, want[hi].Key, want[:hi]},
			bound{want[lo].Key, want[hi].Key, want[lo:hi]},
		)
	}
	if len(want) > 0 {
		// end is exclusive
		bounds = append(bounds, bound{nil, want[0].Key, nil})
	}

	for _, b := range bounds {
		it, err := cache.Iterator(b.start, b.end)
		assert.Nil(t, err)
		expectIteration(t, it, b.want)

		it, err = cache.ReverseIterator(b.start, b.end)
		assert.Nil(t, err)
		expectIteration(t, it, reversed(b.want))
	}
}

func expectIteration(t testing.TB, it Iterator, want []Model) {
	t.Helper()
	defer it.Release()
	for i, m := range want {
		key, value, err := it.Next()
		assert.Nil(t, err)
		if !bytes.Equal(m.Key, key) {
			t.Fatalf("position %d: want key %X, got %X", i, m.Key, key)
		}
		assert.Equal(t, m.Value, value)
	}
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("want end of iteration, got %+v", err)
	}
}

func applyOps(t testing.TB, out SetDeleter, ops []Op) {
	t.Helper()
	for i, op := range ops {
		if err := op.Apply(out); err != nil {
			t.Fatalf("op %d: %s", i, err)
		}
	}
}

func randKeys(count, size int) [][]byte {
	res := make([][]byte, count)
	for i := range res {
		res[i] = make([]byte, size)
		if _, err := rand.Read(res[i]); err != nil {
			panic(fmt.Sprintf("random source: %s", err))
		}
	}
	return res
}

func randModels(count, keySize, valueSize int) []Model {
	keys := randKeys(count, keySize)
	vals := randKeys(count, valueSize)
	res := make([]Model, count)
	for i := range res {
		res[i] = Pair(keys[i], vals[i])
	}
	return res
}

func sortedByKey(ms []Model) []Model {
	res := append([]Model(nil), ms...)
	sort.Slice(res, func(i, j int) bool {
		return bytes.Compare(res[i].Key, res[j].Key) < 0
	})
	return res
}

func reversed(ms []Model) []Model {
	res := make([]Model, len(ms))
	for i, m := range ms {
		res[len(ms)-1-i] = m
	}
	return res
}

func setOps(ms []Model) []Op {
	ops := make([]Op, len(ms))
	for i, m := range ms {
		ops[i] = SetOp(m.Key, m.Value)
	}
	return ops
}

func delOps(ms []Model) []Op {
	ops := make([]Op, len(ms))
	for i, m := range ms {
		ops[i] = DelOp(m.Key)
	}
	return ops
}
