package orm

import (
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/store"
	"github.com/iov-one/weave-collect/weavetest/assert"
)

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix, end []byte
	}{
		"no prefix":           {nil, nil},
		"single byte":         {[]byte{0x41}, []byte{0x42}},
		"last byte increased": {[]byte{1, 2, 3}, []byte{1, 2, 4}},
		"trailing max bytes":  {[]byte{7, 9, 0xFF, 0xFF}, []byte{7, 10}},
		"only max bytes":      {[]byte{0xFF, 0xFF}, nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.Equal(t, tc.prefix, start)
			assert.Equal(t, tc.end, end)
		})
	}
}

func TestQueryPrefix(t *testing.T) {
	db := store.MemStore()
	pub1 := weave.Pair([]byte("pub:alice:1"), []byte{1})
	pub2 := weave.Pair([]byte("pub:alice:2"), []byte{2})
	pub3 := weave.Pair([]byte("pub:bob:1"), []byte{3})
	rec := weave.Pair([]byte("rec:alice:1"), []byte{4})
	edge := weave.Pair([]byte{0xFF, 0xFF, 1}, []byte{5})
	for _, m := range []weave.Model{rec, pub3, pub2, edge, pub1} {
		assert.Nil(t, db.Set(m.Key, m.Value))
	}

	cases := map[string]struct {
		prefix []byte
		want   []weave.Model
	}{
		"owner publications": {[]byte("pub:alice:"), []weave.Model{pub1, pub2}},
		"all publications":   {[]byte("pub:"), []weave.Model{pub1, pub2, pub3}},
		"exact key":          {[]byte("rec:alice:1"), []weave.Model{rec}},
		"no match":           {[]byte("pub:carol:"), nil},
		"max byte prefix":    {[]byte{0xFF, 0xFF}, []weave.Model{edge}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := queryPrefix(db, tc.prefix)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
