package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/weave-collect/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	records := NewSequence("collects", "id")
	allowances := NewSequence("allowances", "id")
	otherName := NewSequence("collects", "other")

	n, err := records.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	var prev []byte
	for i := int64(1); i <= 300; i++ {
		raw, err := records.NextVal(db)
		require.NoError(t, err)
		assert.Equal(t, i, DecodeSequence(raw))
		assert.Equal(t, 1, bytes.Compare(raw, prev), "keys must sort numerically")
		prev = raw
	}

	n, err = allowances.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "bucket name separates sequences")

	n, err = otherName.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "sequence name separates sequences")

	n, err = NewSequence("collects", "id").Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(300), n, "state is persisted")
}
