package orm

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
)

// queryPrefix returns every model whose key starts with prefix, sorted by
// key.
func queryPrefix(db weave.ReadOnlyKVStore, prefix []byte) ([]weave.Model, error) {
	start, end := prefixRange(prefix)
	it, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var models []weave.Model
	for {
		key, value, err := it.Next()
		switch {
		case errors.ErrIteratorDone.Is(err):
			return models, nil
		case err != nil:
			return nil, err
		}
		models = append(models, weave.Model{Key: key, Value: value})
	}
}

// prefixRange returns the iterator bounds covering all keys with the given
// prefix. The end is the shortest key greater than every such key, or nil
// when the prefix is all 0xFF bytes.
func prefixRange(prefix []byte) (start, end []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xFF {
			end = append([]byte(nil), prefix[:i+1]...)
			end[i]++
			return prefix, end
		}
	}
	return prefix, nil
}
