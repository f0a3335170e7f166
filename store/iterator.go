package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/weave-collect/errors"
)

// collectRange returns all btree items (set and deleted) with a key in the
// [start, end) range. A nil start or end means no limit on that side.
// Items are returned in descending order if reverse is set.
func collectRange(bt *btree.BTree, start, end []byte, reverse bool) []entry {
	var items []entry
	collect := func(item btree.Item) bool {
		items = append(items, item.(entry))
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(entry{key: end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(entry{key: start}, collect)
	default:
		bt.AscendRange(entry{key: start}, entry{key: end}, collect)
	}
	if reverse {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}
	return items
}

// mergedIterator combines the cached btree items with the parent store
// iterator. Cached items shadow parent values with the same key and deleted
// items hide them.
type mergedIterator struct {
	local   []entry
	idx     int
	parent  Iterator
	reverse bool

	// One element lookahead of the parent iterator.
	pKey, pValue []byte
	pLoaded      bool
	pDone        bool
}

var _ Iterator = (*mergedIterator)(nil)

func newMergedIterator(local []entry, parent Iterator, reverse bool) *mergedIterator {
	return &mergedIterator{
		local:   local,
		parent:  parent,
		reverse: reverse,
	}
}

func (m *mergedIterator) loadParent() error {
	if m.pLoaded || m.pDone {
		return nil
	}
	key, value, err := m.parent.Next()
	switch {
	case err == nil:
		m.pKey, m.pValue, m.pLoaded = key, value, true
	case errors.ErrIteratorDone.Is(err):
		m.pDone = true
	default:
		return err
	}
	return nil
}

// Next returns the next key/value pair, or ErrIteratorDone.
func (m *mergedIterator) Next() ([]byte, []byte, error) {
	for {
		if err := m.loadParent(); err != nil {
			return nil, nil, err
		}

		hasLocal := m.idx < len(m.local)
		if !hasLocal && m.pDone {
			return nil, nil, errors.Wrap(errors.ErrIteratorDone, "cache iterator")
		}

		useLocal := hasLocal
		if hasLocal && !m.pDone {
			cmp := bytes.Compare(m.local[m.idx].key, m.pKey)
			if m.reverse {
				cmp = -cmp
			}
			switch {
			case cmp > 0:
				useLocal = false
			case cmp == 0:
				// Cached value shadows the parent.
				m.pLoaded = false
			}
		}

		if !useLocal {
			m.pLoaded = false
			return m.pKey, m.pValue, nil
		}

		e := m.local[m.idx]
		m.idx++
		if !e.deleted {
			return e.key, e.value, nil
		}
	}
}

// Release releases the Iterator.
func (m *mergedIterator) Release() {
	m.parent.Release()
	m.local = nil
}
