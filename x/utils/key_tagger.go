package utils

import (
	"encoding/hex"
	"strings"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/store"
	"github.com/tendermint/tendermint/libs/common"
)

var (
	recordSet    = []byte("s")
	recordDelete = []byte("d")
)

// KeyTagger records every key written below it and adds one tag per key to
// a successful delivery. The tag key is the upper case hex of the store key
// and the value is "s" for a set or "d" for a delete. Subscribers use it to
// follow a single publication or record.
type KeyTagger struct{}

var _ weave.Decorator = KeyTagger{}

// NewKeyTagger returns a KeyTagger decorator.
func NewKeyTagger() KeyTagger {
	return KeyTagger{}
}

// Check does nothing.
func (KeyTagger) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver passes a recording store to next and tags the keys it wrote.
// Failed deliveries get no tags.
func (KeyTagger) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	rec := store.NewRecordingStore(db)
	res, err := next.Deliver(ctx, rec, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, changesToTags(rec.KVPairs())...)
	return res, nil
}

func changesToTags(changes map[string][]byte) []weave.KVPair {
	if len(changes) == 0 {
		return nil
	}
	tags := make(common.KVPairs, 0, len(changes))
	for k, v := range changes {
		value := recordSet
		if v == nil {
			value = recordDelete
		}
		key := strings.ToUpper(hex.EncodeToString([]byte(k)))
		tags = append(tags, weave.Tag(key, value))
	}
	tags.Sort()
	return tags
}
