package app

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
)

// CommitStore keeps the committed store together with the two cache layers
// used between commits: one for DeliverTx and one for CheckTx.
type CommitStore struct {
	committed weave.CommitKVStore
	deliver   weave.KVCacheWrap
	check     weave.KVCacheWrap
}

// NewCommitStore loads the latest version and panics if that fails.
func NewCommitStore(store weave.CommitKVStore) *CommitStore {
	if err := store.LoadLatestVersion(); err != nil {
		panic(err)
	}
	cs := &CommitStore{committed: store}
	cs.reset()
	return cs
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

func (cs *CommitStore) CommitInfo() (weave.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit persists the deliver cache and drops pending check state.
func (cs *CommitStore) Commit() (weave.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return weave.CommitID{}, errors.Wrap(err, "flush deliver cache")
	}
	cs.check.Discard()
	id, err := cs.committed.Commit()
	if err != nil {
		return id, err
	}
	cs.reset()
	return id, nil
}

func (cs *CommitStore) CheckStore() weave.CacheableKVStore   { return cs.check }
func (cs *CommitStore) DeliverStore() weave.CacheableKVStore { return cs.deliver }

// chainIDKey lives under the _wv: prefix reserved for application state.
const chainIDKey = "_wv:chainID"

// mustLoadChainID returns an empty string before genesis.
func mustLoadChainID(kv weave.ReadOnlyKVStore) string {
	raw, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		panic(err)
	}
	return string(raw)
}

// saveChainID writes the chain id once.
func saveChainID(kv weave.KVStore, chainID string) error {
	if !weave.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	key := []byte(chainIDKey)
	switch exists, err := kv.Has(key); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case exists:
		return errors.Wrap(errors.ErrUnauthorized, "chain id is set at genesis only")
	}
	return errors.Wrap(kv.Set(key, []byte(chainID)), "save chain id")
}
