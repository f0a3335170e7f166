package app

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
)

// ChainInitializers returns an initializer running inits in order. The
// first failure stops the genesis load.
func ChainInitializers(inits ...weave.Initializer) weave.Initializer {
	return initializers(inits)
}

type initializers []weave.Initializer

func (inits initializers) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	for i, init := range inits {
		if err := init.FromGenesis(opts, params, kv); err != nil {
			return errors.Wrapf(err, "initializer %d (%T)", i, init)
		}
	}
	return nil
}
