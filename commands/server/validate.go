package server

import (
	"encoding/json"
	"os"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/store"
)

// ValidateGenesis runs ini against the application state of each genesis
// file. Every file is loaded into its own in-memory store and nothing is
// persisted.
func ValidateGenesis(ini weave.Initializer, paths []string) error {
	for _, path := range paths {
		state, err := readAppState(path)
		if err != nil {
			return errors.Wrap(err, path)
		}
		if err := ini.FromGenesis(state, weave.GenesisParams{}, store.MemStore()); err != nil {
			return errors.Wrapf(err, "%s: initialize", path)
		}
	}
	return nil
}

func readAppState(path string) (weave.Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "read: %s", err)
	}
	var doc struct {
		State weave.Options `json:"app_state"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decode: %s", err)
	}
	return doc.State, nil
}
