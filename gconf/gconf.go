package gconf

import (
	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
)

// ReadStore is the part of weave.ReadOnlyKVStore needed to load a
// configuration.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is the part of weave.KVStore needed to save a configuration.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is a protobuf message holding the settings of a single
// extension.
type Configuration interface {
	proto.Message
	Validate() error
}

// key returns the database key of the configuration of pkg.
func key(pkg string) []byte {
	return append([]byte("_c:"), pkg...)
}

// Save validates conf and stores it as the configuration of pkg, replacing
// any previous value.
func Save(db Store, pkg string, conf Configuration) error {
	if err := conf.Validate(); err != nil {
		return errors.Wrapf(err, "%s configuration", pkg)
	}
	raw, err := proto.Marshal(conf)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "marshal %s configuration: %s", pkg, err)
	}
	return db.Set(key(pkg), raw)
}

// Load reads the configuration of pkg into dst. ErrNotFound is returned when
// nothing was saved yet.
func Load(db ReadStore, pkg string, dst Configuration) error {
	raw, err := db.Get(key(pkg))
	switch {
	case err != nil:
		return errors.Wrapf(err, "load %s configuration", pkg)
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "%s configuration", pkg)
	}
	if err := proto.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal %s configuration: %s", pkg, err)
	}
	return nil
}

// InitConfig saves the genesis configuration of pkg, found under
// "conf" -> pkg in opts. ErrNotFound is returned when the genesis has no such
// entry so that callers can decide whether the configuration is optional.
func InitConfig(db Store, opts weave.Options, pkg string, conf Configuration) error {
	var all weave.Options
	if err := opts.ReadOptions("conf", &all); err != nil {
		return errors.Wrap(err, "genesis conf")
	}
	if _, ok := all[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "genesis conf has no %q entry", pkg)
	}
	if err := all.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "genesis conf %q", pkg)
	}
	return Save(db, pkg, conf)
}
