package gconf

import (
	"reflect"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/x"
)

// OwnedConfig is a configuration that can be changed by its owner.
type OwnedConfig interface {
	Configuration
	GetOwner() weave.Address
}

// InitAdminFunc returns the address allowed to create a configuration that
// does not exist yet.
type InitAdminFunc func(weave.ReadOnlyKVStore) (weave.Address, error)

// UpdateConfigurationHandler applies a patch message to the configuration of
// a single package. The message must carry the new values in a field named
// Patch, of the same type as the configuration. Zero value fields of the
// patch leave the current value unchanged.
type UpdateConfigurationHandler struct {
	pkg       string
	config    OwnedConfig
	auth      x.Authenticator
	initAdmin InitAdminFunc
}

var _ weave.Handler = UpdateConfigurationHandler{}

// NewUpdateConfigurationHandler returns a handler that updates the
// configuration of pkg. config is used as the loading destination and must
// be a pointer to the configuration struct.
//
// Changes must be signed by the current owner. When no configuration exists
// yet, initAdmin, if given, names who may create it.
func NewUpdateConfigurationHandler(pkg string, config OwnedConfig, auth x.Authenticator, initAdmin InitAdminFunc) UpdateConfigurationHandler {
	return UpdateConfigurationHandler{
		pkg:       pkg,
		config:    config,
		auth:      auth,
		initAdmin: initAdmin,
	}
}

func (h UpdateConfigurationHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := h.update(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h UpdateConfigurationHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := h.update(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

func (h UpdateConfigurationHandler) update(ctx weave.Context, db weave.KVStore, tx weave.Tx) error {
	h.config.Reset()
	if err := h.authorize(ctx, db); err != nil {
		return err
	}
	p, err := patchOf(tx)
	if err != nil {
		return err
	}
	if err := apply(h.config, p); err != nil {
		return err
	}
	return Save(db, h.pkg, h.config)
}

// authorize loads the current configuration into h.config and checks the
// signers.
func (h UpdateConfigurationHandler) authorize(ctx weave.Context, db weave.KVStore) error {
	err := Load(db, h.pkg, h.config)
	switch {
	case err == nil:
		owner := h.config.GetOwner()
		if owner == nil || !h.auth.HasAddress(ctx, owner) {
			return errors.Wrap(errors.ErrUnauthorized, "configuration owner signature required")
		}
		return nil
	case !errors.ErrNotFound.Is(err):
		return err
	case h.initAdmin == nil:
		return errors.Wrap(errors.ErrUnauthorized, "configuration cannot be created")
	}
	admin, err := h.initAdmin(db)
	if err != nil {
		return errors.Wrap(err, "init admin")
	}
	if !h.auth.HasAddress(ctx, admin) {
		return errors.Wrap(errors.ErrUnauthorized, "init admin signature required")
	}
	return nil
}

// apply copies every non zero field of p into config. Both must be pointers
// to the same struct type.
func apply(config, p OwnedConfig) error {
	if reflect.TypeOf(config) != reflect.TypeOf(p) {
		return errors.Wrapf(errors.ErrMsg, "patch of type %T cannot update %T", p, config)
	}
	dst := reflect.ValueOf(config).Elem()
	src := reflect.ValueOf(p).Elem()
	for i := 0; i < src.NumField(); i++ {
		if f := src.Field(i); !f.IsZero() {
			dst.Field(i).Set(f)
		}
	}
	return nil
}

// patchOf returns the validated Patch field of the transaction message.
func patchOf(tx weave.Tx) (OwnedConfig, error) {
	msg, err := tx.GetMsg()
	switch {
	case err != nil:
		return nil, err
	case msg == nil:
		return nil, errors.Wrap(errors.ErrState, "missing message")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "%T is not a struct pointer", msg)
	}
	field := v.Elem().FieldByName("Patch")
	if !field.IsValid() || field.Kind() != reflect.Ptr {
		return nil, errors.Wrapf(errors.ErrInput, "%T has no Patch field", msg)
	}
	if field.IsNil() {
		return nil, errors.Field("Patch", errors.ErrEmpty, "required")
	}
	p, ok := field.Interface().(OwnedConfig)
	if !ok {
		return nil, errors.Wrapf(errors.ErrInput, "%T is not a configuration", field.Interface())
	}
	return p, nil
}
