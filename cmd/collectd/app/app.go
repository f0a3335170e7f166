// Package app wires the extensions into the collectd application.
package app

import (
	"context"
	"path/filepath"
	"strings"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/app"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/store/iavl"
	"github.com/iov-one/weave-collect/x"
	"github.com/iov-one/weave-collect/x/cash"
	"github.com/iov-one/weave-collect/x/collect"
	"github.com/iov-one/weave-collect/x/currency"
	"github.com/iov-one/weave-collect/x/sigs"
	"github.com/iov-one/weave-collect/x/utils"
	"github.com/iov-one/weave-collect/x/vault"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const appName = "collectd"

// Authenticator accepts signatures verified by the sigs decorator.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns the decorators run before every message handler.
func Chain(auth x.Authenticator, ctrl cash.CoinMover) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		utils.NewKeyTagger(),
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		cash.NewFeeDecorator(auth, ctrl),
		// Nonce and fee are kept even when the message fails.
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router dispatches messages of every extension. A non nil issuer is the
// only address allowed to register currencies.
func Router(auth x.Authenticator, ctrl cash.Controller, issuer weave.Address) *app.Router {
	r := app.NewRouter()
	cash.RegisterRoutes(r, auth, ctrl)
	currency.RegisterRoutes(r, auth, issuer)
	vault.RegisterRoutes(r, auth, ctrl)
	sigs.RegisterRoutes(r, auth)
	collect.RegisterRoutes(r, auth, ctrl, vault.NewController(ctrl))
	return r
}

// QueryRouter exposes "/wallets", "/allowances", "/auth", "/tokens",
// "/vaults", "/collectconfigs" and "/collects".
func QueryRouter() weave.QueryRouter {
	r := weave.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		currency.RegisterQuery,
		vault.RegisterQuery,
		sigs.RegisterQuery,
		collect.RegisterQuery,
	)
	return r
}

// Stack returns the decorated router.
func Stack(issuer weave.Address) weave.Handler {
	auth := Authenticator()
	ctrl := cash.NewController(cash.NewBucket())
	return Chain(auth, ctrl).WithHandler(Router(auth, ctrl, issuer))
}

// NewApplication returns the collectd ABCI application persisting its state
// in kv.
func NewApplication(kv weave.CommitKVStore, logger log.Logger, debug bool) app.BaseApp {
	store := app.NewStoreApp(appName, kv, QueryRouter(), context.Background())
	base := app.NewBaseApp(store, TxDecoder, Stack(nil), debug)
	base.WithInit(Initializers())
	base.WithLogger(logger)
	return base
}

// GenerateApp creates the application served by the start command. The
// database lives in the home directory, an empty home keeps it in memory.
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "collect.db")
	}
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}
	return NewApplication(kv, logger, debug), nil
}

// CommitKVStore opens the iavl store at dbPath. An empty path returns an in
// memory store.
func CommitKVStore(dbPath string) (weave.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "database path %q: %s", dbPath, err)
	}
	// The store adds the ".db" suffix itself.
	path = strings.TrimSuffix(path, filepath.Ext(path))
	return iavl.NewCommitStore(filepath.Dir(path), filepath.Base(path)), nil
}
