package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp implements the state related part of abci.Application: genesis,
// block lifecycle, queries and commits. Embed it to add transaction
// processing.
//
// ABCI calls that carry no user input have no way to report an error, so
// storage failures during them panic and stop the node.
type StoreApp struct {
	logger log.Logger
	name   string
	store  *CommitStore

	initializer weave.Initializer
	queryRouter weave.QueryRouter

	// chainID is empty until genesis is loaded.
	chainID string

	// baseContext is valid for the lifetime of the app. blockContext is
	// rebuilt on every BeginBlock.
	baseContext  weave.Context
	blockContext weave.Context
}

// NewStoreApp loads the latest state of store. It panics when the state
// cannot be read.
func NewStoreApp(name string, store weave.CommitKVStore, queryRouter weave.QueryRouter, baseContext weave.Context) *StoreApp {
	s := &StoreApp{
		name:        name,
		store:       NewCommitStore(store),
		queryRouter: queryRouter,
		baseContext: baseContext,
	}
	s = s.WithLogger(log.NewNopLogger())

	if s.chainID = mustLoadChainID(s.DeliverStore()); s.chainID != "" {
		s.baseContext = weave.WithChainID(s.baseContext, s.chainID)
	}
	info := s.mustCommitInfo()
	s.blockContext = weave.WithHeight(s.baseContext, info.Version)
	return s
}

func (s *StoreApp) mustCommitInfo() weave.CommitID {
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	return info
}

func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// WithInit sets the initializer called by InitChain.
func (s *StoreApp) WithInit(init weave.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger sets the app logger, also used by every context the app
// creates.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.baseContext = weave.WithLogger(s.baseContext, logger)
	return s
}

func (s *StoreApp) Logger() log.Logger                   { return s.logger }
func (s *StoreApp) BlockContext() weave.Context          { return s.blockContext }
func (s *StoreApp) DeliverStore() weave.CacheableKVStore { return s.store.DeliverStore() }
func (s *StoreApp) CheckStore() weave.CacheableKVStore   { return s.store.CheckStore() }

// loadAppState saves the chain ID and passes the genesis app_state to init.
// It fails if the chain was already initialized.
func (s *StoreApp) loadAppState(raw []byte, params weave.GenesisParams, chainID string, init weave.Initializer) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "chain %q already initialized", s.chainID)
	}
	if len(raw) == 0 {
		return errors.Wrap(errors.ErrState, "genesis has no app_state")
	}
	var opts weave.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return errors.Wrapf(errors.ErrInput, "app_state: %s", err)
	}
	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.baseContext = weave.WithChainID(s.baseContext, chainID)
	if init == nil {
		return nil
	}
	return init.FromGenesis(opts, params, s.DeliverStore())
}

// Info returns the last committed height and app hash.
func (s *StoreApp) Info(abci.RequestInfo) abci.ResponseInfo {
	info := s.mustCommitInfo()
	s.logger.Info("Info synced", "height", info.Version, "hash", fmt.Sprintf("%X", info.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "not implemented"}
}

// Query serves the last committed state. The request path names a query
// handler, optionally followed by "?<mod>", for example "/collects?prefix".
// Key and Value of the response are ResultSet messages of equal length.
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod := splitPath(req.Path)
	qh := s.queryRouter.Handler(path)
	if qh == nil {
		return queryError(errors.Wrapf(errors.ErrNotFound, "query path %q", req.Path))
	}

	info, err := s.store.CommitInfo()
	if err != nil {
		return queryError(err)
	}
	db := s.store.committed.CacheWrap()
	defer db.Discard()

	models, err := qh.Query(db, mod, req.Data)
	if err != nil {
		return queryError(err)
	}
	keys, values := splitModels(models)
	res := abci.ResponseQuery{Height: info.Version}
	if res.Key, err = proto.Marshal(keys); err != nil {
		return queryError(err)
	}
	if res.Value, err = proto.Marshal(values); err != nil {
		return queryError(err)
	}
	return res
}

// splitPath returns the path and the query modifier following "?".
func splitPath(path string) (string, string) {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, ""
}

func queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{Code: code, Log: log}
}

// Commit persists the block state.
func (s *StoreApp) Commit() abci.ResponseCommit {
	id, err := s.store.Commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("Commit synced", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

// InitChain loads the genesis app_state. It runs once per chain, not on
// restarts.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	params := weave.GenesisParams{InitialHeight: s.mustCommitInfo().Version}
	if err := s.loadAppState(req.AppStateBytes, params, req.ChainId, s.initializer); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

// BeginBlock builds the context used by all transactions of the block.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := weave.WithHeader(s.baseContext, req.Header)
	ctx = weave.WithHeight(ctx, req.Header.GetHeight())
	s.blockContext = weave.WithBlockTime(ctx, req.Header.GetTime())
	return abci.ResponseBeginBlock{}
}

func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}
