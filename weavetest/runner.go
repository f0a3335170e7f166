package weavetest

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Tester is the subset of testing.TB used by WeaveRunner.
type Tester interface {
	Helper()
	Fatalf(string, ...interface{})
}

// WeaveApp is the transaction and query API of an application, as seen from
// inside a block.
type WeaveApp interface {
	DeliverTx(weave.Tx) error
	CheckTx(weave.Tx) error
	Query(path string, data []byte) ([]weave.Model, error)
}

// WeaveRunner drives an ABCI application with weave values. It serializes
// transactions, decodes query results and produces blocks, each one second
// after the previous one.
type WeaveRunner struct {
	t       Tester
	app     abci.Application
	chainID string
	height  int64
	now     time.Time
}

var _ WeaveApp = (*WeaveRunner)(nil)

// NewWeaveRunner returns a runner whose first block is one second after
// start.
func NewWeaveRunner(t Tester, app abci.Application, chainID string, start time.Time) *WeaveRunner {
	return &WeaveRunner{t: t, app: app, chainID: chainID, now: start}
}

// InitChain loads genesis, serialized to JSON, in its own block. It fails
// the test if the genesis leaves the state unchanged.
func (w *WeaveRunner) InitChain(genesis interface{}) {
	w.t.Helper()
	raw, err := json.Marshal(genesis)
	if err != nil {
		w.t.Fatalf("genesis: %s", err)
	}
	changed := w.InBlock(func(WeaveApp) error {
		w.app.InitChain(abci.RequestInitChain{
			Time:          w.now,
			ChainId:       w.chainID,
			AppStateBytes: raw,
		})
		return nil
	})
	if !changed {
		w.t.Fatalf("genesis did not change the state")
	}
}

// InBlock runs fn within a new block and commits it. It returns whether the
// app hash changed. An error returned by fn fails the test.
func (w *WeaveRunner) InBlock(fn func(WeaveApp) error) bool {
	w.t.Helper()
	w.height++
	w.now = w.now.Add(time.Second)

	before := w.app.Info(abci.RequestInfo{}).LastBlockAppHash
	w.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{ChainID: w.chainID, Height: w.height, Time: w.now},
	})
	if err := fn(w); err != nil {
		w.t.Fatalf("block %d: %+v", w.height, err)
	}
	w.app.EndBlock(abci.RequestEndBlock{Height: w.height})
	return !bytes.Equal(before, w.app.Commit().Data)
}

func (w *WeaveRunner) CheckTx(tx weave.Tx) error {
	raw, err := proto.Marshal(tx)
	if err != nil {
		return errors.Wrap(err, "marshal tx")
	}
	res := w.app.CheckTx(raw)
	return resultErr(res.Code, res.Log)
}

func (w *WeaveRunner) DeliverTx(tx weave.Tx) error {
	raw, err := proto.Marshal(tx)
	if err != nil {
		return errors.Wrap(err, "marshal tx")
	}
	res := w.app.DeliverTx(raw)
	return resultErr(res.Code, res.Log)
}

// Query returns the models found by an ABCI query on the committed state.
func (w *WeaveRunner) Query(path string, data []byte) ([]weave.Model, error) {
	res := w.app.Query(abci.RequestQuery{Path: path, Data: data})
	if err := resultErr(res.Code, res.Log); err != nil {
		return nil, err
	}
	var keys, values resultSet
	if err := proto.Unmarshal(res.Key, &keys); err != nil {
		return nil, errors.Wrap(err, "query keys")
	}
	if err := proto.Unmarshal(res.Value, &values); err != nil {
		return nil, errors.Wrap(err, "query values")
	}
	if len(keys.Results) != len(values.Results) {
		return nil, errors.Wrapf(errors.ErrState, "%d keys and %d values", len(keys.Results), len(values.Results))
	}
	models := make([]weave.Model, len(keys.Results))
	for i, k := range keys.Results {
		models[i] = weave.Pair(k, values.Results[i])
	}
	return models, nil
}

// resultErr reports a non zero ABCI code as an ErrState error carrying the
// code and the log.
func resultErr(code uint32, log string) error {
	if code == errors.SuccessABCICode {
		return nil
	}
	return errors.Wrapf(errors.ErrState, "code %d: %s", code, log)
}

// resultSet has the wire format of the query result sets.
type resultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *resultSet) Reset()         { *m = resultSet{} }
func (m *resultSet) String() string { return proto.CompactTextString(m) }
func (*resultSet) ProtoMessage()    {}
