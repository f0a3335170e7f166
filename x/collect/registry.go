package collect

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/x/currency"
)

// RegistrySnapshot is a read only view of the global configuration, taken
// once per processed message.
type RegistrySnapshot interface {
	// IsWhitelisted returns true if a publication can be priced in given
	// currency.
	IsWhitelisted(ticker string) (bool, error)
	// Treasury is the address that receives the protocol fee.
	Treasury() weave.Address
	// TreasuryFeeBps is the protocol fee taken from every collection.
	TreasuryFeeBps() uint32
	// Hub is the only caller allowed to initialize and collect.
	Hub() weave.Address
}

// Registry provides snapshots of the global configuration.
type Registry interface {
	Snapshot(db weave.ReadOnlyKVStore) (RegistrySnapshot, error)
}

// NewRegistry returns a registry that reads the collect configuration and
// uses the currency extension as the whitelist.
func NewRegistry() Registry {
	return registry{tokens: currency.NewTokenInfoBucket()}
}

type registry struct {
	tokens *currency.TokenInfoBucket
}

func (r registry) Snapshot(db weave.ReadOnlyKVStore) (RegistrySnapshot, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	return &snapshot{
		db:     db,
		tokens: r.tokens,
		conf:   *conf,
	}, nil
}

type snapshot struct {
	db     weave.ReadOnlyKVStore
	tokens *currency.TokenInfoBucket
	conf   Configuration
}

func (s *snapshot) IsWhitelisted(ticker string) (bool, error) {
	return s.tokens.IsRegistered(s.db, ticker)
}

func (s *snapshot) Treasury() weave.Address { return s.conf.Treasury }
func (s *snapshot) TreasuryFeeBps() uint32  { return s.conf.TreasuryFeeBps }
func (s *snapshot) Hub() weave.Address      { return s.conf.Hub }
