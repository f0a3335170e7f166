package cash

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/orm"
)

// BucketName prefixes all balances.
const BucketName = "cash"

// Validate requires metadata and a normalized coin list.
func (s *Set) Validate() error {
	return errors.Append(
		errors.Field("Metadata", s.Metadata.Validate(), "invalid"),
		errors.Field("Coins", coin.Coins(s.GetCoins()).Validate(), "invalid"),
	)
}

// Wallet is the balance of a single address.
type Wallet struct {
	key   []byte
	value *Set
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet returns an empty wallet of addr.
func NewWallet(addr weave.Address) *Wallet {
	return &Wallet{
		key:   addr,
		value: &Set{Metadata: &weave.Metadata{Schema: 1}},
	}
}

// WalletWith returns a wallet of addr holding the normalized sum of coins.
func WalletWith(addr weave.Address, coins ...*coin.Coin) (*Wallet, error) {
	w := NewWallet(addr)
	sum, err := coin.Coins(nil).Combine(coins)
	if err != nil {
		return nil, err
	}
	w.value.Coins = sum
	return w, nil
}

func (w Wallet) Key() []byte        { return w.key }
func (w *Wallet) SetKey(key []byte) { w.key = key }
func (w Wallet) Value() orm.Model   { return w.value }
func (w Wallet) Coins() coin.Coins  { return coin.Coins(w.value.GetCoins()) }

func (w Wallet) Validate() error {
	if len(w.key) == 0 {
		return errors.Field("Key", errors.ErrEmpty, "required")
	}
	return w.value.Validate()
}

// Clone returns a deep copy.
func (w *Wallet) Clone() orm.Object {
	c := &Wallet{value: &Set{
		Metadata: w.value.Metadata,
		Coins:    w.Coins().Clone(),
	}}
	if len(w.key) != 0 {
		c.key = append([]byte(nil), w.key...)
	}
	return c
}

// Add increases the balance by c.
func (w *Wallet) Add(c coin.Coin) error {
	return w.update(w.Coins().Add(c))
}

// Subtract decreases the balance by c. The result may be negative, callers
// check funds first.
func (w *Wallet) Subtract(c coin.Coin) error {
	return w.update(w.Coins().Subtract(c))
}

func (w *Wallet) update(coins coin.Coins, err error) error {
	if err != nil {
		return err
	}
	w.value.Coins = coins
	return nil
}

// Bucket stores wallets keyed by address.
type Bucket struct {
	orm.Bucket
}

func NewBucket() Bucket {
	return Bucket{Bucket: orm.NewBucket(BucketName, NewWallet(nil))}
}

// Get returns the wallet of addr or nil.
func (b Bucket) Get(db weave.ReadOnlyKVStore, addr weave.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, addr)
	if err != nil || obj == nil {
		return nil, err
	}
	w, ok := obj.(*Wallet)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj)
	}
	return w, nil
}

func (b Bucket) Save(db weave.KVStore, w *Wallet) error {
	return b.Bucket.Save(db, w)
}

// GetOrCreate returns the stored wallet of addr or a new, unsaved one.
func (b Bucket) GetOrCreate(db weave.KVStore, addr weave.Address) (*Wallet, error) {
	w, err := b.Get(db, addr)
	if err == nil && w == nil {
		w = NewWallet(addr)
	}
	return w, err
}
