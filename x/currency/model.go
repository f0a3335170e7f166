package currency

import (
	"regexp"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
	"github.com/iov-one/weave-collect/orm"
)

var isTokenName = regexp.MustCompile(`^[A-Za-z0-9 \-_:]{3,32}$`).MatchString

var _ orm.Model = (*TokenInfo)(nil)

func (t *TokenInfo) Validate() error {
	if err := t.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if !isTokenName(t.Name) {
		return errors.Wrapf(errors.ErrModel, "invalid token name %v", t.Name)
	}
	return nil
}

// TokenInfoBucket stores TokenInfo instances, using ticker name (currency
// symbol) as the key.
type TokenInfoBucket struct {
	orm.ModelBucket
}

func NewTokenInfoBucket() *TokenInfoBucket {
	return &TokenInfoBucket{
		ModelBucket: orm.NewModelBucket("tokeninfo", &TokenInfo{}),
	}
}

// Create stores a new token. A ticker can be registered only once.
func (b *TokenInfoBucket) Create(db weave.KVStore, ticker string, t *TokenInfo) error {
	if !coin.IsCC(ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", ticker)
	}
	switch err := b.Has(db, []byte(ticker)); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "ticker %s", ticker)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	_, err := b.Put(db, []byte(ticker), t)
	return err
}

// Token returns the information stored for given ticker. ErrNotFound is
// returned if the token was never registered.
func (b *TokenInfoBucket) Token(db weave.ReadOnlyKVStore, ticker string) (*TokenInfo, error) {
	var t TokenInfo
	if err := b.One(db, []byte(ticker), &t); err != nil {
		return nil, errors.Wrapf(err, "ticker %s", ticker)
	}
	return &t, nil
}

// IsRegistered returns true if given ticker was registered.
func (b *TokenInfoBucket) IsRegistered(db weave.ReadOnlyKVStore, ticker string) (bool, error) {
	if !coin.IsCC(ticker) {
		return false, nil
	}
	switch err := b.Has(db, []byte(ticker)); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}
