package currency

import (
	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
	"github.com/iov-one/weave-collect/errors"
)

var _ weave.Msg = (*CreateMsg)(nil)

const pathCreateMsg = "currency/create"

func (CreateMsg) Path() string {
	return pathCreateMsg
}

func (t *CreateMsg) Validate() error {
	var err error
	err = errors.AppendField(err, "Metadata", t.Metadata.Validate())
	if !coin.IsCC(t.Ticker) {
		err = errors.Append(err, errors.Field("Ticker", errors.ErrCurrency, "invalid ticker %q", t.Ticker))
	}
	if !isTokenName(t.Name) {
		err = errors.Append(err, errors.Field("Name", errors.ErrInput, "invalid token name %v", t.Name))
	}
	return err
}
