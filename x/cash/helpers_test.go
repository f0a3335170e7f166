package cash

import (
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/coin"
)

func assertBalance(t testing.TB, ctrl Balancer, db weave.ReadOnlyKVStore, addr weave.Address, want coin.Coin) {
	t.Helper()
	got, err := ctrl.Balance(db, addr)
	if err != nil {
		t.Fatalf("cannot get balance: %s", err)
	}
	if !got.Equals(coin.Coins{&want}) {
		t.Fatalf("want %s balance, got %v", want, got)
	}
}
