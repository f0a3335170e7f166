package weavetest

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	weave "github.com/iov-one/weave-collect"
	"github.com/iov-one/weave-collect/crypto"
)

// NewCondition returns the signature condition of a fresh ed25519 key.
func NewCondition() weave.Condition {
	return crypto.GenPrivKeyEd25519().PublicKey().Condition()
}

// RandomAddr returns a valid address made of random bytes.
func RandomAddr(t testing.TB) weave.Address {
	t.Helper()
	raw := make([]byte, weave.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("random address: %s", err)
	}
	return mustAddress(t, raw)
}

// DecodeAddr decodes a hex encoded address.
func DecodeAddr(t testing.TB, encoded string) weave.Address {
	t.Helper()
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		t.Fatalf("decode %q: %s", encoded, err)
	}
	return mustAddress(t, raw)
}

func mustAddress(t testing.TB, raw []byte) weave.Address {
	t.Helper()
	a := weave.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("invalid address %X: %s", raw, err)
	}
	return a
}
