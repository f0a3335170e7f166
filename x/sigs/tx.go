package sigs

import (
	"github.com/iov-one/weave-collect/errors"
)

// SignedTx is a transaction whose signatures the Decorator verifies.
type SignedTx interface {
	// GetSignBytes returns the bytes covered by the signatures.
	GetSignBytes() ([]byte, error)
	GetSignatures() []*StdSignature
}

func (s *StdSignature) Validate() error {
	switch {
	case s.GetSequence() < 0:
		return errors.Wrap(ErrInvalidSequence, "negative")
	case s.Pubkey == nil:
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	case s.Signature == nil:
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}
