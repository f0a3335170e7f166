package collect

import (
	"github.com/iov-one/weave-collect/errors"
)

// Unauthorized callers are rejected with errors.ErrUnauthorized and a second
// initialization of a publication with errors.ErrDuplicate.
var (
	ErrInvalidParameters          = errors.Register(300, "invalid parameters")
	ErrTooManyRecipients          = errors.Register(301, "too many recipients")
	ErrInvalidRecipientSplits     = errors.Register(302, "invalid recipient splits")
	ErrRecipientSplitCannotBeZero = errors.Register(303, "recipient split cannot be zero")
	ErrFollowerRequired           = errors.Register(304, "follower required")
	ErrCollectionExpired          = errors.Register(305, "collection expired")
	ErrLimitExceeded              = errors.Register(306, "collect limit exceeded")
	ErrPublicationNotFound        = errors.Register(307, "publication not found")
	ErrParameterMismatch          = errors.Register(308, "parameter mismatch")
)
