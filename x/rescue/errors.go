package rescue

import (
	"github.com/iov-one/weave/errors"
)

// Error codes
// x/rescue reserves 1500 ~ 1509.

var (
	// ErrInitialized is returned when an instance that was already
	// initialized, or a template, is initialized again.
	ErrInitialized = errors.Register(1500, "already initialized")

	// ErrSend is returned when a release transfer cannot be completed.
	ErrSend = errors.Register(1501, "failed to send")
)
