package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrVaultUnavailable     = errors.New("vault store unavailable")
	ErrSchedulerUnavailable = errors.New("scheduling service unavailable")
)
