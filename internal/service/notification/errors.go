package notification

import "errors"

var (
	ErrNotFound        = errors.New("notification not found")
	ErrInvalidType     = errors.New("unknown notification type")
	ErrInvalidPriority = errors.New("unknown notification priority")
	ErrInvalidExpiry   = errors.New("expiry must not precede creation")
	ErrNoSubscription  = errors.New("push subscription not found")
)
