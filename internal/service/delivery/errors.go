package delivery

import "errors"

var (
	// ErrNoRecipient means the recipient carries neither contact info nor a
	// user id, so no channel can be attempted.
	ErrNoRecipient = errors.New("delivery: recipient has no user id")
)
