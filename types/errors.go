package types

import "github.com/cockroachdb/errors"

var (
	ErrProfileNotRegistered = errors.New("resource profile is not registered, attach it to a stage under a running session first")
	ErrNoSession            = errors.New("no active engine session")
	ErrSessionClosed        = errors.New("engine session closed")

	ErrInvalidResourceName = errors.New("invalid resource name")
	ErrInvalidAmount       = errors.New("invalid resource amount")
	ErrTooManyProfiles     = errors.New("too many registered resource profiles")

	ErrConfigInvaild = errors.New("config invaild")
)
