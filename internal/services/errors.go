package services

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/codec"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
)

var (
	ErrDuplicateEmail    = errors.New("an account with this email already exists")
	ErrAccountNotFound   = errors.New("no account found with this email")
	ErrInvalidCredential = errors.New("incorrect password")
	ErrNoActiveSession   = errors.New("no user logged in")
	ErrRecordNotFound    = errors.New("record not found")
	ErrForbidden         = errors.New("not allowed")
	ErrInvalidInput      = errors.New("invalid input")
	ErrContentRejected   = errors.New("content rejected")
	ErrInvalidIdentity   = errors.New("identity token could not be verified")
)

// Kind maps err to a stable machine-readable code.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateEmail):
		return "duplicate_email"
	case errors.Is(err, ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, ErrInvalidCredential):
		return "invalid_credential"
	case errors.Is(err, ErrNoActiveSession):
		return "no_active_session"
	case errors.Is(err, codec.ErrMalformedStoredValue):
		return "malformed_stored_value"
	case errors.Is(err, repository.ErrPersistenceFailure):
		return "persistence_failure"
	case errors.Is(err, ErrRecordNotFound):
		return "not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrContentRejected):
		return "content_rejected"
	case errors.Is(err, ErrInvalidIdentity):
		return "invalid_identity"
	default:
		return "internal"
	}
}
