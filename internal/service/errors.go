package service

import "errors"

// Precondition failures. The relay treats these as no-ops: no turn is
// created and nothing is persisted. Controllers map them to 4xx.
var (
	ErrEmptyMessage       = errors.New("message content is empty")
	ErrNoActiveSession    = errors.New("chat session not found or access denied")
	ErrUnauthenticated    = errors.New("user not authenticated")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("resource not found")
)
