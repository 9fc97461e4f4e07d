package domain

import "errors"

var (
	ErrInvalidMessage = errors.New("message is required")
	ErrNoRecipients   = errors.New("at least one recipient email is required")
	ErrInvalidEmail   = errors.New("invalid recipient email")
)
