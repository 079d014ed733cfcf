// Package app implements application business logic for the keepnote service.
package app

import "errors"

// Ошибки уровня бизнес-логики.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
)
