// Package common contains sentinel errors shared across wallboard components.
package common

import "errors"

var (

	// repository specific errors
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already exists")

	// auth specific errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// agent specific errors
	ErrUnknownAgentType = errors.New("unknown agent type")

	// service specific errors
	ErrInternal = errors.New("internal error")
)
