package model

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the acting user is not the owner of the
	// resource being mutated.
	ErrForbidden = errors.New("forbidden")
	// ErrEmailTaken is returned when registering with an email that is
	// already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when login credentials do not match
	// a stored user.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidInput is returned when a required field is missing or
	// malformed.
	ErrInvalidInput = errors.New("invalid input")
)
