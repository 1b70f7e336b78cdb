package service

import "errors"

// ErrValidation indicates missing or malformed input. Maps to HTTP 400.
var ErrValidation = errors.New("invalid input")

// ErrUnauthorized indicates the caller lacks the role required for the
// operation. Maps to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")
