package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrMissingConfig is returned when the MongoDB connection string is not configured.
var ErrMissingConfig = errors.New("MONGODB_URI is not set")
