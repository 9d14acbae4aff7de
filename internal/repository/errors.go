// Package repository holds the catalog snapshot that every query, flow and
// store reads from, and the loader that builds it from MySQL.  The sentinel
// errors below let handlers distinguish failure scenarios without string
// matching.
package repository

import "errors"

// ErrNotFound is returned when a lookup finds nothing.  Handlers should
// translate this into an HTTP 404 response, or 401 during sign-in.
var ErrNotFound = errors.New("not found")

// ErrInvalidPassword is returned when a password does not match the stored
// hash.
var ErrInvalidPassword = errors.New("invalid password")
