package repository

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrNotFound        = errors.New("activity not found")
	ErrAlreadySignedUp = errors.New("student already signed up")
	ErrNotSignedUp     = errors.New("student not signed up")
	ErrActivityFull    = errors.New("activity is full")
)
