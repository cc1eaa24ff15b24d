package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrNotFound     = errors.New("not found")
	ErrDuplicateTag = errors.New("tag already present")
	ErrTagLimit     = errors.New("tag limit reached")
	ErrLastEntry    = errors.New("cannot remove the last entry")
	ErrBusy         = errors.New("a save is already in progress")
)
