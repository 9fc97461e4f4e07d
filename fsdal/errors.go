package fsdal

import "errors"

// ErrNotFound is returned by DALs when the requested document does not exist.
var ErrNotFound = errors.New("document not found")
