package domain

import "errors"

var (
	ErrInvalidProjectID   = errors.New("invalid project id")
	ErrInvalidProject     = errors.New("invalid project")
	ErrInvalidProjectName = errors.New("project name is required")
	ErrInvalidSortColumn  = errors.New("invalid sort column")
)
