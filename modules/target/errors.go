package target

import "errors"

var (
	ErrNotFound      = errors.New("target not found")
	ErrDuplicateName = errors.New("target with this name already exists")
	ErrRejected      = errors.New("target definition is not valid")
	ErrStorage       = errors.New("target storage failure")
)
