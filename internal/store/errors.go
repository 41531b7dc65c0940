package store

import "errors"

var (
	ErrDuplicateID = errors.New("store: duplicate id")
	ErrNotFound    = errors.New("store: not found")
)
