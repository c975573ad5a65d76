package service

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidPageParams = errors.New("invalid page parameters")
)
