package storage

import "errors"

var (
	ErrKeyNotFound      = errors.New("key not found")
	ErrNotFound         = errors.New("record not found")
	ErrConnectionFailed = errors.New("storage connection failed")
)
