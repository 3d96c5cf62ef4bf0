package repository

import "errors"

var (
	ErrStateNotFound  = errors.New("state not found")
	ErrFailedToGet    = errors.New("failed to get")
	ErrFailedToSave   = errors.New("failed to save")
	ErrFailedToInsert = errors.New("failed to insert")
)
