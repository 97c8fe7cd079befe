package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidFilename    = errors.New("invalid filename")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
