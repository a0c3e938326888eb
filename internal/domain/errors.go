package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrUniqueViolation   = errors.New("record already exists")
	ErrUserAlreadyExists = errors.New("user already exists")
)
