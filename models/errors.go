package models

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrEmailTaken   = errors.New("email already registered")
	ErrNotFound     = errors.New("user not found")
	ErrUnauthorized = errors.New("incorrect password")
	ErrUpstream     = errors.New("upstream error")
)
