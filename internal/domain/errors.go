package domain

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("not enough rights")
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	StatusPublic  = "PUBLIC"
	StatusPrivate = "PRIVATE"
)

func ValidStatus(s string) bool {
	return s == StatusPublic || s == StatusPrivate
}
