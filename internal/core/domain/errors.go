package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrSweetNotFound = errors.New("sweet not found")
	ErrInvalidSweet  = errors.New("invalid sweet")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	ErrForbidden = errors.New("access forbidden")
)
