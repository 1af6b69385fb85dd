package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUsernameTaken     = errors.New("Username is already taken")
	ErrEmailTaken        = errors.New("Email is already taken")
	ErrUserAlreadyExists = errors.New("User with this email or username already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed      = errors.New("token creation failed")
	ErrTokenIsExpired           = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid  = errors.New("token is expired or invalid")
	ErrInvalidVerificationToken = errors.New("invalid verification token")

	ErrEmptyCart = errors.New("cart is empty")
)
