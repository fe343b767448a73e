package services

import "errors"

var (
	// ErrUnauthorized means the entity exists but belongs to another user.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate means the username or email is already registered.
	ErrDuplicate = errors.New("already exists")
	// ErrBadCredentials means login failed (unknown user or wrong password).
	ErrBadCredentials = errors.New("invalid username or password")
	// ErrTOTPRequired means the account has 2FA enabled and no code was given.
	ErrTOTPRequired = errors.New("2fa code required")
	// ErrBadTOTP means the supplied 2FA code did not verify.
	ErrBadTOTP = errors.New("invalid 2fa code")
)
