package auth

import "errors"

// Validation errors, all raised before any request is made
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingField       = errors.New("required field is empty")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch   = errors.New("Passwords do not match")
)

// User facing failure messages
const (
	LoginFailedMessage         = "Login failed. Please check your credentials."
	RegistrationFailedMessage  = "Registration failed. Please try again."
	RegistrationSuccessMessage = "Registration successful! Please log in."
)
