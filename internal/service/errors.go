package service

import "errors"

var (
	// ErrMissingFields is returned when a required request field (name,
	// email, password, photo id, username) is empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrWrongPassword is returned by Login when the supplied password does
	// not match the stored hash. It is deliberately distinct from the
	// user-not-found case internally, even though both render as the same
	// unauthorized message externally.
	ErrWrongPassword = errors.New("wrong password")

	// ErrHashingPassword is returned when the bcrypt primitive fails
	// (e.g. the password exceeds bcrypt's 72-byte input limit).
	ErrHashingPassword = errors.New("error hashing password")
)
