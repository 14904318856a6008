package store

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials indicates that username/password pair did not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSubmissionNotFound indicates that submission was not found in storage
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrNotOwner indicates that the requester does not own the submission
	ErrNotOwner = errors.New("requester is not the owner")

	// ErrImageDecode indicates that uploaded bytes could not be decoded as an image
	ErrImageDecode = errors.New("image decode failed")

	// ErrImageNotFound indicates that the referenced image file is missing
	ErrImageNotFound = errors.New("image not found")
)
