package admin

import "errors"

var (
	// ErrDuplicateUsername indicates the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrLastAdminProtected indicates the sole remaining administrator cannot be removed.
	ErrLastAdminProtected = errors.New("cannot remove the last administrator")
	// ErrSelfDeletionForbidden indicates the active administrator cannot remove itself.
	ErrSelfDeletionForbidden = errors.New("cannot remove the active administrator")
	// ErrInvalidOldPassword indicates the old password digest didn't match.
	ErrInvalidOldPassword = errors.New("old password is incorrect")
	// ErrInvalidCredentials indicates the username/password pair didn't match.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrAdminNotFound indicates the administrator doesn't exist.
	ErrAdminNotFound = errors.New("administrator not found")
	// ErrPasswordTooShort indicates the password failed the length rule.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	// ErrPasswordMismatch indicates the confirmation didn't match the password.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrInvalidInput indicates invalid administrator input.
	ErrInvalidInput = errors.New("invalid administrator input")
)
