package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPersistenceUnavailable indicates that the backing store could not be reached.
// Store operations never surface this to callers as a hard failure; they degrade
// to an in-memory mutation and report the reduced durability instead.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")
