package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConfiguration indicates a setup defect, such as a posting rule referring to an
// account that is missing from the chart. It is never recovered from silently.
var ErrConfiguration = errors.New("configuration error")

// ErrConflict indicates that the operation could not complete against the current state
// and any partial work was compensated.
var ErrConflict = errors.New("conflict")
