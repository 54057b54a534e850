package util

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCourseNotFound    = errors.New("course not found")
	ErrProgressNotFound  = errors.New("progress not found")
	ErrEmailRegistered   = errors.New("email already registered")
	ErrInvalidPercentage = errors.New("progress percentage must be between 0 and 100")
	ErrInvalidExportType = errors.New("invalid export type")
	// ErrProgressBusy is reserved for callers that prefer surfacing lock
	// contention over blocking on the per-enrollment lock.
	ErrProgressBusy = errors.New("progress update already in flight")
)
