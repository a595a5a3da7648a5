package services

import "errors"

// Every failure degrades to "this one action didn't complete"; nothing here
// is fatal to the process. Controllers map these onto HTTP statuses.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamParse       = errors.New("unparseable analysis reply")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrAnalyzerUnavailable = errors.New("analyzer unavailable")
	ErrNonPositiveGoal     = errors.New("daily calorie goal must be positive")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrNotFound            = errors.New("not found")
)
