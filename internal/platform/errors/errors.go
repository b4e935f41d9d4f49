package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrInvalidDuration  = errors.New("lock duration must be between 1 and 60 minutes")
	ErrEmptyKeyword     = errors.New("keyword must not be empty")
	ErrDuplicateKeyword = errors.New("keyword already exists in category")
	ErrNoKeywords       = errors.New("at least one study keyword is required")
	ErrPageNotFound     = errors.New("page not found")
	ErrNoActiveSession  = errors.New("no active lock session")
)
