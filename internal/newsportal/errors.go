package newsportal

import "errors"

var (
	ErrUnknownScope     = errors.New("unknown scope")
	ErrValidationFailed = errors.New("validation failed")
	ErrNotFound         = errors.New("article not found")
	ErrPublishFailed    = errors.New("publish failed")
	ErrStorageFailure   = errors.New("content storage failure")
)
