package workflow

import "errors"

var (
	ErrInvalidTransition       = errors.New("status transition not allowed")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrActorRequired           = errors.New("acting employee is required")
)
