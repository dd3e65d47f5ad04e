package recruitment

import "errors"

var (
	ErrJobOpeningNotFound   = errors.New("job opening not found")
	ErrOpeningHasCandidates = errors.New("job opening still has candidates")
	ErrOpeningClosed        = errors.New("job opening is closed")
	ErrCandidateNotFound    = errors.New("candidate not found")
)
