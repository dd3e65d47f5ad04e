package recruitment

import "context"

type RecruitmentService interface {
	CreateJobOpening(ctx context.Context, req CreateJobOpeningRequest) (JobOpeningResponse, error)
	GetJobOpening(ctx context.Context, id string) (JobOpeningResponse, error)
	ListJobOpenings(ctx context.Context, filter JobOpeningFilter) ([]JobOpeningResponse, error)
	UpdateJobOpening(ctx context.Context, req UpdateJobOpeningRequest) (JobOpeningResponse, error)
	// DeleteJobOpening fails with ErrOpeningHasCandidates while candidates reference it.
	DeleteJobOpening(ctx context.Context, id string) error

	CreateCandidate(ctx context.Context, req CreateCandidateRequest) (CandidateResponse, error)
	ListCandidates(ctx context.Context, jobOpeningID *string, stage *string) ([]CandidateResponse, error)
	UpdateCandidate(ctx context.Context, req UpdateCandidateRequest) (CandidateResponse, error)
	DeleteCandidate(ctx context.Context, id string) error
	MoveCandidate(ctx context.Context, req MoveCandidateRequest) (CandidateResponse, error)
}
