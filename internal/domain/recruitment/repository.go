package recruitment

import "context"

type JobOpeningRepository interface {
	Create(ctx context.Context, opening JobOpening) (JobOpening, error)
	GetByID(ctx context.Context, id string) (JobOpening, error)
	List(ctx context.Context) ([]JobOpening, error)
	Update(ctx context.Context, opening JobOpening) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate Candidate) (Candidate, error)
	GetByID(ctx context.Context, id string) (Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	ListByOpening(ctx context.Context, jobOpeningID string) ([]Candidate, error)
	Update(ctx context.Context, candidate Candidate) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
