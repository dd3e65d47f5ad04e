package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/recruitment"
)

type jobOpeningRepositoryImpl struct {
	*crud[recruitment.JobOpening]
}

func NewJobOpeningRepository(store *Store) recruitment.JobOpeningRepository {
	return &jobOpeningRepositoryImpl{&crud[recruitment.JobOpening]{
		store: store,
		table: store.jobOpenings,
		id:    func(o recruitment.JobOpening) string { return o.ID },
		assign: func(o *recruitment.JobOpening, id string, now time.Time) {
			o.ID, o.CreatedAt, o.UpdatedAt = id, now, now
		},
		touch: func(o *recruitment.JobOpening, old recruitment.JobOpening, now time.Time) {
			o.CreatedAt, o.UpdatedAt = old.CreatedAt, now
		},
		notFound: recruitment.ErrJobOpeningNotFound,
	}}
}

type candidateRepositoryImpl struct {
	*crud[recruitment.Candidate]
}

func NewCandidateRepository(store *Store) recruitment.CandidateRepository {
	return &candidateRepositoryImpl{&crud[recruitment.Candidate]{
		store: store,
		table: store.candidates,
		id:    func(c recruitment.Candidate) string { return c.ID },
		assign: func(c *recruitment.Candidate, id string, now time.Time) {
			c.ID, c.CreatedAt, c.UpdatedAt = id, now, now
		},
		touch: func(c *recruitment.Candidate, old recruitment.Candidate, now time.Time) {
			c.CreatedAt, c.UpdatedAt = old.CreatedAt, now
		},
		notFound: recruitment.ErrCandidateNotFound,
	}}
}

// ListByOpening implements recruitment.CandidateRepository.
func (r *candidateRepositoryImpl) ListByOpening(ctx context.Context, jobOpeningID string) ([]recruitment.Candidate, error) {
	return r.where(ctx, func(c recruitment.Candidate) bool {
		return c.JobOpeningID == jobOpeningID
	}), nil
}
