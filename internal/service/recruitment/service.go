package recruitment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
)

type RecruitmentServiceImpl struct {
	store          *memory.Store
	openingRepo    recruitment.JobOpeningRepository
	candidateRepo  recruitment.CandidateRepository
	departmentRepo organization.DepartmentRepository
	positionRepo   position.PositionRepository
	notifier       notification.Publisher
}

func NewRecruitmentService(
	store *memory.Store,
	openingRepo recruitment.JobOpeningRepository,
	candidateRepo recruitment.CandidateRepository,
	departmentRepo organization.DepartmentRepository,
	positionRepo position.PositionRepository,
	notifier notification.Publisher,
) recruitment.RecruitmentService {
	if notifier == nil {
		notifier = notification.Discard
	}
	return &RecruitmentServiceImpl{
		store:          store,
		openingRepo:    openingRepo,
		candidateRepo:  candidateRepo,
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
		notifier:       notifier,
	}
}

// CreateJobOpening implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) CreateJobOpening(ctx context.Context, req recruitment.CreateJobOpeningRequest) (recruitment.JobOpeningResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.JobOpeningResponse{}, err
	}

	opening := req.ToEntity()
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		if err := s.checkReferences(ctx, opening); err != nil {
			return err
		}
		var err error
		opening, err = s.openingRepo.Create(ctx, opening)
		if err != nil {
			return fmt.Errorf("failed to create job opening: %w", err)
		}
		return nil
	})
	if err != nil {
		return recruitment.JobOpeningResponse{}, err
	}

	slog.Info("Job opening created", "job_opening_id", opening.ID, "department_id", opening.DepartmentID)
	return recruitment.ToJobOpeningResponse(opening, nil), nil
}

// GetJobOpening implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) GetJobOpening(ctx context.Context, id string) (recruitment.JobOpeningResponse, error) {
	opening, err := s.openingRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.JobOpeningResponse{}, err
	}
	candidates, err := s.candidateRepo.ListByOpening(ctx, id)
	if err != nil {
		return recruitment.JobOpeningResponse{}, fmt.Errorf("failed to list candidates: %w", err)
	}
	return recruitment.ToJobOpeningResponse(opening, candidates), nil
}

// ListJobOpenings implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListJobOpenings(ctx context.Context, f recruitment.JobOpeningFilter) ([]recruitment.JobOpeningResponse, error) {
	openings, err := s.openingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job openings: %w", err)
	}
	candidates, err := s.candidateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	byOpening := make(map[string][]recruitment.Candidate)
	for _, c := range candidates {
		byOpening[c.JobOpeningID] = append(byOpening[c.JobOpeningID], c)
	}

	responses := make([]recruitment.JobOpeningResponse, 0, len(openings))
	for _, o := range openings {
		if f.DepartmentID != nil && o.DepartmentID != *f.DepartmentID {
			continue
		}
		if f.Status != nil && string(o.Status) != *f.Status {
			continue
		}
		responses = append(responses, recruitment.ToJobOpeningResponse(o, byOpening[o.ID]))
	}
	return responses, nil
}

// UpdateJobOpening implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UpdateJobOpening(ctx context.Context, req recruitment.UpdateJobOpeningRequest) (recruitment.JobOpeningResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.JobOpeningResponse{}, err
	}

	var (
		updated    recruitment.JobOpening
		candidates []recruitment.Candidate
	)
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		opening, err := s.openingRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		req.Apply(&opening)
		if err := s.checkReferences(ctx, opening); err != nil {
			return err
		}
		found, err := s.openingRepo.Update(ctx, opening)
		if err != nil {
			return fmt.Errorf("failed to update job opening: %w", err)
		}
		if !found {
			return recruitment.ErrJobOpeningNotFound
		}
		if updated, err = s.openingRepo.GetByID(ctx, opening.ID); err != nil {
			return err
		}
		candidates, err = s.candidateRepo.ListByOpening(ctx, opening.ID)
		return err
	})
	if err != nil {
		return recruitment.JobOpeningResponse{}, err
	}
	return recruitment.ToJobOpeningResponse(updated, candidates), nil
}

// DeleteJobOpening implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) DeleteJobOpening(ctx context.Context, id string) error {
	return memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		candidates, err := s.candidateRepo.ListByOpening(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to list candidates: %w", err)
		}
		if len(candidates) > 0 {
			return recruitment.ErrOpeningHasCandidates
		}
		found, err := s.openingRepo.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete job opening: %w", err)
		}
		if found {
			slog.Info("Job opening deleted", "job_opening_id", id)
		}
		return nil
	})
}

func (s *RecruitmentServiceImpl) checkReferences(ctx context.Context, opening recruitment.JobOpening) error {
	if _, err := s.departmentRepo.GetByID(ctx, opening.DepartmentID); err != nil {
		return err
	}
	if opening.PositionID != nil {
		if _, err := s.positionRepo.GetByID(ctx, *opening.PositionID); err != nil {
			return err
		}
	}
	return nil
}

// CreateCandidate adds an applicant to an open job opening.
func (s *RecruitmentServiceImpl) CreateCandidate(ctx context.Context, req recruitment.CreateCandidateRequest) (recruitment.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.CandidateResponse{}, err
	}

	candidate := req.ToEntity(utils.Today())
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		opening, err := s.openingRepo.GetByID(ctx, candidate.JobOpeningID)
		if err != nil {
			return err
		}
		if opening.Status != recruitment.OpeningStatusOpen {
			return recruitment.ErrOpeningClosed
		}
		candidate, err = s.candidateRepo.Create(ctx, candidate)
		if err != nil {
			return fmt.Errorf("failed to create candidate: %w", err)
		}
		return nil
	})
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}

	slog.Info("Candidate created", "candidate_id", candidate.ID, "job_opening_id", candidate.JobOpeningID)
	return recruitment.ToCandidateResponse(candidate), nil
}

// ListCandidates implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListCandidates(ctx context.Context, jobOpeningID *string, stage *string) ([]recruitment.CandidateResponse, error) {
	var (
		candidates []recruitment.Candidate
		err        error
	)
	if jobOpeningID != nil {
		candidates, err = s.candidateRepo.ListByOpening(ctx, *jobOpeningID)
	} else {
		candidates, err = s.candidateRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	responses := make([]recruitment.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		if stage != nil && string(c.Stage) != *stage {
			continue
		}
		responses = append(responses, recruitment.ToCandidateResponse(c))
	}
	return responses, nil
}

// UpdateCandidate implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UpdateCandidate(ctx context.Context, req recruitment.UpdateCandidateRequest) (recruitment.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.CandidateResponse{}, err
	}
	return s.modifyCandidate(ctx, req.ID, func(c *recruitment.Candidate) { req.Apply(c) })
}

// DeleteCandidate implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) DeleteCandidate(ctx context.Context, id string) error {
	if _, err := s.candidateRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	return nil
}

// MoveCandidate sets the candidate's pipeline stage. Any stage may follow any other.
func (s *RecruitmentServiceImpl) MoveCandidate(ctx context.Context, req recruitment.MoveCandidateRequest) (recruitment.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.CandidateResponse{}, err
	}

	var previous recruitment.Stage
	resp, err := s.modifyCandidate(ctx, req.ID, func(c *recruitment.Candidate) {
		previous = c.Stage
		c.Stage = recruitment.Stage(req.Stage)
		if req.Note != nil {
			c.Note = req.Note
		}
	})
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}
	if string(previous) == resp.Stage {
		slog.Debug("Candidate stage unchanged", "candidate_id", resp.ID, "stage", resp.Stage)
		return resp, nil
	}

	slog.Info("Candidate moved", "candidate_id", resp.ID, "from", previous, "to", resp.Stage)
	s.notifier.NotifyRoles(ctx, []user.Role{user.RoleAdmin, user.RoleManager}, notification.CreateNotificationRequest{
		Type:    notification.TypeCandidateStageChange,
		Title:   "Candidate stage changed",
		Message: fmt.Sprintf("%s moved from %s to %s", resp.FullName, previous, resp.Stage),
		Data: map[string]interface{}{
			"candidate_id":   resp.ID,
			"job_opening_id": resp.JobOpeningID,
			"stage":          resp.Stage,
		},
	})
	return resp, nil
}

func (s *RecruitmentServiceImpl) modifyCandidate(ctx context.Context, id string, mutate func(*recruitment.Candidate)) (recruitment.CandidateResponse, error) {
	var updated recruitment.Candidate
	err := memory.WithTransaction(ctx, s.store, func(ctx context.Context) error {
		c, err := s.candidateRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		mutate(&c)
		found, err := s.candidateRepo.Update(ctx, c)
		if err != nil {
			return fmt.Errorf("failed to update candidate: %w", err)
		}
		if !found {
			return recruitment.ErrCandidateNotFound
		}
		updated, err = s.candidateRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}
	return recruitment.ToCandidateResponse(updated), nil
}
