package recruitment

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/organization"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hris-lite-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPublisher struct {
	roleNotifications []notification.CreateNotificationRequest
}

func (p *countingPublisher) NotifyEmployee(context.Context, string, notification.CreateNotificationRequest) {}

func (p *countingPublisher) NotifyRoles(_ context.Context, _ []user.Role, req notification.CreateNotificationRequest) {
	p.roleNotifications = append(p.roleNotifications, req)
}

func setup(t *testing.T) (recruitment.RecruitmentService, *countingPublisher, string) {
	t.Helper()
	store := memory.NewStore()
	departmentRepo := memory.NewDepartmentRepository(store)
	dept, err := departmentRepo.Create(context.Background(), organization.Department{OrganizationID: "org", Name: "Engineering", Code: "ENG"})
	require.NoError(t, err)

	publisher := &countingPublisher{}
	svc := NewRecruitmentService(
		store,
		memory.NewJobOpeningRepository(store),
		memory.NewCandidateRepository(store),
		departmentRepo,
		memory.NewPositionRepository(store),
		publisher,
	)
	return svc, publisher, dept.ID
}

func openJob(t *testing.T, svc recruitment.RecruitmentService, deptID string) recruitment.JobOpeningResponse {
	t.Helper()
	opening, err := svc.CreateJobOpening(context.Background(), recruitment.CreateJobOpeningRequest{
		Title: "Backend Engineer", DepartmentID: deptID, Quantity: 2,
	})
	require.NoError(t, err)
	return opening
}

func TestJobOpening_DeleteBlockedByCandidates(t *testing.T) {
	svc, _, deptID := setup(t)
	ctx := context.Background()
	opening := openJob(t, svc, deptID)

	c, err := svc.CreateCandidate(ctx, recruitment.CreateCandidateRequest{
		JobOpeningID: opening.ID, FullName: "Tran Thi Binh", Email: "Binh@Mail.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "binh@mail.com", c.Email)
	assert.Equal(t, "applied", c.Stage)

	err = svc.DeleteJobOpening(ctx, opening.ID)
	assert.ErrorIs(t, err, recruitment.ErrOpeningHasCandidates)

	got, err := svc.GetJobOpening(ctx, opening.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CandidateCount)

	require.NoError(t, svc.DeleteCandidate(ctx, c.ID))
	require.NoError(t, svc.DeleteJobOpening(ctx, opening.ID))
	_, err = svc.GetJobOpening(ctx, opening.ID)
	assert.ErrorIs(t, err, recruitment.ErrJobOpeningNotFound)
}

func TestJobOpening_References(t *testing.T) {
	svc, _, deptID := setup(t)
	ctx := context.Background()

	_, err := svc.CreateJobOpening(ctx, recruitment.CreateJobOpeningRequest{Title: "QA", DepartmentID: "missing", Quantity: 1})
	assert.ErrorIs(t, err, organization.ErrDepartmentNotFound)

	opening := openJob(t, svc, deptID)
	closed := string(recruitment.OpeningStatusClosed)
	_, err = svc.UpdateJobOpening(ctx, recruitment.UpdateJobOpeningRequest{ID: opening.ID, Status: &closed})
	require.NoError(t, err)

	_, err = svc.CreateCandidate(ctx, recruitment.CreateCandidateRequest{JobOpeningID: opening.ID, FullName: "Le Van C", Email: "c@mail.com"})
	assert.ErrorIs(t, err, recruitment.ErrOpeningClosed)

	open, err := svc.ListJobOpenings(ctx, recruitment.JobOpeningFilter{Status: &closed})
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestMoveCandidate(t *testing.T) {
	svc, publisher, deptID := setup(t)
	ctx := context.Background()
	opening := openJob(t, svc, deptID)

	c, err := svc.CreateCandidate(ctx, recruitment.CreateCandidateRequest{JobOpeningID: opening.ID, FullName: "Pham D", Email: "d@mail.com"})
	require.NoError(t, err)

	moved, err := svc.MoveCandidate(ctx, recruitment.MoveCandidateRequest{ID: c.ID, Stage: "interview"})
	require.NoError(t, err)
	assert.Equal(t, "interview", moved.Stage)
	require.Len(t, publisher.roleNotifications, 1)
	assert.Equal(t, notification.TypeCandidateStageChange, publisher.roleNotifications[0].Type)

	_, err = svc.MoveCandidate(ctx, recruitment.MoveCandidateRequest{ID: c.ID, Stage: "interview"})
	require.NoError(t, err)
	assert.Len(t, publisher.roleNotifications, 1)

	var verrs validator.ValidationErrors
	_, err = svc.MoveCandidate(ctx, recruitment.MoveCandidateRequest{ID: c.ID, Stage: "promoted"})
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.MoveCandidate(ctx, recruitment.MoveCandidateRequest{ID: "missing", Stage: "hired"})
	assert.ErrorIs(t, err, recruitment.ErrCandidateNotFound)

	hired, err := svc.MoveCandidate(ctx, recruitment.MoveCandidateRequest{ID: c.ID, Stage: "hired"})
	require.NoError(t, err)
	assert.Equal(t, "hired", hired.Stage)

	got, err := svc.GetJobOpening(ctx, opening.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.HiredCount)

	stage := "hired"
	list, err := svc.ListCandidates(ctx, &opening.ID, &stage)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
