package master

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-lite-go/internal/domain/master/position"
	"github.com/cmlabs-hris/hris-lite-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-lite-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newService() position.PositionService {
	store := memory.NewStore()
	return NewMasterService(store, memory.NewPositionRepository(store))
}

func TestPosition_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.CreatePosition(ctx, position.CreatePositionRequest{
		Name:        "  Backend Engineer ",
		Code:        "BE",
		Description: strPtr("Builds APIs"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Backend Engineer", created.Name)
	assert.Equal(t, "BE", created.Code)

	updated, err := svc.UpdatePosition(ctx, position.UpdatePositionRequest{
		ID:   created.ID,
		Name: strPtr("Senior Backend Engineer"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", updated.Name)
	assert.Equal(t, "BE", updated.Code)
	assert.Equal(t, "Builds APIs", *updated.Description)

	list, err := svc.ListPositions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, updated, list[0])

	require.NoError(t, svc.DeletePosition(ctx, created.ID))
	list, err = svc.ListPositions(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// already gone
	require.NoError(t, svc.DeletePosition(ctx, created.ID))
}

func TestPosition_CodeUnique(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	be, err := svc.CreatePosition(ctx, position.CreatePositionRequest{Name: "Backend Engineer", Code: "BE"})
	require.NoError(t, err)
	fe, err := svc.CreatePosition(ctx, position.CreatePositionRequest{Name: "Frontend Engineer", Code: "FE"})
	require.NoError(t, err)

	_, err = svc.CreatePosition(ctx, position.CreatePositionRequest{Name: "Another Backend", Code: "BE"})
	assert.ErrorIs(t, err, position.ErrPositionCodeExists)

	_, err = svc.UpdatePosition(ctx, position.UpdatePositionRequest{ID: fe.ID, Code: strPtr("BE")})
	assert.ErrorIs(t, err, position.ErrPositionCodeExists)

	// keeping its own code is not a clash
	_, err = svc.UpdatePosition(ctx, position.UpdatePositionRequest{ID: be.ID, Code: strPtr("BE")})
	require.NoError(t, err)

	list, err := svc.ListPositions(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, p := range list {
		if p.ID == fe.ID {
			assert.Equal(t, "FE", p.Code, "rejected update must not be stored")
		}
	}
}

func TestPosition_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.CreatePosition(ctx, position.CreatePositionRequest{Name: " ", Code: "be"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)

	_, err = svc.UpdatePosition(ctx, position.UpdatePositionRequest{ID: "missing", Name: strPtr("Tester")})
	assert.ErrorIs(t, err, position.ErrPositionNotFound)
}
