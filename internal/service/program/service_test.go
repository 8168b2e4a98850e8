package program

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/service/event"
	apperrors "github.com/cema-health/records-api/pkg/errors"
)

// fakeProgramRepo enforces name uniqueness the way the table's constraint
// does.
type fakeProgramRepo struct {
	byName map[string]*model.HealthProgram
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{byName: make(map[string]*model.HealthProgram)}
}

func (f *fakeProgramRepo) Create(_ context.Context, p *model.HealthProgram) error {
	if _, exists := f.byName[p.Name]; exists {
		return apperrors.Conflict("program name already exists", nil)
	}
	f.byName[p.Name] = p
	return nil
}

func (f *fakeProgramRepo) Get(_ context.Context, id uuid.UUID) (*model.HealthProgram, error) {
	for _, p := range f.byName {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperrors.NotFound("program")
}

func (f *fakeProgramRepo) List(context.Context) ([]*model.HealthProgram, error) {
	out := []*model.HealthProgram{}
	for _, p := range f.byName {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProgramRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.HealthProgram, error) {
	var out []*model.HealthProgram
	for _, id := range ids {
		if p, err := f.Get(ctx, id); err == nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestCreate(t *testing.T) {
	svc := NewService(newFakeProgramRepo(), event.NewService(nil, nil))
	doctorID := uuid.New()

	created, err := svc.Create(context.Background(), doctorID, &model.CreateProgramRequest{
		Name:        "TB Care",
		Description: "Tuberculosis treatment and follow-up",
	})
	require.NoError(t, err)
	assert.Equal(t, "TB Care", created.Name)
	assert.Equal(t, doctorID, created.CreatedByID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateDuplicateNameConflicts(t *testing.T) {
	repo := newFakeProgramRepo()
	svc := NewService(repo, event.NewService(nil, nil))

	_, err := svc.Create(context.Background(), uuid.New(), &model.CreateProgramRequest{Name: "TB Care"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), uuid.New(), &model.CreateProgramRequest{Name: "TB Care"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConflict, apperrors.CodeOf(err))
	assert.Len(t, repo.byName, 1, "the rejected write must not persist")
}

func TestCreateRequiresName(t *testing.T) {
	svc := NewService(newFakeProgramRepo(), event.NewService(nil, nil))

	_, err := svc.Create(context.Background(), uuid.New(), &model.CreateProgramRequest{})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrValidation, apperrors.CodeOf(err))
}
