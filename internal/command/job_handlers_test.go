package command_test

import (
	"context"
	"testing"
	"time"

	"go-resume-backend/internal/command"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/cache"
	"go-resume-backend/pkg/cachekey"
	"go-resume-backend/pkg/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newJobBus(repo *MockJobRepo, tagCache cache.TagCache) *command.Bus {
	bus := command.NewBus()
	command.NewJobHandlers(repo, validation.New(), tagCache).Register(bus)
	return bus
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	userID := uuid.NewString()

	t.Run("Should persist a valid job and invalidate the list", func(t *testing.T) {
		repo := new(MockJobRepo)
		tagCache := cache.NewMemory()
		require.NoError(t, tagCache.Set(ctx, "jobs_page1", []byte("x"), time.Minute, cachekey.JobListTag))

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			job := args.Get(1).(*domain.Job)
			assert.NotEqual(t, uuid.Nil, job.ID)
			assert.False(t, job.CreatedAt.IsZero())
		})

		result, err := newJobBus(repo, tagCache).Dispatch(ctx, command.CreateJobCommand{
			Title:       "Backend engineer",
			Description: "Build APIs",
			CompanyID:   companyID,
			UserID:      userID,
		})
		require.NoError(t, err)

		job := result.(*domain.Job)
		assert.Equal(t, "Backend engineer", job.Title)
		repo.AssertExpectations(t)

		_, hit, _ := tagCache.Get(ctx, "jobs_page1")
		assert.False(t, hit, "list entries must be dropped after create")
	})

	t.Run("Should reject a malformed company id", func(t *testing.T) {
		repo := new(MockJobRepo)
		_, err := newJobBus(repo, cache.NewMemory()).Dispatch(ctx, command.CreateJobCommand{
			Title:       "Backend engineer",
			Description: "Build APIs",
			CompanyID:   "nope",
			UserID:      userID,
		})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, "companyId")
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Should require an authenticated user", func(t *testing.T) {
		repo := new(MockJobRepo)
		_, err := newJobBus(repo, cache.NewMemory()).Dispatch(ctx, command.CreateJobCommand{
			Title:       "Backend engineer",
			Description: "Build APIs",
			CompanyID:   companyID,
		})
		var merr *domain.MissingUserContextError
		assert.ErrorAs(t, err, &merr)
	})

	t.Run("Should reject missing required fields", func(t *testing.T) {
		repo := new(MockJobRepo)
		_, err := newJobBus(repo, cache.NewMemory()).Dispatch(ctx, command.CreateJobCommand{
			CompanyID: companyID,
			UserID:    userID,
		})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, "title")
		assert.Contains(t, verr.Violations, "description")
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()
	stored := func() *domain.Job {
		return &domain.Job{
			ID:          jobID,
			Title:       "Old title",
			Description: "Old description",
			CompanyID:   uuid.New(),
			UserID:      uuid.New(),
		}
	}

	t.Run("Should apply changes and drop the item entry", func(t *testing.T) {
		repo := new(MockJobRepo)
		tagCache := cache.NewMemory()
		itemKey := cachekey.JobItemKey(jobID.String())
		require.NoError(t, tagCache.Set(ctx, itemKey, []byte("x"), time.Minute, cachekey.JobItemTag(jobID.String())))

		repo.On("GetByID", ctx, jobID).Return(stored(), nil)
		repo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		result, err := newJobBus(repo, tagCache).Dispatch(ctx, command.UpdateJobCommand{
			JobID:       jobID.String(),
			Title:       "New title",
			Description: "New description",
		})
		require.NoError(t, err)
		assert.Equal(t, "New title", result.(*domain.Job).Title)

		_, hit, _ := tagCache.Get(ctx, itemKey)
		assert.False(t, hit)
	})

	t.Run("Should treat a malformed id as absent", func(t *testing.T) {
		repo := new(MockJobRepo)
		_, err := newJobBus(repo, cache.NewMemory()).Dispatch(ctx, command.UpdateJobCommand{
			JobID: "nope", Title: "t", Description: "d",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should not persist an invalid update", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", ctx, jobID).Return(stored(), nil)

		_, err := newJobBus(repo, cache.NewMemory()).Dispatch(ctx, command.UpdateJobCommand{
			JobID: jobID.String(),
		})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "Update")
	})
}

func TestDeleteJob(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()

	t.Run("Should return the deleted snapshot", func(t *testing.T) {
		repo := new(MockJobRepo)
		job := &domain.Job{ID: jobID, Title: "t", Description: "d", CompanyID: uuid.New()}
		repo.On("GetByID", ctx, jobID).Return(job, nil)
		repo.On("Delete", ctx, jobID).Return(nil)

		result, err := newJobBus(repo, cache.NewMemory()).Dispatch(ctx, command.DeleteJobCommand{JobID: jobID.String()})
		require.NoError(t, err)
		assert.Equal(t, jobID, result.(*domain.Job).ID)
		repo.AssertExpectations(t)
	})

	t.Run("Should surface a missing job", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", ctx, jobID).Return(nil, domain.ErrNotFound)

		_, err := newJobBus(repo, cache.NewMemory()).Dispatch(ctx, command.DeleteJobCommand{JobID: jobID.String()})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		repo.AssertNotCalled(t, "Delete")
	})
}
