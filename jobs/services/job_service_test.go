package services

import (
	"context"
	"testing"

	"github.com/joblyhq/jobly/internal/database/sqlutil"
	jobErrors "github.com/joblyhq/jobly/jobs/errors"
	"github.com/joblyhq/jobly/jobs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestJobService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid job", func(t *testing.T) {
		repo := new(MockRepository)
		service := NewJobService(repo)

		req := models.CreateJobRequest{Title: "J1", Salary: intPtr(50000), Equity: strPtr("0.05"), CompanyHandle: "c1"}
		repo.On("Create", ctx, req.Job()).Return(&models.Job{ID: 1, Title: "J1", CompanyHandle: "c1"}, nil)

		job, err := service.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 1, job.ID)
		repo.AssertExpectations(t)
	})

	t.Run("equity above one", func(t *testing.T) {
		repo := new(MockRepository)
		service := NewJobService(repo)

		_, err := service.Create(ctx, models.CreateJobRequest{Title: "J1", Equity: strPtr("1.5"), CompanyHandle: "c1"})
		require.ErrorIs(t, err, jobErrors.ErrValidationFailed)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing company handle", func(t *testing.T) {
		repo := new(MockRepository)
		service := NewJobService(repo)

		_, err := service.Create(ctx, models.CreateJobRequest{Title: "J1"})
		require.ErrorIs(t, err, jobErrors.ErrValidationFailed)
		assert.Contains(t, err.Error(), "companyHandle is required")
	})
}

func TestJobService_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	service := NewJobService(repo)

	expected := sqlutil.NewFieldSet(
		sqlutil.Field{Key: "title", Value: "eng"},
		sqlutil.Field{Key: "minSalary", Value: 1000},
		sqlutil.Field{Key: "hasEquity", Value: true},
	)
	repo.On("FindAll", ctx, expected).Return([]*models.Job{{ID: 1}}, nil)

	jobs, err := service.FindAll(ctx, models.JobFilter{HasEquity: boolPtr(true), MinSalary: intPtr(1000), Title: strPtr("eng")})
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
	repo.AssertExpectations(t)

	_, err = service.FindAll(ctx, models.JobFilter{MinSalary: intPtr(-5)})
	require.ErrorIs(t, err, jobErrors.ErrValidationFailed)
}

func TestJobService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial", func(t *testing.T) {
		repo := new(MockRepository)
		service := NewJobService(repo)

		repo.On("Update", ctx, 7, sqlutil.NewFieldSet(sqlutil.Field{Key: "salary", Value: 1})).
			Return(&models.Job{ID: 7, Salary: intPtr(1)}, nil)

		job, err := service.Update(ctx, 7, models.UpdateJobRequest{Salary: intPtr(1)})
		require.NoError(t, err)
		assert.Equal(t, 1, *job.Salary)
	})

	t.Run("no data", func(t *testing.T) {
		repo := new(MockRepository)
		service := NewJobService(repo)

		_, err := service.Update(ctx, 7, models.UpdateJobRequest{})
		require.ErrorIs(t, err, jobErrors.ErrNoData)
	})
}

func TestJobService_Remove(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	service := NewJobService(repo)

	repo.On("Remove", ctx, 7).Return(0, jobErrors.ErrJobNotFound)

	require.ErrorIs(t, service.Remove(ctx, 7), jobErrors.ErrJobNotFound)
}
