package services

import (
	"context"
	"fmt"

	"github.com/joblyhq/jobly/internal/pkg/log"
	"github.com/joblyhq/jobly/internal/pkg/validate"
	jobErrors "github.com/joblyhq/jobly/jobs/errors"
	"github.com/joblyhq/jobly/jobs/models"
	"github.com/joblyhq/jobly/jobs/repository"
)

// JobService defines the interface for job operations
type JobService interface {
	Create(ctx context.Context, req models.CreateJobRequest) (*models.Job, error)
	FindAll(ctx context.Context, filter models.JobFilter) ([]*models.Job, error)
	Get(ctx context.Context, id int) (*models.Job, error)
	Update(ctx context.Context, id int, req models.UpdateJobRequest) (*models.Job, error)
	Remove(ctx context.Context, id int) error
}

type jobService struct {
	repo repository.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(repo repository.Repository) JobService {
	return &jobService{repo: repo}
}

func (s *jobService) Create(ctx context.Context, req models.CreateJobRequest) (*models.Job, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", jobErrors.ErrValidationFailed, err)
	}

	job, err := s.repo.Create(ctx, req.Job())
	if err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "job %d created for %s", job.ID, job.CompanyHandle)
	return job, nil
}

func (s *jobService) FindAll(ctx context.Context, filter models.JobFilter) ([]*models.Job, error) {
	if err := validate.Struct(filter); err != nil {
		return nil, fmt.Errorf("%w: %v", jobErrors.ErrValidationFailed, err)
	}
	return s.repo.FindAll(ctx, filter.Fields())
}

func (s *jobService) Get(ctx context.Context, id int) (*models.Job, error) {
	return s.repo.Get(ctx, id)
}

func (s *jobService) Update(ctx context.Context, id int, req models.UpdateJobRequest) (*models.Job, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", jobErrors.ErrValidationFailed, err)
	}

	fields := req.Fields()
	if fields.Len() == 0 {
		return nil, jobErrors.ErrNoData
	}

	return s.repo.Update(ctx, id, fields)
}

func (s *jobService) Remove(ctx context.Context, id int) error {
	if _, err := s.repo.Remove(ctx, id); err != nil {
		return err
	}

	log.InfoWithContext(ctx, "job %d removed", id)
	return nil
}
